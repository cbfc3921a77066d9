package mcp

import (
	"encoding/json"
	"fmt"

	"descstat/internal/input"
	"descstat/internal/stats"
)

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	values, err := extractValues(call.Arguments)
	if err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": err.Error()}
	}

	var data interface{}
	switch call.Name {
	case "describe_values":
		data, err = describeValues(values)
	case "mean":
		data, err = meanOf(values)
	case "median":
		data, err = medianOf(values)
	case "mode":
		data, err = modesOf(values)
	default:
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}

func extractValues(arguments map[string]interface{}) ([]float64, error) {
	raw, ok := arguments["values"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'values' argument: expected an array of numbers")
	}

	values := make([]float64, 0, len(raw))
	for i, item := range raw {
		v, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("'values[%d]' is not a number", i)
		}
		values = append(values, v)
	}
	return values, nil
}

// describeValues routes integer-only input through the discrete path so the
// modes come back as integers.
func describeValues(values []float64) (interface{}, error) {
	if ints, ok := input.AllIntegral(values); ok {
		return stats.DescribeDiscrete(ints)
	}
	return stats.Describe(values)
}

func meanOf(values []float64) (interface{}, error) {
	if len(values) == 0 {
		return nil, stats.ErrEmptyInput
	}
	return map[string]interface{}{"mean": stats.CalculateMeanContinuous(values)}, nil
}

func medianOf(values []float64) (interface{}, error) {
	if len(values) == 0 {
		return nil, stats.ErrEmptyInput
	}
	return map[string]interface{}{"median": stats.CalculateMedianContinuous(values)}, nil
}

func modesOf(values []float64) (interface{}, error) {
	if len(values) == 0 {
		return nil, stats.ErrEmptyInput
	}
	if ints, ok := input.AllIntegral(values); ok {
		return map[string]interface{}{"modes": stats.CalculateModesDiscrete(ints)}, nil
	}
	return map[string]interface{}{"modes": stats.CalculateModesContinuous(values)}, nil
}
