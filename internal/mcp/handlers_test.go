package mcp

import (
	"encoding/json"
	"strings"
	"testing"
)

func callToolResult(t *testing.T, params string) (interface{}, interface{}) {
	t.Helper()
	s := &Server{}
	return s.callTool(json.RawMessage(params))
}

func resultText(t *testing.T, result interface{}) string {
	t.Helper()
	content := result.(map[string]interface{})["content"].([]interface{})
	if len(content) != 1 {
		t.Fatalf("expected a single content block, got %d", len(content))
	}
	return content[0].(map[string]interface{})["text"].(string)
}

func TestCallToolDescribeValues(t *testing.T) {
	result, errRes := callToolResult(t, `{"name":"describe_values","arguments":{"values":[1,2,2,3]}}`)
	if errRes != nil {
		t.Fatalf("unexpected tool error: %v", errRes)
	}

	var summary struct {
		Mean   float64 `json:"mean"`
		Median float64 `json:"median"`
		Modes  []int   `json:"modes"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &summary); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}

	if summary.Mean != 2.0 || summary.Median != 2.0 {
		t.Errorf("got mean=%v median=%v, want 2.0/2.0", summary.Mean, summary.Median)
	}
	if len(summary.Modes) != 1 || summary.Modes[0] != 2 {
		t.Errorf("got modes=%v, want [2]", summary.Modes)
	}
}

func TestCallToolDescribeValuesContinuous(t *testing.T) {
	result, errRes := callToolResult(t, `{"name":"describe_values","arguments":{"values":[0.5,0.5,1.5,1.5,2.0]}}`)
	if errRes != nil {
		t.Fatalf("unexpected tool error: %v", errRes)
	}

	var summary struct {
		Mean   float64   `json:"mean"`
		Median float64   `json:"median"`
		Modes  []float64 `json:"modes"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &summary); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}

	if summary.Median != 1.5 {
		t.Errorf("got median=%v, want 1.5", summary.Median)
	}
	if len(summary.Modes) != 2 || summary.Modes[0] != 0.5 || summary.Modes[1] != 1.5 {
		t.Errorf("got modes=%v, want [0.5 1.5]", summary.Modes)
	}
}

func TestCallToolSingleStatistics(t *testing.T) {
	tests := []struct {
		tool string
		want string
	}{
		{"mean", `"mean": 2.5`},
		{"median", `"median": 2.5`},
		{"mode", `"modes"`},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			result, errRes := callToolResult(t, `{"name":"`+tt.tool+`","arguments":{"values":[1,2,3,4]}}`)
			if errRes != nil {
				t.Fatalf("unexpected tool error: %v", errRes)
			}
			if text := resultText(t, result); !strings.Contains(text, tt.want) {
				t.Errorf("result %q does not contain %q", text, tt.want)
			}
		})
	}
}

func TestCallToolEmptyValues(t *testing.T) {
	for _, tool := range []string{"describe_values", "mean", "median", "mode"} {
		t.Run(tool, func(t *testing.T) {
			result, errRes := callToolResult(t, `{"name":"`+tool+`","arguments":{"values":[]}}`)
			if result != nil {
				t.Errorf("expected no result for empty values, got %v", result)
			}
			if errRes == nil {
				t.Fatal("expected error for empty values, got nil")
			}
			errMap := errRes.(map[string]interface{})
			if errMap["code"].(int) != -32000 {
				t.Errorf("unexpected error code: %v", errMap["code"])
			}
		})
	}
}

func TestCallToolInvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		params string
	}{
		{"MissingValues", `{"name":"mean","arguments":{}}`},
		{"ValuesNotArray", `{"name":"mean","arguments":{"values":"1,2,3"}}`},
		{"NonNumericElement", `{"name":"mean","arguments":{"values":[1,"x"]}}`},
		{"MalformedParams", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errRes := callToolResult(t, tt.params)
			if errRes == nil {
				t.Fatal("expected error, got nil")
			}
			errMap := errRes.(map[string]interface{})
			if errMap["code"].(int) != -32602 {
				t.Errorf("unexpected error code: %v", errMap["code"])
			}
		})
	}
}

func TestCallToolUnknownTool(t *testing.T) {
	_, errRes := callToolResult(t, `{"name":"histogram","arguments":{"values":[1]}}`)
	if errRes == nil {
		t.Fatal("expected error for unknown tool, got nil")
	}
	errMap := errRes.(map[string]interface{})
	if errMap["code"].(int) != -32601 {
		t.Errorf("unexpected error code: %v", errMap["code"])
	}
}
