package mcp

// valuesSchema is shared by every tool: each one operates on a single flat
// list of numbers.
func valuesSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"values": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "number"},
				"description": "The numeric values to analyze. Must contain at least one element.",
			},
		},
		"required": []string{"values"},
	}
}

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name": "describe_values",
				"description": "Compute the arithmetic mean, the median and the mode(s) of a list of numbers in one call. " +
					"The modes field contains every value that ties for the highest frequency, sorted ascending; " +
					"when all values are distinct, every value is a mode.",
				"inputSchema": valuesSchema(),
			},
			map[string]interface{}{
				"name":        "mean",
				"description": "Compute the arithmetic mean (average) of a list of numbers.",
				"inputSchema": valuesSchema(),
			},
			map[string]interface{}{
				"name":        "median",
				"description": "Compute the median of a list of numbers (average of the two middle values for even counts).",
				"inputSchema": valuesSchema(),
			},
			map[string]interface{}{
				"name":        "mode",
				"description": "Compute the mode(s) of a list of numbers: every value tying for the highest frequency, sorted ascending.",
				"inputSchema": valuesSchema(),
			},
		},
	}
}
