package provider

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Tool defines an available tool for the model.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"` // JSON Schema
}

// ToolCall represents a tool invocation request from the model.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// NewTool builds a Tool whose parameter schema is reflected from params,
// a struct (or pointer to struct) describing the tool's arguments.
//
//	type weatherArgs struct {
//	    City string `json:"city" jsonschema:"description=City name"`
//	}
//	tool, err := provider.NewTool("get_weather", "Look up current weather", weatherArgs{})
func NewTool(name, description string, params any) (Tool, error) {
	if name == "" {
		return Tool{}, fmt.Errorf("tool name is required")
	}

	tool := Tool{Name: name, Description: description}
	if params == nil {
		return tool, nil
	}

	reflector := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(params)
	data, err := json.Marshal(schema)
	if err != nil {
		return Tool{}, fmt.Errorf("marshal tool schema: %w", err)
	}
	tool.Parameters = data
	return tool, nil
}
