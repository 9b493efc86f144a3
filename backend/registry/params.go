package registry

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/viant/jsonrpc-connector"
)

// DecodeParams decodes positional params into targets; missing trailing values leave targets untouched
func DecodeParams(params json.RawMessage, targets ...interface{}) error {
	trimmed := bytes.TrimSpace(params)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}
	var values []json.RawMessage
	if err := json.Unmarshal(trimmed, &values); err != nil {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid params: %v", err), nil)
	}
	if len(values) > len(targets) {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("expected at most %d params, got %d", len(targets), len(values)), nil)
	}
	for i, value := range values {
		if err := json.Unmarshal(value, targets[i]); err != nil {
			return jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid param at position %d: %v", i, err), nil)
		}
	}
	return nil
}
