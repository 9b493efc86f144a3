package backend

import (
	"context"

	"github.com/goccy/go-json"
)

// Backend executes raw JSON-RPC method calls
type Backend interface {
	// Initialize blocks until the backend completed its own connection or handshake sequence
	Initialize(ctx context.Context) error

	// ExecuteRaw runs method with raw params; failures should be *jsonrpc.Error or implement jsonrpc.CodedError
	ExecuteRaw(ctx context.Context, method string, params json.RawMessage) (json.RawMessage, error)

	// Disconnect releases backend resources
	Disconnect(ctx context.Context) error
}

// New builds a backend from its configuration and an execution scheduler
type New func(config *Config, executor Executor) (Backend, error)

// Config represents backend configuration
type Config struct {
	Name    string                 `yaml:"name"`
	Options map[string]interface{} `yaml:"options"`
}

// Option returns backend specific option value
func (c *Config) Option(name string) (interface{}, bool) {
	if c == nil || c.Options == nil {
		return nil, false
	}
	value, ok := c.Options[name]
	return value, ok
}
