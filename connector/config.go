package connector

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/jsonrpc-connector/backend"
	"github.com/viant/jsonrpc-connector/internal/pointer"
	"gopkg.in/yaml.v3"
)

// Config represents connector configuration
type Config struct {
	// PushMethods are methods that require a push capable transport
	PushMethods []string `yaml:"pushMethods"`
	// LogCalls logs every dispatched method
	LogCalls *bool          `yaml:"logCalls"`
	Executor ExecutorConfig `yaml:"executor"`
	Backend  backend.Config `yaml:"backend"`
}

// ExecutorConfig configures the default backend executor
type ExecutorConfig struct {
	// MaxConcurrency bounds concurrent backend calls, 0 means unbounded
	MaxConcurrency int `yaml:"maxConcurrency"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		PushMethods: append([]string{}, DefaultPushMethods...),
		LogCalls:    pointer.Ref(false),
	}
}

// LoadConfig loads YAML configuration from URL over defaults
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration over defaults
func ParseConfig(data []byte) (*Config, error) {
	ret := DefaultConfig()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if ret.Executor.MaxConcurrency < 0 {
		return nil, fmt.Errorf("invalid executor.maxConcurrency: %v", ret.Executor.MaxConcurrency)
	}
	return ret, nil
}
