package connector

import (
	"github.com/viant/jsonrpc-connector"
	"github.com/viant/jsonrpc-connector/metrics"
)

// Option represents connector option
type Option func(c *Connector)

// WithLogger sets logger
func WithLogger(logger jsonrpc.Logger) Option {
	return func(c *Connector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets metrics collectors
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Connector) { c.metrics = m }
}

// WithPushMethods replaces the set of methods restricted to push capable transports
func WithPushMethods(methods ...string) Option {
	return func(c *Connector) { c.pushMethods = NewMethodSet(methods...) }
}
