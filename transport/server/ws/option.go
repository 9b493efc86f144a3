package ws

import "github.com/viant/jsonrpc-connector"

// Options exposes configurable attributes of the handler.
type Options struct {
	// MaxPayloadBytes limits a single inbound message (default: 5MB)
	MaxPayloadBytes int

	// Origins lists accepted Origin header values; empty accepts any origin
	Origins []string

	Logger jsonrpc.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithMaxPayloadBytes sets max inbound message size
func WithMaxPayloadBytes(size int) Option {
	return func(o *Options) { o.MaxPayloadBytes = size }
}

// WithOrigins restricts accepted origins
func WithOrigins(origins ...string) Option {
	return func(o *Options) { o.Origins = origins }
}

// WithLogger sets logger
func WithLogger(logger jsonrpc.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
