package http

import "github.com/viant/jsonrpc-connector"

// Options exposes configurable attributes of the handler.
type Options struct {
	// URI of the JSON-RPC endpoint (default: /)
	URI string

	// MaxBodySize limits request body in bytes (default: 5MB)
	MaxBodySize int64

	// RateLimit enables per client token bucket limiting when RPS > 0
	RateLimit RateLimit

	Logger jsonrpc.Logger
}

// RateLimit defines per client request rate
type RateLimit struct {
	RPS   float64
	Burst int
}

// Option mutates Options.
type Option func(*Options)

// WithURI sets custom URI.
func WithURI(uri string) Option {
	return func(o *Options) { o.URI = uri }
}

// WithMaxBodySize sets max request body size
func WithMaxBodySize(size int64) Option {
	return func(o *Options) { o.MaxBodySize = size }
}

// WithRateLimit limits each client to rps requests per second with burst
func WithRateLimit(rps float64, burst int) Option {
	return func(o *Options) { o.RateLimit = RateLimit{RPS: rps, Burst: burst} }
}

// WithLogger sets logger
func WithLogger(logger jsonrpc.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
