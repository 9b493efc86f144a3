package stdio

import (
	"io"

	"github.com/viant/jsonrpc-connector"
)

// Option represents a functional option for configuring the stdio server
type Option func(*Server)

// WithReader sets the input reader
func WithReader(reader io.ReadCloser) Option {
	return func(t *Server) {
		t.inout = reader
		t.reader = nil
	}
}

// WithWriter sets the response writer
func WithWriter(writer io.Writer) Option {
	return func(t *Server) {
		t.writer = writer
	}
}

// WithErrorWriter logs to writer
func WithErrorWriter(writer io.Writer) Option {
	return func(t *Server) {
		t.logger = jsonrpc.NewStdLogger(writer)
	}
}

// WithLogger sets the logger
func WithLogger(logger jsonrpc.Logger) Option {
	return func(t *Server) {
		if logger != nil {
			t.logger = logger
		}
	}
}
