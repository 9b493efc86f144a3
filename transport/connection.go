package transport

import (
	"context"

	"github.com/google/uuid"
)

// Kind identifies the transport a request arrived on
type Kind string

const (
	// KindHTTP is a one-shot request/response transport
	KindHTTP Kind = "http"
	// KindWebSocket is a persistent, full-duplex transport
	KindWebSocket Kind = "websocket"
	// KindStdio is a persistent line-delimited stream
	KindStdio Kind = "stdio"
)

// SupportsPush returns true when the transport can deliver asynchronous events after a call returns
func (k Kind) SupportsPush() bool {
	switch k {
	case KindWebSocket, KindStdio:
		return true
	}
	return false
}

// Connection describes the transport a request arrived on.
// It is created once by the listener when the connection is accepted.
type Connection struct {
	ID     string
	Kind   Kind
	Remote string
}

// SupportsPush returns true if push-style methods can be served over this connection
func (c *Connection) SupportsPush() bool {
	if c == nil {
		return false
	}
	return c.Kind.SupportsPush()
}

// NewConnection creates a connection descriptor
func NewConnection(kind Kind, remote string) *Connection {
	return &Connection{
		ID:     uuid.New().String(),
		Kind:   kind,
		Remote: remote,
	}
}

// NewHTTPConnection creates a descriptor for a one-shot HTTP request
func NewHTTPConnection(remote string) *Connection {
	return NewConnection(KindHTTP, remote)
}

// NewWebSocketConnection creates a descriptor for an accepted WebSocket
func NewWebSocketConnection(remote string) *Connection {
	return NewConnection(KindWebSocket, remote)
}

// NewStdioConnection creates a descriptor for a stdio stream
func NewStdioConnection() *Connection {
	return NewConnection(KindStdio, "stdio")
}

type connectionKey struct{}

// WithConnection returns a context carrying the connection
func WithConnection(ctx context.Context, connection *Connection) context.Context {
	return context.WithValue(ctx, connectionKey{}, connection)
}

// ConnectionFrom returns the connection carried by ctx, if any
func ConnectionFrom(ctx context.Context) (*Connection, bool) {
	connection, ok := ctx.Value(connectionKey{}).(*Connection)
	return connection, ok && connection != nil
}
