package transport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnection_SupportsPush(t *testing.T) {
	testCases := []struct {
		name       string
		connection *Connection
		expected   bool
	}{
		{name: "http", connection: NewHTTPConnection("127.0.0.1:1"), expected: false},
		{name: "websocket", connection: NewWebSocketConnection("127.0.0.1:2"), expected: true},
		{name: "stdio", connection: NewStdioConnection(), expected: true},
		{name: "unknown kind", connection: &Connection{Kind: "carrier-pigeon"}, expected: false},
		{name: "nil", connection: nil, expected: false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.connection.SupportsPush(), tc.name)
	}
}

func TestNewConnection_UniqueID(t *testing.T) {
	first := NewHTTPConnection("a")
	second := NewHTTPConnection("a")
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "a", first.Remote)
}

func TestConnectionFrom(t *testing.T) {
	_, ok := ConnectionFrom(context.Background())
	assert.False(t, ok)

	connection := NewWebSocketConnection("peer")
	ctx := WithConnection(context.Background(), connection)
	actual, ok := ConnectionFrom(ctx)
	assert.True(t, ok)
	assert.Same(t, connection, actual)
}
