// Package ws serves a connector over persistent WebSocket connections.
package ws

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/viant/jsonrpc-connector"
	"github.com/viant/jsonrpc-connector/connector"
	"github.com/viant/jsonrpc-connector/transport"
	"github.com/viant/jsonrpc-connector/transport/server/base"
	"golang.org/x/net/websocket"
)

const defaultMaxPayloadBytes = 5 * 1024 * 1024

// Handler accepts WebSocket connections; each text message carries one JSON-RPC payload
type Handler struct {
	Options
	base   *base.Handler
	server websocket.Server
}

// ServeHTTP implements http.Handler by upgrading the request
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.server.ServeHTTP(w, r)
}

func (h *Handler) serve(conn *websocket.Conn) {
	defer conn.Close()
	conn.MaxPayloadBytes = h.MaxPayloadBytes
	request := conn.Request()
	remote := request.RemoteAddr
	session := &session{
		conn:       conn,
		connection: transport.NewWebSocketConnection(remote),
		logger:     h.Logger,
	}
	ctx, cancel := context.WithCancel(request.Context())
	defer cancel()

	wg := sync.WaitGroup{}
	defer wg.Wait()
	for {
		var data []byte
		if err := websocket.Message.Receive(conn, &data); err != nil {
			if err != io.EOF {
				h.Logger.Errorf("failed to receive message from %v: %v", remote, err)
			}
			return
		}
		wg.Add(1)
		go func(data []byte) {
			defer wg.Done()
			session.send(h.base.HandleMessage(ctx, session.connection, data))
		}(data)
	}
}

// session serializes writes to a single connection
type session struct {
	conn       *websocket.Conn
	connection *transport.Connection
	logger     jsonrpc.Logger
	mux        sync.Mutex
}

func (s *session) send(data []byte) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if err := websocket.Message.Send(s.conn, string(data)); err != nil {
		s.logger.Errorf("failed to send message to %v: %v", s.connection.Remote, err)
	}
}

func (h *Handler) handshake(config *websocket.Config, r *http.Request) error {
	if len(h.Origins) == 0 {
		return nil
	}
	origin := r.Header.Get("Origin")
	for _, candidate := range h.Origins {
		if candidate == origin {
			return nil
		}
	}
	return fmt.Errorf("origin %q is not allowed", origin)
}

// New constructs Handler with default settings and provided options.
func New(aConnector *connector.Connector, opts ...Option) *Handler {
	h := &Handler{
		Options: Options{
			MaxPayloadBytes: defaultMaxPayloadBytes,
			Logger:          jsonrpc.DefaultLogger,
		},
	}
	for _, opt := range opts {
		opt(&h.Options)
	}
	h.base = base.NewHandler(aConnector, h.Logger)
	h.server = websocket.Server{
		Handshake: h.handshake,
		Handler:   h.serve,
	}
	return h
}
