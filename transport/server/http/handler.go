// Package http serves a connector over one-shot HTTP requests.
// HTTP can not deliver push notifications, so subscription methods are rejected.
package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/viant/jsonrpc-connector"
	"github.com/viant/jsonrpc-connector/connector"
	"github.com/viant/jsonrpc-connector/transport"
	"github.com/viant/jsonrpc-connector/transport/server/base"
)

const (
	defaultURI         = "/"
	defaultMaxBodySize = 5 * 1024 * 1024
	jsonMime           = "application/json"
)

// Handler implements http.Handler: every POST carries one JSON-RPC payload and receives its response
type Handler struct {
	Options
	base    *base.Handler
	limiter *limiter
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, h.URI) {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.limiter.allow(clientKey(r), time.Now()) {
		h.write(w, http.StatusTooManyRequests, h.base.Connector.FormatError(jsonrpc.NewLimitExceeded("rate limit exceeded", nil), nil))
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.MaxBodySize))
	_ = r.Body.Close()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("request body exceeds %d bytes", h.MaxBodySize), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, fmt.Sprintf("failed to read request body: %v", err), http.StatusBadRequest)
		return
	}
	connection := transport.NewHTTPConnection(r.RemoteAddr)
	h.write(w, http.StatusOK, h.base.HandleMessage(r.Context(), connection, data))
}

func (h *Handler) write(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", jsonMime)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.Logger.Errorf("failed to write response: %v", err)
	}
}

// New constructs Handler with default settings and provided options.
func New(aConnector *connector.Connector, opts ...Option) *Handler {
	h := &Handler{
		Options: Options{
			URI:         defaultURI,
			MaxBodySize: defaultMaxBodySize,
			Logger:      jsonrpc.DefaultLogger,
		},
	}
	for _, opt := range opts {
		opt(&h.Options)
	}
	if h.MaxBodySize <= 0 {
		h.MaxBodySize = defaultMaxBodySize
	}
	h.base = base.NewHandler(aConnector, h.Logger)
	h.limiter = newLimiter(h.RateLimit)
	return h
}
