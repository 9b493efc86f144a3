package base

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc-connector"
	"github.com/viant/jsonrpc-connector/connector"
	"github.com/viant/jsonrpc-connector/transport"
)

// Handler runs inbound messages through the connector: parse, handle, wait and format
type Handler struct {
	Connector *connector.Connector
	Logger    jsonrpc.Logger
}

// HandleMessage returns the encoded response for data received over connection.
// It always produces a JSON-RPC envelope, failures included.
func (h *Handler) HandleMessage(ctx context.Context, connection *transport.Connection, data []byte) []byte {
	payload, err := h.Connector.Parse(data)
	if err != nil {
		return h.Connector.FormatError(err, nil)
	}
	result, err := h.Connector.Handle(ctx, payload, connection).Wait(ctx)
	if err != nil {
		var request *jsonrpc.Request
		if !payload.IsBatch() {
			request = payload.Request
		}
		return h.Connector.FormatError(err, request)
	}
	response, err := h.Connector.Format(result, payload)
	if err != nil {
		h.Logger.Errorf("failed to format response: %v", err)
		return h.Connector.FormatError(jsonrpc.NewInternalError(fmt.Sprintf("failed to format response: %v", err), nil), nil)
	}
	return response
}

// NewHandler creates a handler
func NewHandler(aConnector *connector.Connector, logger jsonrpc.Logger) *Handler {
	if logger == nil {
		logger = jsonrpc.DefaultLogger
	}
	return &Handler{
		Connector: aConnector,
		Logger:    logger,
	}
}
