// Package connector binds JSON-RPC listeners to a backend: it parses inbound payloads,
// dispatches single and batched requests, and formats response envelopes.
package connector

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/viant/jsonrpc-connector"
	"github.com/viant/jsonrpc-connector/backend"
	"github.com/viant/jsonrpc-connector/internal/pointer"
	"github.com/viant/jsonrpc-connector/metrics"
	"github.com/viant/jsonrpc-connector/transport"
	"golang.org/x/sync/errgroup"
)

// Connector owns a backend for its entire lifetime
type Connector struct {
	backend     backend.Backend
	pushMethods MethodSet
	logger      jsonrpc.Logger
	metrics     *metrics.Metrics
	logCalls    bool
	ready       *Signal
	closing     *Signal
	closed      int32
}

// Backend returns the owned backend
func (c *Connector) Backend() backend.Backend {
	return c.backend
}

// PushMethods returns methods restricted to push capable transports
func (c *Connector) PushMethods() []string {
	return c.pushMethods.Methods()
}

// Ready returns a channel closed after Initialize completed
func (c *Connector) Ready() <-chan struct{} {
	return c.ready.Done()
}

// Closed returns a channel closed after Close completed
func (c *Connector) Closed() <-chan struct{} {
	return c.closing.Done()
}

// OnReady registers a ready callback
func (c *Connector) OnReady(fn func()) {
	c.ready.On(fn)
}

// OnClose registers a close callback
func (c *Connector) OnClose(fn func()) {
	c.closing.On(fn)
}

// Initialize waits for the backend to become ready, then fires the ready signal.
// It is meant to be called once, before any Handle call.
func (c *Connector) Initialize(ctx context.Context) error {
	if err := c.backend.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	c.logger.Infof("connector ready")
	c.ready.Fire()
	return nil
}

// Close disconnects the backend; the connector can not be used afterwards
func (c *Connector) Close(ctx context.Context) error {
	atomic.StoreInt32(&c.closed, 1)
	err := c.backend.Disconnect(ctx)
	c.logger.Infof("connector closed")
	c.closing.Fire()
	if err != nil {
		return fmt.Errorf("failed to disconnect backend: %w", err)
	}
	return nil
}

// Parse decodes raw bytes into a single request or a batch.
// The only failure is a parse error; request schema is validated at dispatch.
func (c *Connector) Parse(data []byte) (*jsonrpc.Payload, error) {
	if !json.Valid(data) {
		message := "invalid JSON"
		var probe interface{}
		if err := json.Unmarshal(data, &probe); err != nil {
			message = err.Error()
		}
		return nil, jsonrpc.NewParsingError(message, nil)
	}
	payload := &jsonrpc.Payload{}
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, jsonrpc.NewParsingError(err.Error(), nil)
	}
	return payload, nil
}

// Handle dispatches payload received over connection; the returned call settles once every request did.
// Batch entries run concurrently and fail independently.
func (c *Connector) Handle(ctx context.Context, payload *jsonrpc.Payload, connection *transport.Connection) *Call {
	call := newCall()
	if connection != nil {
		ctx = transport.WithConnection(ctx, connection)
	}
	if !payload.IsBatch() {
		var request *jsonrpc.Request
		if payload != nil {
			request = payload.Request
		}
		go func() {
			outcome := c.dispatch(ctx, request, connection)
			if outcome.Failed() {
				call.setError(outcome.Err)
				return
			}
			call.setResult(&Result{Outcomes: []Outcome{outcome}})
		}()
		return call
	}

	requests := payload.Batch
	if len(requests) == 0 {
		call.setError(jsonrpc.NewInvalidRequest("invalid request: empty batch", nil))
		return call
	}
	c.metrics.ObserveBatch(len(requests))
	outcomes := make([]Outcome, len(requests))
	group := errgroup.Group{}
	for i, request := range requests {
		i, request := i, request
		group.Go(func() error {
			outcomes[i] = c.dispatch(ctx, request, connection)
			return nil
		})
	}
	go func() {
		_ = group.Wait()
		call.setResult(&Result{Outcomes: outcomes})
	}()
	return call
}

func (c *Connector) dispatch(ctx context.Context, request *jsonrpc.Request, connection *transport.Connection) (outcome Outcome) {
	method := ""
	if request != nil {
		method = request.Method
	}
	started := time.Now()
	done := c.metrics.Begin()
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorf("recovered panic while executing %v: %v", method, r)
			outcome = Outcome{Err: jsonrpc.NewInternalError(fmt.Sprintf("%v", r), nil)}
		}
		done()
		c.metrics.ObserveCall(method, outcome.Code(), time.Since(started))
	}()

	if request == nil {
		return Outcome{Err: jsonrpc.NewInvalidRequest("invalid request: expected object", nil)}
	}
	if method == "" {
		return Outcome{Err: jsonrpc.NewInvalidRequest("invalid request: missing method", nil)}
	}
	if atomic.LoadInt32(&c.closed) == 1 {
		return Outcome{Err: jsonrpc.NewResourceUnavailable("connector is closed", nil)}
	}
	if c.pushMethods.Has(method) && !connection.SupportsPush() {
		return Outcome{Err: jsonrpc.NewMethodNotSupported("notifications not supported", nil)}
	}
	if c.logCalls {
		c.logger.Infof("dispatching %v over %v", method, kindOf(connection))
	}
	result, err := c.backend.ExecuteRaw(ctx, method, request.Params)
	if err != nil {
		if !jsonrpc.IsCoded(err) {
			c.logger.Errorf("failed to execute %v: %v", method, err)
		}
		return Outcome{Err: jsonrpc.AsError(err)}
	}
	if len(result) == 0 {
		result = json.RawMessage("null")
	}
	return Outcome{Result: result}
}

// Format encodes settled outcomes as response envelopes aligned with payload
func (c *Connector) Format(result *Result, payload *jsonrpc.Payload) ([]byte, error) {
	if payload == nil {
		return nil, errors.New("payload was nil")
	}
	requests := payload.Requests()
	if result == nil || len(result.Outcomes) != len(requests) {
		outcomes := 0
		if result != nil {
			outcomes = len(result.Outcomes)
		}
		return nil, fmt.Errorf("outcomes do not match payload: %d != %d", outcomes, len(requests))
	}
	if !payload.IsBatch() {
		return json.Marshal(newResponse(idOf(requests[0]), &result.Outcomes[0]))
	}
	responses := make(jsonrpc.BatchResponse, len(requests))
	for i, request := range requests {
		responses[i] = newResponse(idOf(request), &result.Outcomes[i])
	}
	return json.Marshal(responses)
}

// FormatError encodes a single error envelope; id is null unless request carries one
func (c *Connector) FormatError(err error, request *jsonrpc.Request) []byte {
	response := jsonrpc.NewErrorResponse(idOf(request), jsonrpc.AsError(err))
	data, marshalErr := json.Marshal(response)
	if marshalErr == nil {
		return data
	}
	c.logger.Errorf("failed to encode error data: %v", marshalErr)
	response.Error = jsonrpc.NewError(response.Error.Code, response.Error.Message, nil)
	data, _ = json.Marshal(response)
	return data
}

func newResponse(id jsonrpc.RequestId, outcome *Outcome) *jsonrpc.Response {
	if outcome.Failed() {
		return jsonrpc.NewErrorResponse(id, outcome.Err)
	}
	return jsonrpc.NewResponse(id, outcome.Result)
}

func idOf(request *jsonrpc.Request) jsonrpc.RequestId {
	if request == nil {
		return nil
	}
	return request.Id
}

func kindOf(connection *transport.Connection) transport.Kind {
	if connection == nil {
		return "unknown"
	}
	return connection.Kind
}

// New creates a connector building its backend with config and executor; it does not wait for readiness
func New(config *Config, executor backend.Executor, newBackend backend.New, options ...Option) (*Connector, error) {
	if newBackend == nil {
		return nil, errors.New("backend factory was nil")
	}
	if config == nil {
		config = DefaultConfig()
	}
	if executor == nil {
		executor = backend.NewPool(config.Executor.MaxConcurrency)
	}
	aBackend, err := newBackend(&config.Backend, executor)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend %v: %w", config.Backend.Name, err)
	}
	ret := &Connector{
		backend:     aBackend,
		pushMethods: NewMethodSet(config.PushMethods...),
		logger:      jsonrpc.DefaultLogger,
		logCalls:    pointer.DerefOr(config.LogCalls, false),
		ready:       NewSignal(),
		closing:     NewSignal(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret, nil
}
