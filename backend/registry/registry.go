// Package registry provides a method table backend.
package registry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/viant/jsonrpc-connector"
	"github.com/viant/jsonrpc-connector/backend"
)

// Func implements a single method
type Func func(ctx context.Context, params json.RawMessage) (interface{}, error)

// Registry is a backend dispatching calls to registered functions
type Registry struct {
	executor     backend.Executor
	methods      map[string]Func
	mux          sync.RWMutex
	initializer  func(ctx context.Context) error
	disconnector func(ctx context.Context) error
	closed       int32
}

// Option represents registry option
type Option func(r *Registry)

// WithInitializer sets a hook run by Initialize
func WithInitializer(fn func(ctx context.Context) error) Option {
	return func(r *Registry) { r.initializer = fn }
}

// WithDisconnector sets a hook run by Disconnect
func WithDisconnector(fn func(ctx context.Context) error) Option {
	return func(r *Registry) { r.disconnector = fn }
}

// WithExecutor sets executor
func WithExecutor(executor backend.Executor) Option {
	return func(r *Registry) { r.executor = executor }
}

// Register adds or replaces a method
func (r *Registry) Register(method string, fn Func) *Registry {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.methods[method] = fn
	return r
}

// Methods returns number of registered methods
func (r *Registry) Methods() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.methods)
}

// New returns the registry as a backend; it matches backend.New so a registry can be passed to a connector.
func (r *Registry) New(_ *backend.Config, executor backend.Executor) (backend.Backend, error) {
	if executor != nil {
		r.executor = executor
	}
	return r, nil
}

// Initialize runs the initializer hook
func (r *Registry) Initialize(ctx context.Context) error {
	if r.initializer == nil {
		return nil
	}
	return r.initializer(ctx)
}

// ExecuteRaw executes method
func (r *Registry) ExecuteRaw(ctx context.Context, method string, params json.RawMessage) (json.RawMessage, error) {
	if atomic.LoadInt32(&r.closed) == 1 {
		return nil, jsonrpc.NewResourceUnavailable("backend is disconnected", nil)
	}
	r.mux.RLock()
	fn, ok := r.methods[method]
	r.mux.RUnlock()
	if !ok {
		return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("the method %s does not exist/is not available", method), nil)
	}
	var result json.RawMessage
	err := r.executor.Execute(ctx, func(ctx context.Context) error {
		value, err := fn(ctx, params)
		if err != nil {
			return err
		}
		result, err = encode(value)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Disconnect marks registry as closed and runs the disconnector hook
func (r *Registry) Disconnect(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&r.closed, 0, 1) {
		return nil
	}
	if r.disconnector == nil {
		return nil
	}
	return r.disconnector(ctx)
}

func encode(value interface{}) (json.RawMessage, error) {
	switch actual := value.(type) {
	case nil:
		return json.RawMessage("null"), nil
	case json.RawMessage:
		return actual, nil
	case []byte:
		return json.RawMessage(actual), nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("failed to encode result: %v", err), nil)
	}
	return data, nil
}

// NewRegistry creates a registry
func NewRegistry(options ...Option) *Registry {
	ret := &Registry{
		methods:  map[string]Func{},
		executor: backend.NewPool(0),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}
