package connector

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/viant/jsonrpc-connector"
)

// Outcome is the settled result of a single dispatched request: either Result or Err is set
type Outcome struct {
	Result json.RawMessage
	Err    *jsonrpc.Error
}

// Failed returns true if the outcome carries an error
func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// Code returns the error code, 0 for a successful outcome
func (o *Outcome) Code() int {
	if o.Err == nil {
		return 0
	}
	return o.Err.Code
}

// Result holds outcomes aligned positionally with the payload requests
type Result struct {
	Outcomes []Outcome
}

// Call represents an in-flight dispatch
type Call struct {
	result *Result
	err    *jsonrpc.Error
	done   chan struct{}
}

// Done returns a channel closed once every request of the call settled
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Wait waits for the call to settle.
// A single request returns its dispatch error; a batch never fails once dispatched.
func (c *Call) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

func (c *Call) setResult(result *Result) {
	c.result = result
	close(c.done)
}

func (c *Call) setError(err *jsonrpc.Error) {
	c.err = err
	close(c.done)
}

func newCall() *Call {
	return &Call{done: make(chan struct{})}
}
