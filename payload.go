package jsonrpc

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Payload is a decoded inbound message: either a single request or a batch.
type Payload struct {
	Request *Request
	Batch   BatchRequest
	batch   bool
}

// NewPayload creates a single request payload
func NewPayload(request *Request) *Payload {
	return &Payload{Request: request}
}

// NewBatchPayload creates a batch payload
func NewBatchPayload(requests ...*Request) *Payload {
	if requests == nil {
		requests = []*Request{}
	}
	return &Payload{Batch: requests, batch: true}
}

// IsBatch returns true when the payload was a top level JSON array
func (p *Payload) IsBatch() bool {
	return p != nil && p.batch
}

// Len returns number of requests
func (p *Payload) Len() int {
	if p == nil {
		return 0
	}
	if p.batch {
		return len(p.Batch)
	}
	return 1
}

// Requests returns payload requests in order
func (p *Payload) Requests() []*Request {
	if p == nil {
		return nil
	}
	if p.batch {
		return p.Batch
	}
	return []*Request{p.Request}
}

// UnmarshalJSON detects batch vs single structurally, by the top level JSON value.
func (p *Payload) UnmarshalJSON(data []byte) error {
	*p = Payload{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		p.batch = true
		return json.Unmarshal(trimmed, &p.Batch)
	}
	p.Request = &Request{}
	return json.Unmarshal(trimmed, p.Request)
}

// MarshalJSON writes the payload back in its original shape
func (p *Payload) MarshalJSON() ([]byte, error) {
	if p.batch {
		return json.Marshal([]*Request(p.Batch))
	}
	return json.Marshal(p.Request)
}
