package jsonrpc

import (
	"github.com/goccy/go-json"
)

// BatchRequest represents a JSON-RPC 2.0 batch request as per specs.
// Entries that were null on the wire are kept as nil to preserve positions.
type BatchRequest []*Request

// BatchResponse represents a JSON-RPC 2.0 batch response as per specs
type BatchResponse []*Response

// UnmarshalJSON is a custom JSON unmarshaler for the BatchRequest type.
// An empty array decodes fine; rejecting it is left to the dispatcher.
func (b *BatchRequest) UnmarshalJSON(data []byte) error {
	var requests []*Request
	if err := json.Unmarshal(data, &requests); err != nil {
		return err
	}
	if requests == nil {
		requests = []*Request{}
	}
	*b = requests
	return nil
}

// MarshalJSON is a custom JSON marshaler for BatchResponse
func (b BatchResponse) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]*Response(b))
}
