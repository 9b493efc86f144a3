package jsonrpc

import (
	"reflect"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      *Request
		wantError bool
	}{
		{
			name:  "valid request",
			input: `{"jsonrpc":"2.0","method":"test","id":1,"params":["latest",true]}`,
			want: &Request{
				Jsonrpc: "2.0",
				Method:  "test",
				Id:      json.Number("1"),
				Params:  json.RawMessage(`["latest",true]`),
			},
		},
		{
			name:  "string id",
			input: `{"jsonrpc":"2.0","method":"test","id":"a-1"}`,
			want:  &Request{Jsonrpc: "2.0", Method: "test", Id: "a-1"},
		},
		{
			name:  "missing jsonrpc version",
			input: `{"method":"test","id":1}`,
			want:  &Request{Method: "test", Id: json.Number("1")},
		},
		{
			name:  "missing id is a notification",
			input: `{"jsonrpc":"2.0","method":"test"}`,
			want:  &Request{Jsonrpc: "2.0", Method: "test"},
		},
		{
			name:  "null id",
			input: `{"jsonrpc":"2.0","method":"test","id":null}`,
			want:  &Request{Jsonrpc: "2.0", Method: "test"},
		},
		{
			name:  "null params",
			input: `{"jsonrpc":"2.0","method":"test","id":2,"params":null}`,
			want:  &Request{Jsonrpc: "2.0", Method: "test", Id: json.Number("2")},
		},
		{
			name:  "method with unexpected type",
			input: `{"jsonrpc":"2.0","method":5,"id":2}`,
			want:  &Request{Jsonrpc: "2.0", Id: json.Number("2")},
		},
		{
			name:  "not an object",
			input: `"eth_chainId"`,
			want:  &Request{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Request
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if got.Jsonrpc != tt.want.Jsonrpc {
				t.Errorf("Jsonrpc: got %v, want %v", got.Jsonrpc, tt.want.Jsonrpc)
			}
			if got.Method != tt.want.Method {
				t.Errorf("Method: got %v, want %v", got.Method, tt.want.Method)
			}
			if !reflect.DeepEqual(got.Id, tt.want.Id) {
				t.Errorf("Id: got %v (%T), want %v (%T)", got.Id, got.Id, tt.want.Id, tt.want.Id)
			}
			if string(got.Params) != string(tt.want.Params) {
				t.Errorf("Params: got %s, want %s", got.Params, tt.want.Params)
			}
			assert.Equal(t, tt.want.Id == nil, got.IsNotification())
		})
	}
}

func TestResponse_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		response *Response
		expected string
	}{
		{
			name:     "result",
			response: NewResponse(json.Number("2"), json.RawMessage(`{"status":"ok"}`)),
			expected: `{"jsonrpc":"2.0","id":2,"result":{"status":"ok"}}`,
		},
		{
			name:     "empty result is null",
			response: NewResponse("x", nil),
			expected: `{"jsonrpc":"2.0","id":"x","result":null}`,
		},
		{
			name:     "error wins over result",
			response: &Response{Id: 3, Result: json.RawMessage(`1`), Error: NewInvalidRequest("Invalid Request", "Details here")},
			expected: `{"jsonrpc":"2.0","id":3,"error":{"code":-32600,"data":"Details here","message":"Invalid Request"}}`,
		},
		{
			name:     "null id error",
			response: NewErrorResponse(nil, NewParsingError("unexpected end of JSON input", nil)),
			expected: `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"unexpected end of JSON input"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.response)
			if !assert.NoError(t, err) {
				return
			}
			assert.JSONEq(t, tt.expected, string(got))
		})
	}
}

func TestResponse_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      *Response
		wantError bool
	}{
		{
			name:  "valid response",
			input: `{"jsonrpc":"2.0","id":1,"result":{"status":"ok"}}`,
			want: &Response{
				Jsonrpc: "2.0",
				Id:      json.Number("1"),
				Result:  json.RawMessage(`{"status":"ok"}`),
			},
		},
		{
			name:  "error response",
			input: `{"jsonrpc":"2.0","id":"e1","error":{"code":-32700,"message":"parse"}}`,
			want: &Response{
				Jsonrpc: "2.0",
				Id:      "e1",
				Error:   &Error{Code: ParseError, Message: "parse"},
			},
		},
		{
			name:      "missing jsonrpc version",
			input:     `{"id":1,"result":{"status":"ok"}}`,
			wantError: true,
		},
		{
			name:      "missing id",
			input:     `{"jsonrpc":"2.0","result":{"status":"ok"}}`,
			wantError: true,
		},
		{
			name:      "missing result",
			input:     `{"jsonrpc":"2.0","id":1}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Response
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tt.want.Jsonrpc, got.Jsonrpc)
			assert.Equal(t, tt.want.Id, got.Id)
			assert.Equal(t, string(tt.want.Result), string(got.Result))
			assert.Equal(t, tt.want.Error, got.Error)
		})
	}
}
