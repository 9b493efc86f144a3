package jsonrpc

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

// RequestId is the type used to represent the id of a JSON-RPC request.
// Numbers are kept as json.Number so they are written back exactly as received.
type RequestId any

// Error is used to provide additional information about the error that occurred.
type Error struct {
	// The error type that occurred.
	Code int `json:"code" yaml:"code" mapstructure:"code"`

	// Additional information about the error. The value of this member is defined by
	// the sender (e.g. detailed error information, nested errors etc.).
	Data interface{} `json:"data,omitempty" yaml:"data,omitempty" mapstructure:"data,omitempty"`

	// A short description of the error. The message SHOULD be limited to a concise
	// single sentence.
	Message string `json:"message" yaml:"message" mapstructure:"message"`
}

// Request represents a JSON-RPC request message.
type Request struct {
	// Id corresponds to the JSON schema field "id"; nil when absent or null.
	Id RequestId `json:"id" yaml:"id" mapstructure:"id"`

	// Jsonrpc corresponds to the JSON schema field "jsonrpc".
	Jsonrpc string `json:"jsonrpc" yaml:"jsonrpc" mapstructure:"jsonrpc"`

	// Method corresponds to the JSON schema field "method".
	Method string `json:"method" yaml:"method" mapstructure:"method"`

	// Params corresponds to the JSON schema field "params".
	// It is kept raw so the backend decides how to interpret positional values.
	Params json.RawMessage `json:"params,omitempty" yaml:"params,omitempty" mapstructure:"params,omitempty"`
}

// IsNotification returns true when the request carries no id.
func (m *Request) IsNotification() bool {
	return m == nil || m.Id == nil
}

// UnmarshalJSON is a lenient JSON unmarshaler for the Request type.
// Fields with an unexpected shape are left empty; validating them is up to the dispatcher.
func (m *Request) UnmarshalJSON(data []byte) error {
	*m = Request{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	fields := struct {
		Id      json.RawMessage `json:"id"`
		Jsonrpc json.RawMessage `json:"jsonrpc"`
		Method  json.RawMessage `json:"method"`
		Params  json.RawMessage `json:"params"`
	}{}
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return err
	}
	id, err := decodeId(fields.Id)
	if err != nil {
		return err
	}
	m.Id = id
	m.Jsonrpc = decodeString(fields.Jsonrpc)
	m.Method = decodeString(fields.Method)
	if len(fields.Params) > 0 && string(fields.Params) != "null" {
		m.Params = fields.Params
	}
	return nil
}

// Response represents a JSON-RPC response message.
type Response struct {
	// Id corresponds to the JSON schema field "id".
	Id RequestId `json:"id" yaml:"id" mapstructure:"id"`

	// Jsonrpc corresponds to the JSON schema field "jsonrpc".
	Jsonrpc string `json:"jsonrpc" yaml:"jsonrpc" mapstructure:"jsonrpc"`

	//Error
	Error *Error `json:"error,omitempty" yaml:"error" mapstructure:"error"`

	// Result corresponds to the JSON schema field "result".
	Result json.RawMessage `json:"result,omitempty" yaml:"result" mapstructure:"result"`
}

// NewResponse creates a new Response instance with the specified id and data.
func NewResponse(id RequestId, data []byte) *Response {
	return &Response{
		Id:      id,
		Jsonrpc: Version,
		Result:  data,
	}
}

// NewErrorResponse creates a new error Response instance with the specified id.
func NewErrorResponse(id RequestId, err *Error) *Response {
	return &Response{
		Id:      id,
		Jsonrpc: Version,
		Error:   err,
	}
}

// MarshalJSON writes either the result or the error member, never both.
// A successful empty result is written as null.
func (m *Response) MarshalJSON() ([]byte, error) {
	version := m.Jsonrpc
	if version == "" {
		version = Version
	}
	if m.Error != nil {
		return json.Marshal(&struct {
			Jsonrpc string    `json:"jsonrpc"`
			Id      RequestId `json:"id"`
			Error   *Error    `json:"error"`
		}{Jsonrpc: version, Id: m.Id, Error: m.Error})
	}
	result := m.Result
	if len(result) == 0 {
		result = json.RawMessage("null")
	}
	return json.Marshal(&struct {
		Jsonrpc string          `json:"jsonrpc"`
		Id      RequestId       `json:"id"`
		Result  json.RawMessage `json:"result"`
	}{Jsonrpc: version, Id: m.Id, Result: result})
}

// UnmarshalJSON is a custom JSON unmarshaler for the Response type.
func (m *Response) UnmarshalJSON(data []byte) error {
	required := struct {
		Id      json.RawMessage  `json:"id"`
		Jsonrpc *string          `json:"jsonrpc"`
		Result  *json.RawMessage `json:"result"`
		Error   *Error           `json:"error"`
	}{}
	err := json.Unmarshal(data, &required)
	if err != nil {
		return err
	}
	if len(required.Id) == 0 {
		return errors.New("field id in Response: required")
	}
	if required.Jsonrpc == nil {
		return errors.New("field jsonrpc in Response: required")
	}
	if required.Result == nil && required.Error == nil {
		return errors.New("field result in Response: required")
	}
	if m.Id, err = decodeId(required.Id); err != nil {
		return err
	}
	m.Jsonrpc = *required.Jsonrpc
	if required.Result != nil {
		m.Result = *required.Result
	}
	m.Error = required.Error
	return nil
}

func decodeId(raw json.RawMessage) (RequestId, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var id interface{}
	if err := decoder.Decode(&id); err != nil {
		return nil, err
	}
	return id, nil
}

func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 || raw[0] != '"' {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}
