package jsonrpc

// Version is the JSON-RPC protocol version.
const Version = "2.0"

const (
	ParseError     = -32700
	InvalidRequest = -32600
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603
)

// Server error codes reserved by EIP-1474.
const (
	InvalidInput        = -32000
	ResourceNotFound    = -32001
	ResourceUnavailable = -32002
	TransactionRejected = -32003
	MethodNotSupported  = -32004
	LimitExceeded       = -32005
	VersionNotSupported = -32006
)
