package jsonrpc

import (
	"errors"
	"fmt"
)

// CodedError is implemented by backend errors that carry their own JSON-RPC code.
type CodedError interface {
	error
	ErrorCode() int
}

// Error returns the error message
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Data == nil {
		return fmt.Sprintf("code: %d, message: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("code: %d, message: %s, data: %v", e.Code, e.Message, e.Data)
}

// ErrorCode returns the JSON-RPC code
func (e *Error) ErrorCode() int {
	return e.Code
}

// NewError creates a new coded error
func NewError(code int, message string, data interface{}) *Error {
	return &Error{Code: code, Message: message, Data: data}
}

// NewParsingError creates a new parsing error
func NewParsingError(message string, data interface{}) *Error {
	return NewError(ParseError, message, data)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, data interface{}) *Error {
	return NewError(InternalError, message, data)
}

// NewInvalidRequest creates a new invalid request error
func NewInvalidRequest(message string, data interface{}) *Error {
	return NewError(InvalidRequest, message, data)
}

// NewInvalidParamsError creates a new invalid params error
func NewInvalidParamsError(message string, data interface{}) *Error {
	return NewError(InvalidParams, message, data)
}

// NewMethodNotFound creates a new method not found error
func NewMethodNotFound(message string, data interface{}) *Error {
	return NewError(MethodNotFound, message, data)
}

// NewMethodNotSupported creates an error for a method the current transport cannot serve
func NewMethodNotSupported(message string, data interface{}) *Error {
	return NewError(MethodNotSupported, message, data)
}

// NewResourceUnavailable creates a resource unavailable error
func NewResourceUnavailable(message string, data interface{}) *Error {
	return NewError(ResourceUnavailable, message, data)
}

// NewLimitExceeded creates a limit exceeded error
func NewLimitExceeded(message string, data interface{}) *Error {
	return NewError(LimitExceeded, message, data)
}

// AsError maps any error to a coded error. Coded errors keep their code and message,
// anything else becomes an internal error carrying the original message.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var target *Error
	if errors.As(err, &target) && target != nil {
		return target
	}
	var coded CodedError
	if errors.As(err, &coded) {
		return NewError(coded.ErrorCode(), coded.Error(), nil)
	}
	return NewInternalError(err.Error(), nil)
}

// IsCoded returns true if err is or wraps an error carrying its own JSON-RPC code.
func IsCoded(err error) bool {
	var coded CodedError
	return errors.As(err, &coded)
}
