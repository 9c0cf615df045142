package types

import (
	"errors"

	"github.com/initia-labs/sidecar/types"
)

// JSON-RPC 2.0 error codes.
const (
	InvalidParamsCode = -32602
	InternalErrorCode = -32603
)

var _ interface{ ErrorCode() int } = (*Error)(nil)

// ErrMethodNotImplemented is returned by registered methods the bridge does
// not serve.
var ErrMethodNotImplemented = NewInternalError("method not implemented")

// Error is an API error that carries its JSON-RPC error code.
type Error struct {
	code    int
	message string
}

func NewInvalidParamsError(message string) *Error {
	return &Error{code: InvalidParamsCode, message: message}
}

func NewInternalError(message string) *Error {
	return &Error{code: InternalErrorCode, message: message}
}

// Error implements error interface, returning the error message.
func (e *Error) Error() string { return e.message }

// ErrorCode returns the JSON-RPC error code.
func (e *Error) ErrorCode() int { return e.code }

// ToRPCError converts a handler error for the caller. Input errors keep
// their text and map to invalid params. Everything else becomes an
// internal error with the given generic message, so upstream details stay
// in the logs.
func ToRPCError(err error, message string) error {
	if err == nil {
		return nil
	}

	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	if types.IsInputError(err) {
		return NewInvalidParamsError(err.Error())
	}

	return NewInternalError(message)
}
