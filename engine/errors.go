package engine

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of the engine errors.
const ModuleName = "engine"

// Engine Errors
var (
	// ErrTransport error for a request that never produced a response
	ErrTransport = errorsmod.Register(ModuleName, 2, "transport failure")

	// ErrUpstream error for a non-2xx response from the node
	ErrUpstream = errorsmod.Register(ModuleName, 3, "upstream error")

	// ErrNotFound error for a 404 response from the node
	ErrNotFound = errorsmod.Register(ModuleName, 4, "not found")

	// ErrDecode error for a response body that could not be decoded
	ErrDecode = errorsmod.Register(ModuleName, 5, "failed to decode response")

	// ErrUnimplemented error for an operation the adapter does not support
	ErrUnimplemented = errorsmod.Register(ModuleName, 6, "not implemented")
)
