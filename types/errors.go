package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Bridge Errors
var (
	// ErrEmptyRawTransactionData error for an empty eth_sendRawTransaction payload
	ErrEmptyRawTransactionData = errorsmod.Register(ModuleName, 2, "empty raw transaction data")

	// ErrFailedToDecodeSignedTransaction error for bytes that are not a valid EIP-2718 envelope
	ErrFailedToDecodeSignedTransaction = errorsmod.Register(ModuleName, 3, "failed to decode signed transaction")

	// ErrInvalidTransactionSignature error for a signature that cannot be recovered or is malleable
	ErrInvalidTransactionSignature = errorsmod.Register(ModuleName, 4, "invalid transaction signature")

	// ErrInvalidAddress error for a malformed address
	ErrInvalidAddress = errorsmod.Register(ModuleName, 5, "invalid address")

	// ErrInvalidConfig error for an invalid configuration value
	ErrInvalidConfig = errorsmod.Register(ModuleName, 6, "invalid config")
)

// IsInputError reports whether err was caused by the caller's input rather
// than by the engine or the node behind it.
func IsInputError(err error) bool {
	return errorsmod.IsOf(err,
		ErrEmptyRawTransactionData,
		ErrFailedToDecodeSignedTransaction,
		ErrInvalidTransactionSignature,
		ErrInvalidAddress,
	)
}
