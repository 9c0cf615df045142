package bridge

import (
	"time"

	"github.com/initia-labs/sidecar/aptos"
)

const (
	DefaultMaxGasAmount      = uint64(2_000_000)
	DefaultGasUnitPrice      = uint64(100)
	DefaultExpirationTimeout = 10 * time.Second
)

// Config controls how ethereum transactions are wrapped.
type Config struct {
	// ChainId is stamped on every built transaction.
	ChainId aptos.ChainId
	// MaxGasAmount is the gas limit of every built transaction.
	MaxGasAmount uint64
	// GasUnitPrice is clamped to at least 1.
	GasUnitPrice uint64
	// ExpirationTimeout is added to the current time for the expiration.
	ExpirationTimeout time.Duration
	// SerializeSubmissions holds a per-sender lock from the account fetch
	// until the submission returns.
	SerializeSubmissions bool
}

func DefaultConfig() Config {
	return Config{
		ChainId:           aptos.ChainTesting,
		MaxGasAmount:      DefaultMaxGasAmount,
		GasUnitPrice:      DefaultGasUnitPrice,
		ExpirationTimeout: DefaultExpirationTimeout,
	}
}
