package config

import (
	"net/url"
	"time"

	"github.com/initia-labs/sidecar/aptos"
)

const (
	DefaultCoinType  = "0x1::aptos_coin::AptosCoin"
	DefaultAuthFunc  = "0x100::evm::authenticate"
	DefaultEntryFunc = "0x100::evm::transact"

	DefaultMaxGasAmount = uint64(2_000_000)
	DefaultGasUnitPrice = uint64(100)

	DefaultEndpoint       = "http://127.0.0.1:8080/v1"
	DefaultTimeoutSeconds = uint64(10)
	DefaultChainId        = aptos.ChainTesting

	DefaultExpirationTimeout = 10 * time.Second
)

// AdapterKind selects the engine adapter.
type AdapterKind string

const (
	AdapterRemote AdapterKind = "Remote"
	AdapterLocal  AdapterKind = "Local"
)

// EngineConfig is the `[engine]` section.
type EngineConfig struct {
	Basic   BasicConfig   `mapstructure:"basic"`
	Adapter AdapterConfig `mapstructure:"-"`
}

// BasicConfig is the `[engine.basic]` section.
type BasicConfig struct {
	CoinType  string `mapstructure:"coin_type"`
	AuthFunc  string `mapstructure:"auth_func"`
	EntryFunc string `mapstructure:"entry_func"`

	MaxGasAmount uint64 `mapstructure:"max_gas_amount"`
	GasUnitPrice uint64 `mapstructure:"gas_unit_price"`
	// ExpirationSeconds of 0 follows the remote timeout.
	ExpirationSeconds    uint64 `mapstructure:"expiration_seconds"`
	SerializeSubmissions bool   `mapstructure:"serialize_submissions"`
}

// AdapterConfig is `engine.adapter`, either the string "Local" or a single
// `Remote` (or `Local`) table.
type AdapterConfig struct {
	Kind   AdapterKind
	Remote RemoteConfig
}

// RemoteConfig is the `[engine.adapter.Remote]` table.
type RemoteConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  uint64        `mapstructure:"timeout"`
	ChainId  aptos.ChainId `mapstructure:"chain_id"`
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Basic: BasicConfig{
			CoinType:     DefaultCoinType,
			AuthFunc:     DefaultAuthFunc,
			EntryFunc:    DefaultEntryFunc,
			MaxGasAmount: DefaultMaxGasAmount,
			GasUnitPrice: DefaultGasUnitPrice,
		},
		Adapter: AdapterConfig{
			Kind:   AdapterRemote,
			Remote: DefaultRemoteConfig(),
		},
	}
}

func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeoutSeconds,
		ChainId:  DefaultChainId,
	}
}

func (c RemoteConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c EngineConfig) Validate() error {
	if c.Basic.CoinType == "" {
		return invalid("engine.basic.coin_type cannot be empty")
	}
	if _, err := aptos.ParseFunctionInfo(c.Basic.AuthFunc); err != nil {
		return invalid("engine.basic.auth_func: %s", err)
	}
	if _, err := aptos.ParseMemberId(c.Basic.EntryFunc); err != nil {
		return invalid("engine.basic.entry_func: %s", err)
	}

	switch c.Adapter.Kind {
	case AdapterLocal:
		return nil
	case AdapterRemote:
		return c.Adapter.Remote.Validate()
	default:
		return invalid("unknown engine adapter %q", c.Adapter.Kind)
	}
}

func (c RemoteConfig) Validate() error {
	endpoint, err := url.ParseRequestURI(c.Endpoint)
	if err != nil {
		return invalid("engine.adapter.Remote.endpoint: %s", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return invalid("engine.adapter.Remote.endpoint: unsupported scheme %q", endpoint.Scheme)
	}
	if c.Timeout == 0 {
		return invalid("engine.adapter.Remote.timeout must be positive")
	}
	return nil
}
