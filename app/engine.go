package app

import (
	"cosmossdk.io/log"

	"github.com/initia-labs/sidecar/aptos"
	"github.com/initia-labs/sidecar/config"
	"github.com/initia-labs/sidecar/engine"
	"github.com/initia-labs/sidecar/engine/local"
	"github.com/initia-labs/sidecar/engine/remote"
	"github.com/initia-labs/sidecar/types"
)

// NewAdapter builds the engine adapter selected by `engine.adapter`.
func NewAdapter(logger log.Logger, cfg config.Config) (engine.Adapter, error) {
	basic := engine.BasicConfig{
		CoinType:  cfg.Engine.Basic.CoinType,
		AuthFunc:  cfg.Engine.Basic.AuthFunc,
		EntryFunc: cfg.Engine.Basic.EntryFunc,
	}

	switch cfg.Engine.Adapter.Kind {
	case config.AdapterLocal:
		return local.NewAdapter(basic), nil
	case config.AdapterRemote:
		adapter, err := remote.NewAdapter(logger, basic, remote.Config{
			Endpoint: cfg.Engine.Adapter.Remote.Endpoint,
			Timeout:  cfg.Engine.Adapter.Remote.TimeoutDuration(),
		})
		if err != nil {
			return nil, err
		}
		return adapter, nil
	default:
		return nil, types.ErrInvalidConfig.Wrapf("unknown engine adapter %q", cfg.Engine.Adapter.Kind)
	}
}

// ChainId is the chain id stamped on built transactions. The local adapter
// has no chain of its own and uses the testing chain.
func ChainId(cfg config.Config) aptos.ChainId {
	if cfg.Engine.Adapter.Kind == config.AdapterRemote {
		return cfg.Engine.Adapter.Remote.ChainId
	}
	return config.DefaultChainId
}
