package engine

//go:generate mockgen -destination=mock/adapter.go -package=mock github.com/initia-labs/sidecar/engine Adapter

import (
	"context"

	"github.com/initia-labs/sidecar/aptos"
)

// Adapter is the capability set the bridge needs from an Aptos execution
// engine. Implementations are shared across concurrent requests and must be
// safe for concurrent use.
type Adapter interface {
	// CoinType is the fungible asset type used for balance queries.
	CoinType() string
	// AuthFunc is the `function_info` of the on-chain authenticator.
	AuthFunc() string
	// EntryFunc is the entry function that receives ethereum transactions.
	EntryFunc() string

	GetLedgerInfo(ctx context.Context) (*aptos.LedgerInfo, error)
	GetAccount(ctx context.Context, addr aptos.AccountAddress) (*aptos.AccountData, error)
	GetAccountBalance(ctx context.Context, addr aptos.AccountAddress, assetType string) (uint64, error)
	GetBlockByHeight(ctx context.Context, height uint64, withTransactions bool) (*aptos.Block, error)
	SubmitTransaction(ctx context.Context, tx *aptos.SignedTransaction) (*aptos.PendingTransaction, error)
}

// BasicConfig holds the adapter independent settings every adapter exposes.
type BasicConfig struct {
	CoinType  string
	AuthFunc  string
	EntryFunc string
}

// Basic implements the attribute half of Adapter. Adapters embed it.
type Basic struct {
	cfg BasicConfig
}

func NewBasic(cfg BasicConfig) Basic {
	return Basic{cfg: cfg}
}

func (b Basic) CoinType() string  { return b.cfg.CoinType }
func (b Basic) AuthFunc() string  { return b.cfg.AuthFunc }
func (b Basic) EntryFunc() string { return b.cfg.EntryFunc }
