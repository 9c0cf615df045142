package engine

import (
	"context"
	"time"

	"cosmossdk.io/log"
	metrics "github.com/hashicorp/go-metrics"

	"github.com/initia-labs/sidecar/aptos"
)

var _ Adapter = (*Client)(nil)

// Client owns the configured adapter and instruments every call with
// latency and error metrics.
type Client struct {
	logger  log.Logger
	adapter Adapter
}

// NewClient wraps adapter.
func NewClient(logger log.Logger, adapter Adapter) *Client {
	return &Client{
		logger:  logger.With("module", "engine"),
		adapter: adapter,
	}
}

func (c *Client) CoinType() string  { return c.adapter.CoinType() }
func (c *Client) AuthFunc() string  { return c.adapter.AuthFunc() }
func (c *Client) EntryFunc() string { return c.adapter.EntryFunc() }

func (c *Client) GetLedgerInfo(ctx context.Context) (info *aptos.LedgerInfo, err error) {
	defer c.measure("get_ledger_info", time.Now(), &err)
	return c.adapter.GetLedgerInfo(ctx)
}

func (c *Client) GetAccount(ctx context.Context, addr aptos.AccountAddress) (account *aptos.AccountData, err error) {
	defer c.measure("get_account", time.Now(), &err)
	return c.adapter.GetAccount(ctx, addr)
}

func (c *Client) GetAccountBalance(ctx context.Context, addr aptos.AccountAddress, assetType string) (balance uint64, err error) {
	defer c.measure("get_account_balance", time.Now(), &err)
	return c.adapter.GetAccountBalance(ctx, addr, assetType)
}

func (c *Client) GetBlockByHeight(ctx context.Context, height uint64, withTransactions bool) (block *aptos.Block, err error) {
	defer c.measure("get_block_by_height", time.Now(), &err)
	return c.adapter.GetBlockByHeight(ctx, height, withTransactions)
}

func (c *Client) SubmitTransaction(ctx context.Context, tx *aptos.SignedTransaction) (pending *aptos.PendingTransaction, err error) {
	defer c.measure("submit_transaction", time.Now(), &err)
	return c.adapter.SubmitTransaction(ctx, tx)
}

func (c *Client) measure(op string, start time.Time, err *error) {
	metrics.MeasureSinceWithLabels([]string{"engine", "request_duration"}, start, []metrics.Label{{Name: "op", Value: op}})
	if *err != nil {
		metrics.IncrCounterWithLabels([]string{"engine", "request_errors"}, 1, []metrics.Label{{Name: "op", Value: op}})
		c.logger.Debug("engine request failed", "op", op, "err", *err)
	}
}
