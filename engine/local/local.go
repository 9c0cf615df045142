package local

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/initia-labs/sidecar/aptos"
	"github.com/initia-labs/sidecar/engine"
)

var _ engine.Adapter = (*Adapter)(nil)

// Adapter is the placeholder for an in-process execution engine. Every
// operation fails with engine.ErrUnimplemented.
type Adapter struct {
	engine.Basic
}

func NewAdapter(basic engine.BasicConfig) *Adapter {
	return &Adapter{Basic: engine.NewBasic(basic)}
}

func (a *Adapter) GetLedgerInfo(context.Context) (*aptos.LedgerInfo, error) {
	return nil, unimplemented("get_ledger_info")
}

func (a *Adapter) GetAccount(context.Context, aptos.AccountAddress) (*aptos.AccountData, error) {
	return nil, unimplemented("get_account")
}

func (a *Adapter) GetAccountBalance(context.Context, aptos.AccountAddress, string) (uint64, error) {
	return 0, unimplemented("get_account_balance")
}

func (a *Adapter) GetBlockByHeight(context.Context, uint64, bool) (*aptos.Block, error) {
	return nil, unimplemented("get_block_by_height")
}

func (a *Adapter) SubmitTransaction(context.Context, *aptos.SignedTransaction) (*aptos.PendingTransaction, error) {
	return nil, unimplemented("submit_transaction")
}

func unimplemented(op string) error {
	return errorsmod.Wrapf(engine.ErrUnimplemented, "local engine: %s", op)
}
