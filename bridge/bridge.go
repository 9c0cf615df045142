package bridge

import (
	"context"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"

	"github.com/initia-labs/sidecar/crypto/ethsecp256k1"
	"github.com/initia-labs/sidecar/engine"
	"github.com/initia-labs/sidecar/types"
)

// Bridge translates signed ethereum transactions into Aptos transactions
// and submits them through the engine.
type Bridge struct {
	logger  log.Logger
	engine  engine.Adapter
	builder *TransactionBuilder

	// nil unless submissions are serialized per sender
	locks *senderLocks
}

// New builds a bridge over the given engine. The entry and auth functions
// are taken from the engine attributes.
func New(logger log.Logger, adapter engine.Adapter, cfg Config) (*Bridge, error) {
	builder, err := NewTransactionBuilder(adapter.EntryFunc(), adapter.AuthFunc(), cfg)
	if err != nil {
		return nil, err
	}

	b := &Bridge{
		logger:  logger.With("module", "bridge"),
		engine:  adapter,
		builder: builder,
	}
	if cfg.SerializeSubmissions {
		b.locks = newSenderLocks()
	}

	return b, nil
}

// SendRawTransaction decodes rawTx, fetches the sender's sequence number,
// and submits the wrapped transaction. It returns the ethereum transaction
// hash. Nothing is retried.
func (b *Bridge) SendRawTransaction(ctx context.Context, rawTx []byte) (common.Hash, error) {
	tx, signer, err := ethsecp256k1.DecodeAndRecover(rawTx)
	if err != nil {
		return common.Hash{}, err
	}

	sender := types.ToAptosAddress(signer)
	if b.locks != nil {
		unlock := b.locks.Lock(sender)
		defer unlock()
	}

	account, err := b.engine.GetAccount(ctx, sender)
	if err != nil {
		return common.Hash{}, err
	}

	signed, err := b.builder.Build(sender, rawTx, uint64(account.SequenceNumber))
	if err != nil {
		return common.Hash{}, err
	}

	pending, err := b.engine.SubmitTransaction(ctx, signed)
	if err != nil {
		return common.Hash{}, err
	}

	aptosHash, err := signed.Hash()
	if err != nil {
		b.logger.Debug("failed to compute aptos transaction hash", "err", err)
	}
	b.logger.Debug("submitted transaction",
		"eth_hash", tx.Hash(),
		"signer", signer,
		"sender", sender,
		"sequence_number", account.SequenceNumber,
		"aptos_hash", aptosHash.String(),
		"pending_hash", pending.Hash,
	)

	return tx.Hash(), nil
}
