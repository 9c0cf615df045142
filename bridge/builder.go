package bridge

import (
	"fmt"
	"time"

	vmtypes "github.com/initia-labs/movevm/types"

	"github.com/initia-labs/sidecar/aptos"
)

// TransactionBuilder wraps raw ethereum transactions into Aptos entry
// function calls authenticated by the on-chain auth function.
type TransactionBuilder struct {
	entryFunc aptos.MemberId
	authFunc  vmtypes.FunctionInfo
	cfg       Config
	now       func() time.Time
}

// NewTransactionBuilder parses entryFunc and authFunc once; both have the
// `<address>::<module>::<member>` form.
func NewTransactionBuilder(entryFunc, authFunc string, cfg Config) (*TransactionBuilder, error) {
	entry, err := aptos.ParseMemberId(entryFunc)
	if err != nil {
		return nil, fmt.Errorf("invalid entry function: %w", err)
	}

	auth, err := aptos.ParseFunctionInfo(authFunc)
	if err != nil {
		return nil, fmt.Errorf("invalid auth function: %w", err)
	}

	return &TransactionBuilder{
		entryFunc: entry,
		authFunc:  auth,
		cfg:       cfg,
		now:       time.Now,
	}, nil
}

// Build returns the signed transaction submitting rawTx on behalf of sender.
// The authenticator carries no signature; the auth function verifies the
// ethereum signature inside rawTx.
func (b *TransactionBuilder) Build(sender aptos.AccountAddress, rawTx []byte, sequenceNumber uint64) (*aptos.SignedTransaction, error) {
	senderArg, err := sender.BcsSerialize()
	if err != nil {
		return nil, err
	}
	rawTxArg, err := vmtypes.SerializeBytes(rawTx)
	if err != nil {
		return nil, err
	}

	gasUnitPrice := b.cfg.GasUnitPrice
	if gasUnitPrice == 0 {
		gasUnitPrice = 1
	}

	return &aptos.SignedTransaction{
		RawTxn: aptos.RawTransaction{
			Sender:         sender,
			SequenceNumber: sequenceNumber,
			Payload: &aptos.TransactionPayload__EntryFunction{
				Value: aptos.NewEntryFunction(b.entryFunc, []vmtypes.TypeTag{}, [][]byte{senderArg, rawTxArg}),
			},
			MaxGasAmount:            b.cfg.MaxGasAmount,
			GasUnitPrice:            gasUnitPrice,
			ExpirationTimestampSecs: uint64(b.now().Add(b.cfg.ExpirationTimeout).Unix()),
			ChainId:                 b.cfg.ChainId,
		},
		Authenticator: aptos.NewAbstractionAuthenticator(b.authFunc, []byte{}, []byte{}),
	}, nil
}
