package bridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/initia-labs/sidecar/aptos"
)

func Test_BuilderFields(t *testing.T) {
	cfg := Config{
		ChainId:           aptos.ChainMainnet,
		MaxGasAmount:      100_000_000,
		GasUnitPrice:      0,
		ExpirationTimeout: 30 * time.Second,
	}
	builder, err := NewTransactionBuilder(entryFunc, authFunc, cfg)
	require.NoError(t, err)
	builder.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	sender, err := aptos.ParseAccountAddress("0xc96aaa54e2d44c299564da76e1cd3184a2386b8d")
	require.NoError(t, err)

	signed, err := builder.Build(sender, []byte{0x02, 0xc0}, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(3), signed.RawTxn.SequenceNumber)
	require.Equal(t, uint64(100_000_000), signed.RawTxn.MaxGasAmount)
	require.Equal(t, uint64(1), signed.RawTxn.GasUnitPrice)
	require.Equal(t, uint64(1_700_000_030), signed.RawTxn.ExpirationTimestampSecs)
	require.Equal(t, aptos.ChainMainnet, signed.RawTxn.ChainId)

	// the transaction must be encodable as submitted
	_, err = signed.BcsSerialize()
	require.NoError(t, err)
}

func Test_BuilderRejectsInvalidAuthFunc(t *testing.T) {
	_, err := NewTransactionBuilder(entryFunc, "evm::authenticate", DefaultConfig())
	require.Error(t, err)

	_, err = NewTransactionBuilder("0x100::evm::", authFunc, DefaultConfig())
	require.Error(t, err)
}

func Test_SenderLocksReleaseEntries(t *testing.T) {
	locks := newSenderLocks()

	unlockA := locks.Lock(aptos.AccountAddress{1})
	unlockB := locks.Lock(aptos.AccountAddress{2})
	require.Equal(t, 2, locks.len())

	unlockA()
	unlockB()
	require.Equal(t, 0, locks.len())
}
