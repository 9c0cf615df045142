package eth

import (
	"context"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/holiman/uint256"

	"github.com/initia-labs/sidecar/bridge"
	"github.com/initia-labs/sidecar/engine"
	rpctypes "github.com/initia-labs/sidecar/rpc/types"
	"github.com/initia-labs/sidecar/types"
)

// PublicAPI is the eth_ prefixed set of APIs of the Web3 JSON-RPC API,
// projected onto an Aptos engine. Block parameters are accepted and
// ignored; answers always reflect the latest ledger state.
type PublicAPI struct {
	logger log.Logger
	engine engine.Adapter
	bridge *bridge.Bridge
}

// NewPublicAPI creates an instance of the public ETH Web3 API.
func NewPublicAPI(logger log.Logger, adapter engine.Adapter, b *bridge.Bridge) *PublicAPI {
	return &PublicAPI{
		logger: logger.With("client", "json-rpc", "namespace", "eth"),
		engine: adapter,
		bridge: b,
	}
}

///////////////////////////////////////////////////////////////////////////////
///                           Chain Information                             ///
///////////////////////////////////////////////////////////////////////////////

// ChainId returns the chain id of the Aptos ledger.
func (e *PublicAPI) ChainId(ctx context.Context) (hexutil.Uint64, error) { //nolint
	e.logger.Debug("eth_chainId")

	info, err := e.engine.GetLedgerInfo(ctx)
	if err != nil {
		return 0, rpctypes.ToRPCError(err, "failed to get ledger info")
	}

	return hexutil.Uint64(info.ChainId), nil
}

// BlockNumber returns the current block height of the Aptos ledger.
func (e *PublicAPI) BlockNumber(ctx context.Context) (hexutil.Uint64, error) {
	e.logger.Debug("eth_blockNumber")

	info, err := e.engine.GetLedgerInfo(ctx)
	if err != nil {
		return 0, rpctypes.ToRPCError(err, "failed to get ledger info")
	}

	return hexutil.Uint64(info.BlockHeight), nil
}

// EstimateGas returns zero; execution happens on the Aptos side.
func (e *PublicAPI) EstimateGas(_ context.Context, _ rpctypes.TransactionArgs, _ *rpc.BlockNumberOrHash, _ *rpctypes.StateOverride) (hexutil.Uint64, error) {
	e.logger.Debug("eth_estimateGas")
	return 0, nil
}

///////////////////////////////////////////////////////////////////////////////
///                           Account Information                           ///
///////////////////////////////////////////////////////////////////////////////

// GetBalance returns the coin balance of the Aptos account derived from
// address.
func (e *PublicAPI) GetBalance(ctx context.Context, address common.Address, _ *rpc.BlockNumberOrHash) (*hexutil.U256, error) {
	e.logger.Debug("eth_getBalance", "address", address.String())

	balance, err := e.engine.GetAccountBalance(ctx, types.ToAptosAddress(address), e.engine.CoinType())
	if err != nil {
		return nil, rpctypes.ToRPCError(err, "failed to get balance")
	}

	return (*hexutil.U256)(uint256.NewInt(balance)), nil
}

///////////////////////////////////////////////////////////////////////////////
///                           Blocks                                        ///
///////////////////////////////////////////////////////////////////////////////

// GetBlockByHash returns a placeholder block.
func (e *PublicAPI) GetBlockByHash(_ context.Context, hash common.Hash, fullTx bool) (*rpctypes.Block, error) {
	e.logger.Debug("eth_getBlockByHash", "hash", hash.Hex(), "full", fullTx)
	return rpctypes.PlaceholderBlock(), nil
}

// GetBlockByNumber returns a placeholder block.
func (e *PublicAPI) GetBlockByNumber(_ context.Context, number rpc.BlockNumber, fullTx bool) (*rpctypes.Block, error) {
	e.logger.Debug("eth_getBlockByNumber", "number", number.String(), "full", fullTx)
	return rpctypes.PlaceholderBlock(), nil
}

///////////////////////////////////////////////////////////////////////////////
///                           Write Txs                                     ///
///////////////////////////////////////////////////////////////////////////////

// SendRawTransaction wraps the signed ethereum transaction into an Aptos
// transaction and submits it. The ethereum transaction hash is returned.
func (e *PublicAPI) SendRawTransaction(ctx context.Context, data hexutil.Bytes) (common.Hash, error) {
	e.logger.Debug("eth_sendRawTransaction", "length", len(data))

	hash, err := e.bridge.SendRawTransaction(ctx, data)
	if err != nil {
		return common.Hash{}, rpctypes.ToRPCError(err, "failed to submit transaction")
	}

	return hash, nil
}
