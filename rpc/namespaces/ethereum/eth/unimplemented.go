package eth

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	rpctypes "github.com/initia-labs/sidecar/rpc/types"
)

// The methods below are part of the Ethereum JSON-RPC API but have no
// counterpart in the bridge. They are registered so callers get an internal
// error instead of "method not found".

func (e *PublicAPI) unimplemented(method string) error {
	e.logger.Debug(method, "implemented", false)
	return rpctypes.ErrMethodNotImplemented
}

func (e *PublicAPI) ProtocolVersion() (hexutil.Uint, error) {
	return 0, e.unimplemented("eth_protocolVersion")
}

func (e *PublicAPI) Syncing() (any, error) {
	return nil, e.unimplemented("eth_syncing")
}

func (e *PublicAPI) Coinbase() (common.Address, error) {
	return common.Address{}, e.unimplemented("eth_coinbase")
}

func (e *PublicAPI) Accounts() ([]common.Address, error) {
	return nil, e.unimplemented("eth_accounts")
}

func (e *PublicAPI) Mining() (bool, error) {
	return false, e.unimplemented("eth_mining")
}

func (e *PublicAPI) Hashrate() (hexutil.Uint64, error) {
	return 0, e.unimplemented("eth_hashrate")
}

func (e *PublicAPI) GasPrice() (*hexutil.Big, error) {
	return nil, e.unimplemented("eth_gasPrice")
}

func (e *PublicAPI) MaxPriorityFeePerGas() (*hexutil.Big, error) {
	return nil, e.unimplemented("eth_maxPriorityFeePerGas")
}

func (e *PublicAPI) BlobBaseFee() (*hexutil.Big, error) {
	return nil, e.unimplemented("eth_blobBaseFee")
}

func (e *PublicAPI) FeeHistory(_ hexutil.Uint64, _ rpc.BlockNumber, _ *[]float64) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_feeHistory")
}

func (e *PublicAPI) GetTransactionCount(_ common.Address, _ *rpc.BlockNumberOrHash) (*hexutil.Uint64, error) {
	return nil, e.unimplemented("eth_getTransactionCount")
}

func (e *PublicAPI) GetCode(_ common.Address, _ *rpc.BlockNumberOrHash) (hexutil.Bytes, error) {
	return nil, e.unimplemented("eth_getCode")
}

func (e *PublicAPI) GetStorageAt(_ common.Address, _ string, _ *rpc.BlockNumberOrHash) (hexutil.Bytes, error) {
	return nil, e.unimplemented("eth_getStorageAt")
}

func (e *PublicAPI) GetProof(_ common.Address, _ []string, _ *rpc.BlockNumberOrHash) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getProof")
}

func (e *PublicAPI) Call(_ rpctypes.TransactionArgs, _ *rpc.BlockNumberOrHash, _ *rpctypes.StateOverride, _ *json.RawMessage) (hexutil.Bytes, error) {
	return nil, e.unimplemented("eth_call")
}

func (e *PublicAPI) CreateAccessList(_ rpctypes.TransactionArgs, _ *rpc.BlockNumberOrHash) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_createAccessList")
}

func (e *PublicAPI) SimulateV1(_ json.RawMessage, _ *rpc.BlockNumberOrHash) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_simulateV1")
}

func (e *PublicAPI) GetHeaderByHash(_ common.Hash) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getHeaderByHash")
}

func (e *PublicAPI) GetHeaderByNumber(_ rpc.BlockNumber) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getHeaderByNumber")
}

func (e *PublicAPI) GetBlockReceipts(_ rpc.BlockNumberOrHash) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getBlockReceipts")
}

func (e *PublicAPI) GetBlockTransactionCountByHash(_ common.Hash) (*hexutil.Uint, error) {
	return nil, e.unimplemented("eth_getBlockTransactionCountByHash")
}

func (e *PublicAPI) GetBlockTransactionCountByNumber(_ rpc.BlockNumber) (*hexutil.Uint, error) {
	return nil, e.unimplemented("eth_getBlockTransactionCountByNumber")
}

func (e *PublicAPI) GetUncleByBlockHashAndIndex(_ common.Hash, _ hexutil.Uint) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getUncleByBlockHashAndIndex")
}

func (e *PublicAPI) GetUncleByBlockNumberAndIndex(_ rpc.BlockNumber, _ hexutil.Uint) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getUncleByBlockNumberAndIndex")
}

func (e *PublicAPI) GetUncleCountByBlockHash(_ common.Hash) (*hexutil.Uint, error) {
	return nil, e.unimplemented("eth_getUncleCountByBlockHash")
}

func (e *PublicAPI) GetUncleCountByBlockNumber(_ rpc.BlockNumber) (*hexutil.Uint, error) {
	return nil, e.unimplemented("eth_getUncleCountByBlockNumber")
}

func (e *PublicAPI) GetTransactionByHash(_ common.Hash) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getTransactionByHash")
}

func (e *PublicAPI) GetRawTransactionByHash(_ common.Hash) (hexutil.Bytes, error) {
	return nil, e.unimplemented("eth_getRawTransactionByHash")
}

func (e *PublicAPI) GetTransactionByBlockHashAndIndex(_ common.Hash, _ hexutil.Uint) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getTransactionByBlockHashAndIndex")
}

func (e *PublicAPI) GetTransactionByBlockNumberAndIndex(_ rpc.BlockNumber, _ hexutil.Uint) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getTransactionByBlockNumberAndIndex")
}

func (e *PublicAPI) GetRawTransactionByBlockHashAndIndex(_ common.Hash, _ hexutil.Uint) (hexutil.Bytes, error) {
	return nil, e.unimplemented("eth_getRawTransactionByBlockHashAndIndex")
}

func (e *PublicAPI) GetRawTransactionByBlockNumberAndIndex(_ rpc.BlockNumber, _ hexutil.Uint) (hexutil.Bytes, error) {
	return nil, e.unimplemented("eth_getRawTransactionByBlockNumberAndIndex")
}

func (e *PublicAPI) GetTransactionReceipt(_ common.Hash) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getTransactionReceipt")
}

func (e *PublicAPI) SendTransaction(_ rpctypes.TransactionArgs) (common.Hash, error) {
	return common.Hash{}, e.unimplemented("eth_sendTransaction")
}

func (e *PublicAPI) Sign(_ common.Address, _ hexutil.Bytes) (hexutil.Bytes, error) {
	return nil, e.unimplemented("eth_sign")
}

func (e *PublicAPI) SignTransaction(_ rpctypes.TransactionArgs) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_signTransaction")
}

func (e *PublicAPI) SignTypedData(_ common.Address, _ json.RawMessage) (hexutil.Bytes, error) {
	return nil, e.unimplemented("eth_signTypedData")
}

func (e *PublicAPI) GetWork() ([4]string, error) {
	return [4]string{}, e.unimplemented("eth_getWork")
}

func (e *PublicAPI) SubmitWork(_ hexutil.Bytes, _ common.Hash, _ common.Hash) (bool, error) {
	return false, e.unimplemented("eth_submitWork")
}

func (e *PublicAPI) SubmitHashrate(_ hexutil.Uint64, _ common.Hash) (bool, error) {
	return false, e.unimplemented("eth_submitHashrate")
}

func (e *PublicAPI) GetLogs(_ json.RawMessage) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getLogs")
}

func (e *PublicAPI) NewFilter(_ json.RawMessage) (rpc.ID, error) {
	return "", e.unimplemented("eth_newFilter")
}

func (e *PublicAPI) NewBlockFilter() (rpc.ID, error) {
	return "", e.unimplemented("eth_newBlockFilter")
}

func (e *PublicAPI) NewPendingTransactionFilter(_ *bool) (rpc.ID, error) {
	return "", e.unimplemented("eth_newPendingTransactionFilter")
}

func (e *PublicAPI) GetFilterChanges(_ rpc.ID) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getFilterChanges")
}

func (e *PublicAPI) GetFilterLogs(_ rpc.ID) (json.RawMessage, error) {
	return nil, e.unimplemented("eth_getFilterLogs")
}

func (e *PublicAPI) UninstallFilter(_ rpc.ID) (bool, error) {
	return false, e.unimplemented("eth_uninstallFilter")
}
