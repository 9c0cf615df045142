package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// Block is the JSON shape of an ethereum block as returned by
// eth_getBlockByHash and eth_getBlockByNumber.
type Block struct {
	Number           hexutil.Uint64      `json:"number"`
	Hash             common.Hash         `json:"hash"`
	ParentHash       common.Hash         `json:"parentHash"`
	Nonce            ethtypes.BlockNonce `json:"nonce"`
	MixHash          common.Hash         `json:"mixHash"`
	Sha3Uncles       common.Hash         `json:"sha3Uncles"`
	LogsBloom        ethtypes.Bloom      `json:"logsBloom"`
	TransactionsRoot common.Hash         `json:"transactionsRoot"`
	StateRoot        common.Hash         `json:"stateRoot"`
	ReceiptsRoot     common.Hash         `json:"receiptsRoot"`
	Miner            common.Address      `json:"miner"`
	Difficulty       *hexutil.Big        `json:"difficulty"`
	TotalDifficulty  *hexutil.Big        `json:"totalDifficulty"`
	ExtraData        hexutil.Bytes       `json:"extraData"`
	Size             hexutil.Uint64      `json:"size"`
	GasLimit         hexutil.Uint64      `json:"gasLimit"`
	GasUsed          hexutil.Uint64      `json:"gasUsed"`
	Timestamp        hexutil.Uint64      `json:"timestamp"`
	Transactions     []any               `json:"transactions"`
	Uncles           []common.Hash       `json:"uncles"`
}

// PlaceholderBlock returns a block with every header field zeroed and no
// transactions or uncles.
func PlaceholderBlock() *Block {
	return &Block{
		Difficulty:      (*hexutil.Big)(common.Big0),
		TotalDifficulty: (*hexutil.Big)(common.Big0),
		ExtraData:       hexutil.Bytes{},
		Transactions:    []any{},
		Uncles:          []common.Hash{},
	}
}

// StateOverride is accepted by eth_estimateGas and ignored.
type StateOverride map[common.Address]any

// TransactionArgs are the call arguments of eth_estimateGas and eth_call.
// The bridge does not execute them.
type TransactionArgs struct {
	From                 *common.Address      `json:"from"`
	To                   *common.Address      `json:"to"`
	Gas                  *hexutil.Uint64      `json:"gas"`
	GasPrice             *hexutil.Big         `json:"gasPrice"`
	MaxFeePerGas         *hexutil.Big         `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *hexutil.Big         `json:"maxPriorityFeePerGas"`
	Value                *hexutil.Big         `json:"value"`
	Nonce                *hexutil.Uint64      `json:"nonce"`
	Data                 *hexutil.Bytes       `json:"data"`
	Input                *hexutil.Bytes       `json:"input"`
	AccessList           *ethtypes.AccessList `json:"accessList,omitempty"`
	ChainID              *hexutil.Big         `json:"chainId,omitempty"`
}
