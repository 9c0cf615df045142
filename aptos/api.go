package aptos

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Content types accepted by the Aptos REST API.
const (
	ContentTypeJSON              = "application/json"
	ContentTypeSignedTransaction = "application/x.aptos.signed_transaction+bcs"
)

// Response headers set by the Aptos REST API.
const (
	HeaderChainId       = "X-Aptos-Chain-Id"
	HeaderLedgerVersion = "X-Aptos-Ledger-Version"
)

// U64 is a u64 that the REST API encodes as a decimal string. A bare JSON
// number is accepted as well.
type U64 uint64

func (u U64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

func (u *U64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	n, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid u64 %q: %w", string(data), err)
	}

	*u = U64(n)
	return nil
}

// HexEncodedBytes is a 0x-prefixed hex string on the wire.
type HexEncodedBytes []byte

func (b HexEncodedBytes) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(b)), nil
}

func (b *HexEncodedBytes) UnmarshalText(text []byte) error {
	bz, err := hex.DecodeString(strings.TrimPrefix(string(text), "0x"))
	if err != nil {
		return err
	}

	*b = bz
	return nil
}

// LedgerInfo is the body of `GET /`.
type LedgerInfo struct {
	ChainId             uint8   `json:"chain_id"`
	Epoch               U64     `json:"epoch"`
	LedgerVersion       U64     `json:"ledger_version"`
	OldestLedgerVersion U64     `json:"oldest_ledger_version"`
	LedgerTimestamp     U64     `json:"ledger_timestamp"`
	NodeRole            string  `json:"node_role"`
	OldestBlockHeight   U64     `json:"oldest_block_height"`
	BlockHeight         U64     `json:"block_height"`
	GitHash             *string `json:"git_hash,omitempty"`
}

// AccountData is the body of `GET /accounts/{address}`.
type AccountData struct {
	SequenceNumber    U64             `json:"sequence_number"`
	AuthenticationKey HexEncodedBytes `json:"authentication_key"`
}

// Block is the body of `GET /blocks/by_height/{height}`. Transactions are
// kept undecoded; they are only present when requested.
type Block struct {
	BlockHeight    U64               `json:"block_height"`
	BlockHash      string            `json:"block_hash"`
	BlockTimestamp U64               `json:"block_timestamp"`
	FirstVersion   U64               `json:"first_version"`
	LastVersion    U64               `json:"last_version"`
	Transactions   []json.RawMessage `json:"transactions,omitempty"`
}

// PendingTransaction is returned by `POST /transactions`.
type PendingTransaction struct {
	Hash                    string          `json:"hash"`
	Sender                  string          `json:"sender"`
	SequenceNumber          U64             `json:"sequence_number"`
	MaxGasAmount            U64             `json:"max_gas_amount"`
	GasUnitPrice            U64             `json:"gas_unit_price"`
	ExpirationTimestampSecs U64             `json:"expiration_timestamp_secs"`
	Payload                 json.RawMessage `json:"payload,omitempty"`
	Signature               json.RawMessage `json:"signature,omitempty"`
}

// Error is the error body of the REST API.
type Error struct {
	Message     string  `json:"message"`
	ErrorCode   string  `json:"error_code"`
	VmErrorCode *uint64 `json:"vm_error_code,omitempty"`
}

func (e Error) Error() string {
	if e.ErrorCode == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
