package net

import (
	"encoding/hex"
	"math/big"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common/hexutil"

	rpctypes "github.com/initia-labs/sidecar/rpc/types"
)

// networkID is reported by net_version.
const networkID = "deadbeef"

// PublicAPI is the net_ prefixed set of APIs of the Web3 JSON-RPC API.
type PublicAPI struct {
	logger  log.Logger
	version string
}

// NewPublicAPI creates an instance of the public Net Web3 API.
func NewPublicAPI(logger log.Logger) *PublicAPI {
	bz, err := hex.DecodeString(networkID)
	if err != nil {
		panic(err)
	}

	return &PublicAPI{
		logger:  logger.With("client", "json-rpc", "namespace", "net"),
		version: new(big.Int).SetBytes(bz).String(),
	}
}

// Version returns the current ethereum protocol version.
func (s *PublicAPI) Version() string {
	s.logger.Debug("net_version")
	return s.version
}

// Listening returns if client is actively listening for network connections.
func (s *PublicAPI) Listening() bool {
	s.logger.Debug("net_listening")
	return true
}

// PeerCount returns the number of peers currently connected to the client.
func (s *PublicAPI) PeerCount() (hexutil.Uint, error) {
	s.logger.Debug("net_peerCount", "implemented", false)
	return 0, rpctypes.ErrMethodNotImplemented
}
