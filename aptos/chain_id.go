package aptos

import (
	"fmt"
	"strconv"
	"strings"
)

// ChainId identifies an Aptos network. It is a single byte on the wire.
type ChainId uint8

// Named chains.
const (
	ChainMainnet    ChainId = 1
	ChainTestnet    ChainId = 2
	ChainDevnet     ChainId = 3
	ChainTesting    ChainId = 4
	ChainPremainnet ChainId = 5
)

var namedChains = map[string]ChainId{
	"mainnet":    ChainMainnet,
	"testnet":    ChainTestnet,
	"devnet":     ChainDevnet,
	"testing":    ChainTesting,
	"premainnet": ChainPremainnet,
}

// ParseChainId accepts either a decimal id or a chain name.
func ParseChainId(s string) (ChainId, error) {
	s = strings.TrimSpace(s)
	if id, ok := namedChains[strings.ToLower(s)]; ok {
		return id, nil
	}

	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid chain id %q", s)
	}
	return ChainId(n), nil
}

// String returns the chain name for named chains, otherwise the decimal id.
func (id ChainId) String() string {
	for name, named := range namedChains {
		if named == id {
			return name
		}
	}
	return strconv.FormatUint(uint64(id), 10)
}
