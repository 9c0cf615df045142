package types

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/initia-labs/sidecar/aptos"
)

// ToAptosAddress returns address conversion add `0` prefix padding to the
// given ethereum address until 32 bytes size filled. The on-chain
// authenticator derives the sender the same way.
func ToAptosAddress(addr common.Address) aptos.AccountAddress {
	var aptosAddr aptos.AccountAddress
	copy(aptosAddr[aptos.AddressLength-EthAddressLength:], addr[:])
	return aptosAddr
}
