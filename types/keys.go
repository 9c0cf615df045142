package types

const (
	// ModuleName is the codespace of the bridge errors.
	ModuleName = "sidecar"

	// EthAddressLength is the byte length of an Ethereum address.
	EthAddressLength = 20
)
