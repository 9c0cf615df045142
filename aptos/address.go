package aptos

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/aptos-labs/serde-reflection/serde-generate/runtime/golang/serde"
	vmtypes "github.com/initia-labs/movevm/types"
)

// AddressLength is the byte length of a Move account address.
const AddressLength = 32

// AccountAddress is a 32-byte Aptos account address.
type AccountAddress [AddressLength]byte

// ParseAccountAddress parses a hex encoded Move address. Both the long form
// (64 hex digits) and the short form used for special addresses (`0x1`,
// `0x100`) are accepted; the `0x` prefix is optional.
func ParseAccountAddress(s string) (AccountAddress, error) {
	addrStr := strings.TrimPrefix(s, "0x")
	if len(addrStr) == 0 || len(addrStr) > AddressLength*2 {
		return AccountAddress{}, fmt.Errorf("invalid account address %q", s)
	}
	if len(addrStr)%2 == 1 {
		addrStr = "0" + addrStr
	}

	vmAddr, err := vmtypes.NewAccountAddress(addrStr)
	if err != nil {
		return AccountAddress{}, fmt.Errorf("invalid account address %q: %w", s, err)
	}

	return AccountAddress(vmAddr), nil
}

// String returns the long form, 0x-prefixed hex encoding.
func (addr AccountAddress) String() string {
	return "0x" + hex.EncodeToString(addr[:])
}

// ShortString trims leading zeros, e.g. `0x1` for the framework address.
func (addr AccountAddress) ShortString() string {
	trimmed := strings.TrimLeft(hex.EncodeToString(addr[:]), "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return "0x" + trimmed
}

// Bytes returns a copy of the address bytes.
func (addr AccountAddress) Bytes() []byte {
	bz := make([]byte, AddressLength)
	copy(bz, addr[:])
	return bz
}

// MarshalText implements encoding.TextMarshaler.
func (addr AccountAddress) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (addr *AccountAddress) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountAddress(string(text))
	if err != nil {
		return err
	}

	*addr = parsed
	return nil
}

// VMAddress converts the address into the movevm representation.
func (addr AccountAddress) VMAddress() vmtypes.AccountAddress {
	return vmtypes.AccountAddress(addr)
}

// Serialize writes the address as a fixed 32 byte array.
func (addr AccountAddress) Serialize(s serde.Serializer) error {
	if err := s.IncreaseContainerDepth(); err != nil {
		return err
	}
	for _, item := range addr {
		if err := s.SerializeU8(item); err != nil {
			return err
		}
	}
	s.DecreaseContainerDepth()
	return nil
}

// BcsSerialize returns the BCS encoding of the address.
func (addr AccountAddress) BcsSerialize() ([]byte, error) {
	s := NewSerializer()
	if err := addr.Serialize(s); err != nil {
		return nil, err
	}
	return s.GetBytes(), nil
}
