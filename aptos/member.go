package aptos

import (
	"fmt"
	"regexp"
	"strings"

	vmtypes "github.com/initia-labs/movevm/types"
)

var identifierRegexp = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9_]*|_[a-zA-Z0-9_]+)$`)

// IsValidIdentifier reports whether s is a valid Move identifier.
func IsValidIdentifier(s string) bool {
	return identifierRegexp.MatchString(s)
}

// ModuleId is a fully qualified Move module, `<address>::<name>`.
type ModuleId struct {
	Address AccountAddress
	Name    string
}

// String returns the module id in `0x1::coin` form.
func (m ModuleId) String() string {
	return m.Address.ShortString() + "::" + m.Name
}

// VMModuleId converts the module id into its BCS representation.
func (m ModuleId) VMModuleId() vmtypes.ModuleId {
	return vmtypes.ModuleId{
		Address: m.Address.VMAddress(),
		Name:    vmtypes.Identifier(m.Name),
	}
}

// MemberId names a function or struct inside a module,
// `<address>::<module>::<member>`.
type MemberId struct {
	Module ModuleId
	Member string
}

// ParseMemberId parses `<address>::<module>::<member>`.
func ParseMemberId(s string) (MemberId, error) {
	parts := strings.Split(s, "::")
	if len(parts) != 3 {
		return MemberId{}, fmt.Errorf("invalid member id: %s, expected format: <module_addr>::<module_name>::<member_name>", s)
	}

	addr, err := ParseAccountAddress(parts[0])
	if err != nil {
		return MemberId{}, err
	}
	if !IsValidIdentifier(parts[1]) {
		return MemberId{}, fmt.Errorf("invalid module name %q in %s", parts[1], s)
	}
	if !IsValidIdentifier(parts[2]) {
		return MemberId{}, fmt.Errorf("invalid member name %q in %s", parts[2], s)
	}

	return MemberId{
		Module: ModuleId{Address: addr, Name: parts[1]},
		Member: parts[2],
	}, nil
}

// String returns the member id in `0x1::coin::transfer` form.
func (m MemberId) String() string {
	return m.Module.String() + "::" + m.Member
}

// ParseFunctionInfo parses `<address>::<module>::<function>` into the
// function info used by account abstraction authenticators.
func ParseFunctionInfo(s string) (vmtypes.FunctionInfo, error) {
	member, err := ParseMemberId(s)
	if err != nil {
		return vmtypes.FunctionInfo{}, err
	}

	return member.FunctionInfo(), nil
}

// FunctionInfo converts the member id into a movevm function info.
func (m MemberId) FunctionInfo() vmtypes.FunctionInfo {
	return vmtypes.FunctionInfo{
		ModuleAddress: m.Module.Address.VMAddress(),
		ModuleName:    m.Module.Name,
		FunctionName:  m.Member,
	}
}
