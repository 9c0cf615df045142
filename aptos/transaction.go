package aptos

import (
	"fmt"

	"github.com/aptos-labs/serde-reflection/serde-generate/runtime/golang/serde"
	vmtypes "github.com/initia-labs/movevm/types"
)

// BCS variant indices of the Aptos TransactionPayload enum.
const (
	PayloadScriptIndex        uint32 = 0
	PayloadModuleBundleIndex  uint32 = 1
	PayloadEntryFunctionIndex uint32 = 2
)

// EntryFunction is a call to a public entry function with BCS encoded args.
type EntryFunction struct {
	Module   vmtypes.ModuleId
	Function vmtypes.Identifier
	TyArgs   []vmtypes.TypeTag
	Args     [][]byte
}

// NewEntryFunction builds an entry function call from a parsed member id.
func NewEntryFunction(member MemberId, tyArgs []vmtypes.TypeTag, args [][]byte) EntryFunction {
	return EntryFunction{
		Module:   member.Module.VMModuleId(),
		Function: vmtypes.Identifier(member.Member),
		TyArgs:   tyArgs,
		Args:     args,
	}
}

func (obj *EntryFunction) Serialize(s serde.Serializer) error {
	if err := s.IncreaseContainerDepth(); err != nil {
		return err
	}
	if err := obj.Module.Serialize(s); err != nil {
		return err
	}
	if err := obj.Function.Serialize(s); err != nil {
		return err
	}
	if err := s.SerializeLen(uint64(len(obj.TyArgs))); err != nil {
		return err
	}
	for _, tag := range obj.TyArgs {
		if err := tag.Serialize(s); err != nil {
			return err
		}
	}
	if err := serializeBytesVec(s, obj.Args); err != nil {
		return err
	}
	s.DecreaseContainerDepth()
	return nil
}

// TransactionPayload is the closed set of payloads a RawTransaction carries.
// Only the entry function variant is produced by this package.
type TransactionPayload interface {
	isTransactionPayload()
	Serialize(s serde.Serializer) error
}

type TransactionPayload__EntryFunction struct {
	Value EntryFunction
}

func (*TransactionPayload__EntryFunction) isTransactionPayload() {}

func (obj *TransactionPayload__EntryFunction) Serialize(s serde.Serializer) error {
	if err := s.IncreaseContainerDepth(); err != nil {
		return err
	}
	if err := s.SerializeVariantIndex(PayloadEntryFunctionIndex); err != nil {
		return err
	}
	if err := obj.Value.Serialize(s); err != nil {
		return err
	}
	s.DecreaseContainerDepth()
	return nil
}

// RawTransaction is the unsigned part of an Aptos transaction.
type RawTransaction struct {
	Sender                  AccountAddress
	SequenceNumber          uint64
	Payload                 TransactionPayload
	MaxGasAmount            uint64
	GasUnitPrice            uint64
	ExpirationTimestampSecs uint64
	ChainId                 ChainId
}

func (obj *RawTransaction) Serialize(s serde.Serializer) error {
	if obj.Payload == nil {
		return fmt.Errorf("raw transaction has no payload")
	}
	if err := s.IncreaseContainerDepth(); err != nil {
		return err
	}
	if err := obj.Sender.Serialize(s); err != nil {
		return err
	}
	if err := s.SerializeU64(obj.SequenceNumber); err != nil {
		return err
	}
	if err := obj.Payload.Serialize(s); err != nil {
		return err
	}
	if err := s.SerializeU64(obj.MaxGasAmount); err != nil {
		return err
	}
	if err := s.SerializeU64(obj.GasUnitPrice); err != nil {
		return err
	}
	if err := s.SerializeU64(obj.ExpirationTimestampSecs); err != nil {
		return err
	}
	if err := s.SerializeU8(uint8(obj.ChainId)); err != nil {
		return err
	}
	s.DecreaseContainerDepth()
	return nil
}

func (obj *RawTransaction) BcsSerialize() ([]byte, error) {
	s := NewSerializer()
	if err := obj.Serialize(s); err != nil {
		return nil, err
	}
	return s.GetBytes(), nil
}

// SignedTransaction is a raw transaction together with its authenticator.
type SignedTransaction struct {
	RawTxn        RawTransaction
	Authenticator TransactionAuthenticator
}

func (obj *SignedTransaction) Serialize(s serde.Serializer) error {
	if obj.Authenticator == nil {
		return fmt.Errorf("signed transaction has no authenticator")
	}
	if err := s.IncreaseContainerDepth(); err != nil {
		return err
	}
	if err := obj.RawTxn.Serialize(s); err != nil {
		return err
	}
	if err := obj.Authenticator.Serialize(s); err != nil {
		return err
	}
	s.DecreaseContainerDepth()
	return nil
}

func (obj *SignedTransaction) BcsSerialize() ([]byte, error) {
	s := NewSerializer()
	if err := obj.Serialize(s); err != nil {
		return nil, err
	}
	return s.GetBytes(), nil
}
