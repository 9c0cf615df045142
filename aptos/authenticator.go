package aptos

import (
	"fmt"

	"github.com/aptos-labs/serde-reflection/serde-generate/runtime/golang/serde"
	vmtypes "github.com/initia-labs/movevm/types"
)

// BCS variant indices of the Aptos authenticator enums.
const (
	TransactionAuthenticatorSingleSenderIndex uint32 = 4
	AccountAuthenticatorAbstractionIndex      uint32 = 5
)

// TransactionAuthenticator authenticates a whole transaction.
type TransactionAuthenticator interface {
	isTransactionAuthenticator()
	Serialize(s serde.Serializer) error
}

// TransactionAuthenticator__SingleSender authenticates a transaction that
// has exactly one signer.
type TransactionAuthenticator__SingleSender struct {
	Sender AccountAuthenticator
}

func (*TransactionAuthenticator__SingleSender) isTransactionAuthenticator() {}

func (obj *TransactionAuthenticator__SingleSender) Serialize(s serde.Serializer) error {
	if obj.Sender == nil {
		return fmt.Errorf("single sender authenticator has no account authenticator")
	}
	if err := s.IncreaseContainerDepth(); err != nil {
		return err
	}
	if err := s.SerializeVariantIndex(TransactionAuthenticatorSingleSenderIndex); err != nil {
		return err
	}
	if err := obj.Sender.Serialize(s); err != nil {
		return err
	}
	s.DecreaseContainerDepth()
	return nil
}

// AccountAuthenticator authenticates a single account.
type AccountAuthenticator interface {
	isAccountAuthenticator()
	Serialize(s serde.Serializer) error
}

// AccountAuthenticator__Abstraction delegates authentication to an on-chain
// Move function.
type AccountAuthenticator__Abstraction struct {
	FunctionInfo vmtypes.FunctionInfo
	AuthData     vmtypes.AbstractionAuthData
}

func (*AccountAuthenticator__Abstraction) isAccountAuthenticator() {}

func (obj *AccountAuthenticator__Abstraction) Serialize(s serde.Serializer) error {
	if obj.AuthData == nil {
		return fmt.Errorf("abstraction authenticator has no auth data")
	}
	if err := s.IncreaseContainerDepth(); err != nil {
		return err
	}
	if err := s.SerializeVariantIndex(AccountAuthenticatorAbstractionIndex); err != nil {
		return err
	}
	if err := obj.FunctionInfo.Serialize(s); err != nil {
		return err
	}
	if err := obj.AuthData.Serialize(s); err != nil {
		return err
	}
	s.DecreaseContainerDepth()
	return nil
}

// NewAbstractionAuthenticator returns a single sender authenticator whose
// V1 auth data carries the given digest and authenticator bytes.
func NewAbstractionAuthenticator(fInfo vmtypes.FunctionInfo, digest, authenticator []byte) TransactionAuthenticator {
	if digest == nil {
		digest = []byte{}
	}
	if authenticator == nil {
		authenticator = []byte{}
	}

	return &TransactionAuthenticator__SingleSender{
		Sender: &AccountAuthenticator__Abstraction{
			FunctionInfo: fInfo,
			AuthData: &vmtypes.AbstractionAuthData__V1{
				SigningMessageDigest: digest,
				Authenticator:        authenticator,
			},
		},
	}
}
