package ethsecp256k1

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/initia-labs/sidecar/types"
)

const (
	// UncompressedPubKeySize defines the size of the uncompressed PubKey bytes
	UncompressedPubKeySize = 65
	// SignatureSize defines the size of the ECDSA signature with the recovery ID
	SignatureSize = 65
)

// DecodeAndRecover decodes an EIP-2718 encoded signed transaction and
// recovers its signer. Signatures with s above half the curve order are
// rejected.
func DecodeAndRecover(bz []byte) (*ethtypes.Transaction, common.Address, error) {
	if len(bz) == 0 {
		return nil, common.Address{}, types.ErrEmptyRawTransactionData
	}

	tx := new(ethtypes.Transaction)
	if err := tx.UnmarshalBinary(bz); err != nil {
		return nil, common.Address{}, errorsmod.Wrap(types.ErrFailedToDecodeSignedTransaction, err.Error())
	}

	signer, err := RecoverSigner(tx)
	if err != nil {
		return nil, common.Address{}, err
	}

	return tx, signer, nil
}

// RecoverSigner recovers the signer of tx, enforcing low-S (EIP-2).
func RecoverSigner(tx *ethtypes.Transaction) (common.Address, error) {
	return recoverSigner(tx, true)
}

// RecoverSignerUnchecked recovers the signer of tx without the low-S check.
// Pre-EIP-2 legacy transactions may carry such signatures.
func RecoverSignerUnchecked(tx *ethtypes.Transaction) (common.Address, error) {
	return recoverSigner(tx, false)
}

func recoverSigner(tx *ethtypes.Transaction, strict bool) (common.Address, error) {
	v, r, s := tx.RawSignatureValues()
	recID, err := recoveryID(tx, v)
	if err != nil {
		return common.Address{}, err
	}

	if strict && isOverHalfOrder(s) {
		return common.Address{}, errorsmod.Wrap(types.ErrInvalidTransactionSignature, "signature is not in lower-S form")
	}
	if !crypto.ValidateSignatureValues(recID, r, s, false) {
		return common.Address{}, errorsmod.Wrap(types.ErrInvalidTransactionSignature, "signature values out of range")
	}

	sighash := signerFor(tx).Hash(tx)

	sig := make([]byte, SignatureSize)
	r.FillBytes(sig[0:32])
	s.FillBytes(sig[32:64])
	sig[64] = recID

	pub, err := crypto.Ecrecover(sighash[:], sig)
	if err != nil {
		return common.Address{}, errorsmod.Wrap(types.ErrInvalidTransactionSignature, err.Error())
	}
	if len(pub) != UncompressedPubKeySize || pub[0] != 4 {
		return common.Address{}, errorsmod.Wrap(types.ErrInvalidTransactionSignature, "invalid public key")
	}

	return common.BytesToAddress(keccak256(pub[1:])[12:]), nil
}

// signerFor picks the signer whose Hash matches the one the sender signed.
// Unprotected legacy transactions are hashed without a chain id.
func signerFor(tx *ethtypes.Transaction) ethtypes.Signer {
	if tx.Type() == ethtypes.LegacyTxType && !tx.Protected() {
		return ethtypes.HomesteadSigner{}
	}
	return ethtypes.LatestSignerForChainID(tx.ChainId())
}

// recoveryID normalizes the V value of tx to 0 or 1.
func recoveryID(tx *ethtypes.Transaction, v *big.Int) (byte, error) {
	if v == nil || v.Sign() < 0 {
		return 0, errorsmod.Wrap(types.ErrInvalidTransactionSignature, "missing signature")
	}

	id := new(big.Int).Set(v)
	if tx.Type() == ethtypes.LegacyTxType {
		if tx.Protected() {
			// v = chain_id * 2 + 35 + recovery_id
			id.Sub(id, new(big.Int).Add(new(big.Int).Lsh(tx.ChainId(), 1), big.NewInt(35)))
		} else {
			id.Sub(id, big.NewInt(27))
		}
	}

	if !id.IsUint64() || id.Uint64() > 1 {
		return 0, errorsmod.Wrapf(types.ErrInvalidTransactionSignature, "invalid recovery id %s", v)
	}
	return byte(id.Uint64()), nil
}

var halfOrder = new(big.Int).Rsh(secp256k1.S256().N, 1)

func isOverHalfOrder(s *big.Int) bool {
	return s.Cmp(halfOrder) > 0
}

func keccak256(bytes []byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(bytes)
	return hasher.Sum(nil)
}
