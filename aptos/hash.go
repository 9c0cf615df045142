package aptos

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

const transactionHashSalt = "APTOS::Transaction"

// Hash is a sha3-256 digest.
type Hash [32]byte

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

var transactionHashPrefix = func() []byte {
	salt := sha3.Sum256([]byte(transactionHashSalt))
	return salt[:]
}()

// Hash returns the hash the Aptos node assigns to a user transaction:
// sha3_256(sha3_256("APTOS::Transaction") || 0x00 || bcs(signed)).
func (obj *SignedTransaction) Hash() (Hash, error) {
	bz, err := obj.BcsSerialize()
	if err != nil {
		return Hash{}, err
	}

	hasher := sha3.New256()
	hasher.Write(transactionHashPrefix)
	// Transaction::UserTransaction
	hasher.Write([]byte{0})
	hasher.Write(bz)

	var h Hash
	copy(h[:], hasher.Sum(nil))
	return h, nil
}
