package aptos

import (
	"github.com/aptos-labs/serde-reflection/serde-generate/runtime/golang/bcs"
	"github.com/aptos-labs/serde-reflection/serde-generate/runtime/golang/serde"
)

// NewSerializer returns a fresh BCS serializer.
func NewSerializer() serde.Serializer {
	return bcs.NewSerializer()
}

func serializeBytesVec(s serde.Serializer, items [][]byte) error {
	if err := s.SerializeLen(uint64(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := s.SerializeBytes(item); err != nil {
			return err
		}
	}
	return nil
}
