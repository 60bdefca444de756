package cache

import (
	"encoding/binary"
)

// Kind distinguishes the two table families in cache keys.
type Kind uint8

const (
	KindEnum Kind = iota
	KindRecord
)

// FixedKey is a fixed-size, allocation-free cache key.
type FixedKey [16]byte

// GenerateFixedKey builds a key for one table-derived artifact.
func GenerateFixedKey(kind Kind, fingerprint uint64) FixedKey {
	var key FixedKey

	// Layout:
	// [0]:    Kind (1 byte)
	// [1-8]:  Type/config fingerprint (8 bytes)
	// [9-15]: Reserved

	key[0] = byte(kind)
	binary.BigEndian.PutUint64(key[1:9], fingerprint)

	return key // No heap allocation - returns by value
}
