package utils

import "hash/fnv"

func U64ToBytes(u uint64) []byte {
	return []byte{
		byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
		byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
	}
}

// FingerprintString hashes s with FNV-1a for use in fixed cache keys.
func FingerprintString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Mix64 combines two fingerprints into one, order-sensitively.
func Mix64(a, b uint64) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(U64ToBytes(a))
	_, _ = h.Write(U64ToBytes(b))
	return h.Sum64()
}
