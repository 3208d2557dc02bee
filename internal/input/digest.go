package input

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"primecount/internal/domain"
)

// Digest returns a short hex BLAKE2b-256 hash of numbers.
//
// Each value is hashed as 8 big-endian bytes, so two lists hash equal only
// when they hold the same values in the same order. The sum is truncated to
// 10 bytes (20 hex chars).
func Digest(numbers domain.NumberList) domain.Digest {
	h, _ := blake2b.New256(nil)
	var buf [8]byte
	for _, n := range numbers {
		binary.BigEndian.PutUint64(buf[:], uint64(n))
		h.Write(buf[:])
	}
	sum := h.Sum(nil)
	return domain.Digest(hex.EncodeToString(sum[:10]))
}
