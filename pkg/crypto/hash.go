// Package crypto provides the secp256k1 and hashing primitives for the
// Velta devkit: key validity, ECDSA signing with public key recovery,
// point compression and address derivation.
package crypto

import (
	"github.com/veltachain/velta-devkit/pkg/types"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Blake2b256 computes the BLAKE2b-256 hash of the concatenated inputs.
// Transaction and message hashes on Velta use BLAKE2b-256.
func Blake2b256(data ...[]byte) types.Hash {
	h, _ := blake2b.New256(nil) // New256 only fails with a key longer than 64 bytes
	for _, d := range data {
		h.Write(d)
	}
	var out types.Hash
	h.Sum(out[:0])
	return out
}

// HashConcat hashes the concatenation of two hashes with BLAKE2b-256.
// Used for building merkle trees.
func HashConcat(a, b types.Hash) types.Hash {
	var buf [2 * types.HashSize]byte
	copy(buf[:types.HashSize], a[:])
	copy(buf[types.HashSize:], b[:])
	return Blake2b256(buf[:])
}

// Keccak256 computes the legacy Keccak-256 hash of the concatenated inputs.
// Address derivation uses Keccak-256 for cross-chain tooling compatibility.
func Keccak256(data ...[]byte) types.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out types.Hash
	h.Sum(out[:0])
	return out
}
