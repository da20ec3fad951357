package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/veltachain/velta-devkit/pkg/types"
)

// IsValidPrivateKey reports whether b is a usable secp256k1 scalar:
// exactly 32 bytes, nonzero and strictly below the curve order.
func IsValidPrivateKey(b []byte) bool {
	_, err := types.NewPrivateKey(b)
	return err == nil
}

// GeneratePrivateKey produces a uniformly valid 32-byte private key from
// the given random source. A nil source falls back to crypto/rand.
// A failing source is fatal for the operation and is propagated as-is.
func GeneratePrivateKey(random io.Reader) ([]byte, error) {
	if random == nil {
		random = rand.Reader
	}
	key, err := secp256k1.GeneratePrivateKeyFromRand(random)
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	out := key.Serialize()
	key.Zero()
	return out, nil
}

// DerivePublicKey returns the public key for the given private key scalar,
// compressed (33 bytes, 0x02/0x03 prefix) or uncompressed (65 bytes, 0x04
// prefix).
func DerivePublicKey(priv []byte, compressed bool) ([]byte, error) {
	if !IsValidPrivateKey(priv) {
		return nil, fmt.Errorf("derive public key: %d-byte scalar: %w", len(priv), ErrInvalidPrivateKey)
	}
	key := secp256k1.PrivKeyFromBytes(priv)
	defer key.Zero()
	if compressed {
		return key.PubKey().SerializeCompressed(), nil
	}
	return key.PubKey().SerializeUncompressed(), nil
}

// CompressPublicKey converts a public key in either encoding to its 33-byte
// compressed form.
func CompressPublicKey(pub []byte) ([]byte, error) {
	p, err := parsePublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("compress public key: %w", err)
	}
	return p.SerializeCompressed(), nil
}

// DecompressPublicKey converts a public key in either encoding to its
// 65-byte uncompressed form.
func DecompressPublicKey(pub []byte) ([]byte, error) {
	p, err := parsePublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("decompress public key: %w", err)
	}
	return p.SerializeUncompressed(), nil
}

// parsePublicKey parses a strict compressed or uncompressed point encoding.
// Hybrid encodings (0x06/0x07 prefix) are not part of the wire format and
// are rejected.
func parsePublicKey(pub []byte) (*secp256k1.PublicKey, error) {
	switch len(pub) {
	case types.PublicKeyCompressedSize:
		if pub[0] != 0x02 && pub[0] != 0x03 {
			return nil, fmt.Errorf("compressed key prefix %#02x: %w", pub[0], ErrInvalidPublicKey)
		}
	case types.PublicKeyUncompressedSize:
		if pub[0] != 0x04 {
			return nil, fmt.Errorf("uncompressed key prefix %#02x: %w", pub[0], ErrInvalidPublicKey)
		}
	default:
		return nil, fmt.Errorf("%d-byte encoding: %w", len(pub), ErrInvalidPublicKey)
	}
	p, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidPublicKey)
	}
	return p, nil
}

// RandomBytes returns n bytes from the OS cryptographically secure random
// source. Failure means no secure source is available; it is not
// recoverable by retry and must abort the calling operation.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("read random source: %w", err)
	}
	return b, nil
}
