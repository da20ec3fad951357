package types

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Sizes of the fixed-width key material encodings.
const (
	PrivateKeySize            = 32
	ChainCodeSize             = 32
	SignatureSize             = 65
	PublicKeyCompressedSize   = 33
	PublicKeyUncompressedSize = 65
)

// PrivateKey is a validated 32-byte secp256k1 scalar in (0, curve order).
// It is a distinct type from PublicKey and ChainCode so key material
// cannot be passed where another kind is expected.
type PrivateKey [PrivateKeySize]byte

// NewPrivateKey validates b as a secp256k1 scalar and returns it as a
// PrivateKey. The zero scalar and scalars >= the curve order are rejected.
func NewPrivateKey(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return PrivateKey{}, fmt.Errorf("private key must be %d bytes, got %d", PrivateKeySize, len(b))
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	zero := s.IsZero()
	s.Zero()
	if overflow || zero {
		return PrivateKey{}, fmt.Errorf("private key scalar out of range")
	}
	var k PrivateKey
	copy(k[:], b)
	return k, nil
}

// Bytes returns a copy of the private key scalar.
func (k PrivateKey) Bytes() []byte {
	b := make([]byte, PrivateKeySize)
	copy(b, k[:])
	return b
}

// String returns a redacted form. Private key material is never printed.
func (k PrivateKey) String() string {
	return "PrivateKey(redacted)"
}

// PublicKey is a validated secp256k1 curve point, stored in its 33-byte
// compressed encoding.
type PublicKey [PublicKeyCompressedSize]byte

// NewPublicKey validates b as a compressed (33-byte) or uncompressed
// (65-byte) point encoding and returns the compressed form.
func NewPublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyCompressedSize && len(b) != PublicKeyUncompressedSize {
		return PublicKey{}, fmt.Errorf("public key must be %d or %d bytes, got %d",
			PublicKeyCompressedSize, PublicKeyUncompressedSize, len(b))
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid public key encoding: %w", err)
	}
	var p PublicKey
	copy(p[:], pub.SerializeCompressed())
	return p, nil
}

// Bytes returns the compressed 33-byte encoding.
func (p PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeyCompressedSize)
	copy(b, p[:])
	return b
}

// Uncompressed returns the 65-byte 0x04-prefixed encoding.
func (p PublicKey) Uncompressed() []byte {
	// Cannot fail: the stored encoding was validated at construction.
	pub, _ := secp256k1.ParsePubKey(p[:])
	return pub.SerializeUncompressed()
}

// String returns the hex-encoded compressed public key.
func (p PublicKey) String() string {
	return hex.EncodeToString(p[:])
}

// ChainCode is the 32-byte auxiliary entropy carried by each HD node.
type ChainCode [ChainCodeSize]byte

// NewChainCode validates the length of b and returns it as a ChainCode.
func NewChainCode(b []byte) (ChainCode, error) {
	if len(b) != ChainCodeSize {
		return ChainCode{}, fmt.Errorf("chain code must be %d bytes, got %d", ChainCodeSize, len(b))
	}
	var c ChainCode
	copy(c[:], b)
	return c, nil
}

// Bytes returns a copy of the chain code.
func (c ChainCode) Bytes() []byte {
	b := make([]byte, ChainCodeSize)
	copy(b, c[:])
	return b
}

// Signature is a recoverable ECDSA signature: 32-byte r, 32-byte s and a
// trailing recovery id byte that must be 0 or 1.
type Signature [SignatureSize]byte

// NewSignature validates the length and recovery byte of b and returns it
// as a Signature.
func NewSignature(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, fmt.Errorf("signature must be %d bytes, got %d", SignatureSize, len(b))
	}
	if b[64] > 1 {
		return Signature{}, fmt.Errorf("signature recovery id must be 0 or 1, got %d", b[64])
	}
	var s Signature
	copy(s[:], b)
	return s, nil
}

// R returns the canonical big-endian 32-byte r value.
func (s Signature) R() []byte {
	b := make([]byte, 32)
	copy(b, s[:32])
	return b
}

// S returns the canonical big-endian 32-byte s value.
func (s Signature) S() []byte {
	b := make([]byte, 32)
	copy(b, s[32:64])
	return b
}

// RecoveryID returns the recovery id byte (0 or 1).
func (s Signature) RecoveryID() byte {
	return s[64]
}

// Bytes returns a copy of the 65-byte signature.
func (s Signature) Bytes() []byte {
	b := make([]byte, SignatureSize)
	copy(b, s[:])
	return b
}

// String returns the hex-encoded signature.
func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}
