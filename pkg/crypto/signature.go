package crypto

import (
	"bytes"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/veltachain/velta-devkit/pkg/types"
)

// Signer signs pre-hashed messages with a secp256k1 private key.
type Signer interface {
	// Sign produces a 65-byte recoverable signature over a 32-byte hash.
	Sign(hash []byte) ([]byte, error)
	// PublicKey returns the compressed 33-byte public key.
	PublicKey() []byte
}

// Verifier verifies recoverable secp256k1 signatures.
type Verifier interface {
	// Verify checks a signature against a hash and a public key in either
	// encoding. Returns false on any error.
	Verify(hash, signature, publicKey []byte) bool
}

// Sign produces a recoverable ECDSA signature over a 32-byte message hash:
// r (32 bytes) || s (32 bytes) || recovery id (0 or 1). Nonces are
// deterministic per RFC 6979, so signing is reproducible and never reuses
// a nonce across messages. The emitted s is the low-s form the underlying
// ECDSA produces; callers with a stricter malleability policy enforce it
// at the transaction layer.
func Sign(msgHash, priv []byte) ([]byte, error) {
	if len(msgHash) != types.HashSize {
		return nil, fmt.Errorf("sign: message hash must be %d bytes, got %d: %w",
			types.HashSize, len(msgHash), ErrInvalidMessageHash)
	}
	if !IsValidPrivateKey(priv) {
		return nil, fmt.Errorf("sign: %d-byte scalar: %w", len(priv), ErrInvalidPrivateKey)
	}

	key := secp256k1.PrivKeyFromBytes(priv)
	defer key.Zero()

	// Compact format is [recovery+27] || r || s; rearrange to r || s || v.
	compact := ecdsa.SignCompact(key, msgHash, false)
	v := compact[0] - 27
	if v > 1 {
		// Only reachable for r values beyond the curve order, which occur
		// with probability ~2^-127. The signing convention admits ids 0 and
		// 1 only, so fail rather than emit an unrecoverable signature.
		return nil, fmt.Errorf("sign: recovery id %d: %w", v, ErrInvalidSignatureRecovery)
	}

	sig := make([]byte, types.SignatureSize)
	copy(sig[:64], compact[1:])
	sig[64] = v
	return sig, nil
}

// Recover reconstructs the 65-byte uncompressed public key that produced
// the given signature over the given 32-byte message hash. It recovers
// only; it does not verify. Callers needing verification must re-derive
// the expected public key or address and compare.
func Recover(msgHash, sig []byte) ([]byte, error) {
	if len(msgHash) != types.HashSize {
		return nil, fmt.Errorf("recover: message hash must be %d bytes, got %d: %w",
			types.HashSize, len(msgHash), ErrInvalidMessageHash)
	}
	if len(sig) != types.SignatureSize {
		return nil, fmt.Errorf("recover: signature must be %d bytes, got %d: %w",
			types.SignatureSize, len(sig), ErrInvalidSignature)
	}
	if sig[64] > 1 {
		return nil, fmt.Errorf("recover: recovery id %d: %w", sig[64], ErrInvalidSignatureRecovery)
	}

	compact := make([]byte, types.SignatureSize)
	compact[0] = sig[64] + 27
	copy(compact[1:], sig[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, msgHash)
	if err != nil {
		return nil, fmt.Errorf("recover: %v: %w", err, ErrInvalidSignature)
	}
	return pub.SerializeUncompressed(), nil
}

// VerifySignature checks a recoverable signature against a 32-byte hash
// and a public key in either encoding, by recovering the signing key and
// comparing. Returns false on any error.
func VerifySignature(hash, signature, publicKey []byte) bool {
	recovered, err := Recover(hash, signature)
	if err != nil {
		return false
	}
	expected, err := DecompressPublicKey(publicKey)
	if err != nil {
		return false
	}
	return bytes.Equal(recovered, expected)
}

// RecoverVerifier implements the Verifier interface.
type RecoverVerifier struct{}

// Verify checks a recoverable signature against a hash and public key.
func (v RecoverVerifier) Verify(hash, signature, publicKey []byte) bool {
	return VerifySignature(hash, signature, publicKey)
}
