package crypto

import "errors"

// Sentinel errors returned by the secp256k1 primitives. Callers match them
// with errors.Is; wrapped messages carry the operation and the offending
// field length but never key material.
var (
	// ErrInvalidPrivateKey indicates a scalar that is not 32 bytes, is zero,
	// or is not below the curve order.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey indicates bytes that are neither a valid
	// compressed nor uncompressed point encoding.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidMessageHash indicates a message hash that is not exactly
	// 32 bytes.
	ErrInvalidMessageHash = errors.New("invalid message hash")

	// ErrInvalidSignature indicates a signature that is not exactly 65 bytes
	// or does not decode to a recoverable point.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidSignatureRecovery indicates a recovery id byte outside {0,1}.
	ErrInvalidSignatureRecovery = errors.New("invalid signature recovery id")
)
