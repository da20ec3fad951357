package wallet

import "errors"

// Sentinel errors for mnemonic and HD derivation failures. Messages wrapped
// around them name the operation and field; mnemonic words are never echoed
// into error text, so phrases cannot leak through logs.
var (
	// ErrInvalidWordCount indicates a word count outside {12, 15, 18, 21, 24}.
	ErrInvalidWordCount = errors.New("invalid mnemonic word count")

	// ErrInvalidEntropy indicates entropy whose bit length is not a
	// supported mnemonic strength (128-256 bits in 32-bit steps).
	ErrInvalidEntropy = errors.New("invalid entropy length")

	// ErrInvalidMnemonic indicates a phrase that fails word-list membership
	// or its embedded checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidSeed indicates a seed outside the supported length range.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidHDNode indicates malformed node material (chain code, point
	// encoding, derived scalar) or a derivation the node cannot perform.
	ErrInvalidHDNode = errors.New("invalid HD node")

	// ErrInvalidDerivationPath indicates malformed derivation path syntax.
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
)
