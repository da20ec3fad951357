package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// SeedFromMnemonic derives a 512-bit seed from a mnemonic and optional
// passphrase using PBKDF2-HMAC-SHA512 with 2048 iterations as specified
// in BIP-39. The phrase is normalized case-insensitively before
// stretching. Deterministic: identical input always yields the same seed.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(normalizeMnemonic(mnemonic), passphrase)
	if err != nil {
		// The phrase itself is deliberately kept out of the error.
		return nil, fmt.Errorf("derive seed: %w", ErrInvalidMnemonic)
	}
	return seed, nil
}
