// Package wallet implements BIP-39 mnemonics and BIP-32 hierarchical
// deterministic key derivation for Velta accounts.
package wallet

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Supported mnemonic word counts. Each set of 3 words encodes 32 bits of
// entropy plus its share of the checksum.
const (
	MinWordCount = 12
	MaxWordCount = 24
)

// GenerateMnemonic creates a new mnemonic with the given word count
// (12, 15, 18, 21 or 24) using entropy from the given random source.
// A nil source falls back to crypto/rand.
func GenerateMnemonic(wordCount int, random io.Reader) (string, error) {
	if wordCount < MinWordCount || wordCount > MaxWordCount || wordCount%3 != 0 {
		return "", fmt.Errorf("generate mnemonic: %d words: %w", wordCount, ErrInvalidWordCount)
	}

	if random == nil {
		random = rand.Reader
	}
	entropy := make([]byte, wordCount/3*4)
	if _, err := io.ReadFull(random, entropy); err != nil {
		return "", fmt.Errorf("read random source: %w", err)
	}

	return MnemonicFromEntropy(entropy)
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39 (correct word
// count, valid words, valid checksum). Pure predicate: it never errors,
// whatever the input.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(normalizeMnemonic(mnemonic))
}

// MnemonicFromEntropy encodes entropy into a mnemonic phrase. The entropy
// must be 16-32 bytes in 4-byte steps (128-256 bits).
func MnemonicFromEntropy(entropy []byte) (string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encode mnemonic: %d bytes of entropy: %w", len(entropy), ErrInvalidEntropy)
	}
	return mnemonic, nil
}

// EntropyFromMnemonic decodes a mnemonic back to its raw entropy,
// validating word-list membership and the checksum.
func EntropyFromMnemonic(mnemonic string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(normalizeMnemonic(mnemonic))
	if err != nil {
		return nil, fmt.Errorf("decode mnemonic: %w", ErrInvalidMnemonic)
	}
	return entropy, nil
}

// normalizeMnemonic lowercases the phrase and collapses whitespace so
// validation and seed stretching are case-insensitive.
func normalizeMnemonic(mnemonic string) string {
	return strings.ToLower(strings.Join(strings.Fields(mnemonic), " "))
}
