package wallet

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestSeedFromMnemonic_KnownVector(t *testing.T) {
	// Reference vector from the BIP-39 test suite (passphrase "TREZOR").
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	want := "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"

	seed, err := SeedFromMnemonic(mnemonic, "TREZOR")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	if len(seed) != SeedSize {
		t.Fatalf("seed length = %d, want %d", len(seed), SeedSize)
	}
	if got := hex.EncodeToString(seed); got != want {
		t.Errorf("seed = %s, want %s", got, want)
	}
}

func TestSeedFromMnemonic_Deterministic(t *testing.T) {
	mnemonic, err := GenerateMnemonic(12, nil)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	s1, err := SeedFromMnemonic(mnemonic, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	s2, err := SeedFromMnemonic(mnemonic, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	if !bytes.Equal(s1, s2) {
		t.Error("same mnemonic and passphrase must yield the same seed")
	}

	s3, err := SeedFromMnemonic(mnemonic, "other")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	if bytes.Equal(s1, s3) {
		t.Error("a different passphrase must change the seed")
	}
}

func TestSeedFromMnemonic_Normalization(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	messy := "  ABANDON abandon  abandon abandon abandon abandon abandon abandon abandon abandon abandon About "

	s1, err := SeedFromMnemonic(mnemonic, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	s2, err := SeedFromMnemonic(messy, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	if !bytes.Equal(s1, s2) {
		t.Error("case and whitespace variants must yield the same seed")
	}
}

func TestSeedFromMnemonic_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
	}{
		{"empty", ""},
		{"bad checksum", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"},
		{"unknown word", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon zzzz"},
		{"wrong length", "abandon about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SeedFromMnemonic(tt.mnemonic, "")
			if !errors.Is(err, ErrInvalidMnemonic) {
				t.Errorf("error = %v, want ErrInvalidMnemonic", err)
			}
		})
	}
}

func TestSeedFromMnemonic_ErrorOmitsPhrase(t *testing.T) {
	// Error text must never echo the words that were supplied.
	phrase := "ripple guard waste tenant abandon abandon abandon abandon abandon abandon abandon abandon"
	_, err := SeedFromMnemonic(phrase, "")
	if err == nil {
		t.Fatal("expected an error for an invalid mnemonic")
	}
	msg := err.Error()
	for _, word := range []string{"ripple", "guard", "waste", "tenant"} {
		if strings.Contains(msg, word) {
			t.Errorf("error %q leaks mnemonic word %q", msg, word)
		}
	}
}
