package crypto

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/veltachain/velta-devkit/pkg/types"
)

// KeyPair wraps a secp256k1 private key and its derived public key for
// recoverable ECDSA signing.
type KeyPair struct {
	key *secp256k1.PrivateKey
}

// GenerateKeyPair creates a new key pair from the given random source.
// A nil source falls back to crypto/rand.
func GenerateKeyPair(random io.Reader) (*KeyPair, error) {
	priv, err := GeneratePrivateKey(random)
	if err != nil {
		return nil, err
	}
	kp := &KeyPair{key: secp256k1.PrivKeyFromBytes(priv)}
	for i := range priv {
		priv[i] = 0
	}
	return kp, nil
}

// KeyPairFromBytes creates a KeyPair from a 32-byte secret scalar.
func KeyPairFromBytes(b []byte) (*KeyPair, error) {
	if !IsValidPrivateKey(b) {
		return nil, fmt.Errorf("key pair: %d-byte scalar: %w", len(b), ErrInvalidPrivateKey)
	}
	return &KeyPair{key: secp256k1.PrivKeyFromBytes(b)}, nil
}

// Sign produces a 65-byte recoverable signature over a 32-byte hash.
func (kp *KeyPair) Sign(hash []byte) ([]byte, error) {
	return Sign(hash, kp.key.Serialize())
}

// PublicKey returns the compressed 33-byte public key.
func (kp *KeyPair) PublicKey() []byte {
	return kp.key.PubKey().SerializeCompressed()
}

// PublicKeyUncompressed returns the 65-byte uncompressed public key.
func (kp *KeyPair) PublicKeyUncompressed() []byte {
	return kp.key.PubKey().SerializeUncompressed()
}

// Address returns the account address for this key pair's public key.
func (kp *KeyPair) Address() types.Address {
	return addressOf(kp.key.PubKey())
}

// Serialize returns the 32-byte private key scalar.
func (kp *KeyPair) Serialize() []byte {
	return kp.key.Serialize()
}

// Zero securely zeroes the private key memory.
func (kp *KeyPair) Zero() {
	kp.key.Zero()
}
