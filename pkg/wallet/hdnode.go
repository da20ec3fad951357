package wallet

import (
	"encoding/binary"
	"fmt"

	"github.com/tyler-smith/go-bip32"

	"github.com/veltachain/velta-devkit/pkg/crypto"
	"github.com/veltachain/velta-devkit/pkg/types"
)

// Seed length bounds accepted by FromSeed (the BIP-32 domain; mnemonic
// seeds are always 64 bytes).
const (
	MinSeedSize = 16
	MaxSeedSize = 64
)

// HDNode is one node in a BIP-32 hierarchical deterministic key tree.
// Nodes are immutable; derivation produces new nodes and never mutates
// the parent, so a parent and its children coexist independently.
//
// A node either holds a private key (private-capable) or only a public
// key. Public-only nodes can derive only public-only, non-hardened
// children; no private key is ever reconstructible from them.
type HDNode struct {
	key *bip32.Key
}

// FromSeed creates the master node from a seed via HMAC-SHA512 with the
// BIP-32 domain-separation key. Succeeds for any seed of a supported
// length.
func FromSeed(seed []byte) (*HDNode, error) {
	if len(seed) < MinSeedSize || len(seed) > MaxSeedSize {
		return nil, fmt.Errorf("seed must be %d-%d bytes, got %d: %w",
			MinSeedSize, MaxSeedSize, len(seed), ErrInvalidSeed)
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %v: %w", err, ErrInvalidSeed)
	}
	return &HDNode{key: master}, nil
}

// FromMnemonic creates the master node for a mnemonic and optional
// passphrase.
func FromMnemonic(mnemonic, passphrase string) (*HDNode, error) {
	seed, err := SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return FromSeed(seed)
}

// FromPrivateKey constructs a private-capable node directly from a 32-byte
// private key and 32-byte chain code.
func FromPrivateKey(key, chainCode []byte) (*HDNode, error) {
	cc, err := types.NewChainCode(chainCode)
	if err != nil {
		return nil, fmt.Errorf("node from private key: %v: %w", err, ErrInvalidHDNode)
	}
	priv, err := types.NewPrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("node from private key: %v: %w", err, crypto.ErrInvalidPrivateKey)
	}
	return &HDNode{key: &bip32.Key{
		Key:         priv.Bytes(),
		Version:     bip32.PrivateWalletVersion,
		ChainCode:   cc.Bytes(),
		ChildNumber: []byte{0, 0, 0, 0},
		FingerPrint: []byte{0, 0, 0, 0},
		Depth:       0,
		IsPrivate:   true,
	}}, nil
}

// FromPublicKey constructs a public-only node directly from a public key
// (either encoding) and a 32-byte chain code.
func FromPublicKey(pub, chainCode []byte) (*HDNode, error) {
	cc, err := types.NewChainCode(chainCode)
	if err != nil {
		return nil, fmt.Errorf("node from public key: %v: %w", err, ErrInvalidHDNode)
	}
	p, err := types.NewPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("node from public key: %v: %w", err, ErrInvalidHDNode)
	}
	return &HDNode{key: &bip32.Key{
		Key:         p.Bytes(),
		Version:     bip32.PublicWalletVersion,
		ChainCode:   cc.Bytes(),
		ChildNumber: []byte{0, 0, 0, 0},
		FingerPrint: []byte{0, 0, 0, 0},
		Depth:       0,
		IsPrivate:   false,
	}}, nil
}

// NodeFromString decodes a base58 extended key (xprv/xpub form) produced
// by String.
func NodeFromString(s string) (*HDNode, error) {
	key, err := bip32.B58Deserialize(s)
	if err != nil {
		return nil, fmt.Errorf("decode extended key: %v: %w", err, ErrInvalidHDNode)
	}
	return &HDNode{key: key}, nil
}

// DeriveChild derives the child node at the given index. Indices at or
// above HardenedOffset are hardened and require a private-capable parent.
// In the vanishingly rare case the child scalar falls outside the curve
// order the derivation fails; the caller must choose another index, there
// is no silent retry.
func (n *HDNode) DeriveChild(index uint32) (*HDNode, error) {
	if index >= HardenedOffset && !n.key.IsPrivate {
		return nil, fmt.Errorf("derive child %d: missing private key for hardened derivation: %w",
			index, ErrInvalidHDNode)
	}
	child, err := n.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %v: %w", index, err, ErrInvalidHDNode)
	}
	return &HDNode{key: child}, nil
}

// DerivePath derives a descendant along a sequence of indices.
func (n *HDNode) DerivePath(indices ...uint32) (*HDNode, error) {
	current := n
	for _, index := range indices {
		child, err := current.DeriveChild(index)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// Derive parses a path string (see ParseDerivationPath) and derives the
// descendant relative to this node. Malformed paths fail before any
// derivation.
func (n *HDNode) Derive(path string) (*HDNode, error) {
	indices, err := ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}
	return n.DerivePath(indices...)
}

// PrivateKeyBytes returns the raw 32-byte private key, or nil for a
// public-only node.
func (n *HDNode) PrivateKeyBytes() []byte {
	if !n.key.IsPrivate {
		return nil
	}
	raw := n.key.Key
	// bip32 may carry private keys as 33 bytes with a leading 0x00.
	if len(raw) == 33 && raw[0] == 0 {
		raw = raw[1:]
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (n *HDNode) PublicKeyBytes() []byte {
	pub := n.key.PublicKey().Key
	out := make([]byte, len(pub))
	copy(out, pub)
	return out
}

// ChainCode returns the 32-byte chain code.
func (n *HDNode) ChainCode() []byte {
	out := make([]byte, len(n.key.ChainCode))
	copy(out, n.key.ChainCode)
	return out
}

// Depth returns the derivation depth (0 for a root node).
func (n *HDNode) Depth() uint8 {
	return n.key.Depth
}

// Index returns the child index this node was derived at (0 for roots).
func (n *HDNode) Index() uint32 {
	return binary.BigEndian.Uint32(n.key.ChildNumber)
}

// ParentFingerprint returns the 4-byte fingerprint of the parent key.
func (n *HDNode) ParentFingerprint() []byte {
	out := make([]byte, len(n.key.FingerPrint))
	copy(out, n.key.FingerPrint)
	return out
}

// IsPrivate returns true if this node holds a private key.
func (n *HDNode) IsPrivate() bool {
	return n.key.IsPrivate
}

// Address derives the Velta account address from this node's public key.
func (n *HDNode) Address() types.Address {
	addr, err := crypto.AddressFromPublicKey(n.PublicKeyBytes())
	if err != nil {
		// Node keys are curve-checked at construction; keep the zero
		// address as the unreachable fallback rather than panicking.
		return types.Address{}
	}
	return addr
}

// Signer returns a recoverable-ECDSA signer backed by this node's private
// key. Fails for public-only nodes.
func (n *HDNode) Signer() (*crypto.KeyPair, error) {
	priv := n.PrivateKeyBytes()
	if priv == nil {
		return nil, fmt.Errorf("signer: missing private key: %w", ErrInvalidHDNode)
	}
	return crypto.KeyPairFromBytes(priv)
}

// Neuter returns a public-only copy of this node (for watch-only use).
func (n *HDNode) Neuter() *HDNode {
	return &HDNode{key: n.key.PublicKey()}
}

// String returns the base58 extended-key serialization (xprv for
// private-capable nodes, xpub for public-only ones).
func (n *HDNode) String() string {
	return n.key.B58Serialize()
}
