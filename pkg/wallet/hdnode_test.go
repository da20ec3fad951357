package wallet

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/veltachain/velta-devkit/pkg/crypto"
)

// bip32Seed is seed hex from the standard BIP-32 test vector 1.
const bip32Seed = "000102030405060708090a0b0c0d0e0f"

func mustSeed(t *testing.T, seedHex string) []byte {
	t.Helper()
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		t.Fatalf("bad seed hex: %v", err)
	}
	return seed
}

func TestFromSeed_BIP32Vector1(t *testing.T) {
	node, err := FromSeed(mustSeed(t, bip32Seed))
	if err != nil {
		t.Fatalf("FromSeed() error: %v", err)
	}

	wantPriv := "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	if got := node.String(); got != wantPriv {
		t.Errorf("master xprv = %s, want %s", got, wantPriv)
	}

	wantPub := "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	if got := node.Neuter().String(); got != wantPub {
		t.Errorf("master xpub = %s, want %s", got, wantPub)
	}
}

func TestFromSeed_LengthBounds(t *testing.T) {
	for _, size := range []int{MinSeedSize, 32, MaxSeedSize} {
		if _, err := FromSeed(make([]byte, size)); err != nil {
			t.Errorf("FromSeed(%d bytes) error: %v", size, err)
		}
	}
	for _, size := range []int{0, MinSeedSize - 1, MaxSeedSize + 1} {
		if _, err := FromSeed(make([]byte, size)); !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("FromSeed(%d bytes) should fail with ErrInvalidSeed", size)
		}
	}
}

func TestFromMnemonic(t *testing.T) {
	mnemonic := "ignore empty bird silly journey junior ripple have guard waste between tenant"

	node, err := FromMnemonic(mnemonic, "")
	if err != nil {
		t.Fatalf("FromMnemonic() error: %v", err)
	}
	if node.Depth() != 0 {
		t.Errorf("master depth = %d, want 0", node.Depth())
	}
	if !node.IsPrivate() {
		t.Error("master node should carry a private key")
	}

	if _, err := FromMnemonic("not a mnemonic", ""); !errors.Is(err, ErrInvalidMnemonic) {
		t.Errorf("error = %v, want ErrInvalidMnemonic", err)
	}
}

func TestDeriveChild_Hardened(t *testing.T) {
	node, err := FromSeed(mustSeed(t, bip32Seed))
	if err != nil {
		t.Fatalf("FromSeed() error: %v", err)
	}

	child, err := node.DeriveChild(HardenedOffset)
	if err != nil {
		t.Fatalf("DeriveChild(0') error: %v", err)
	}
	if child.Depth() != 1 {
		t.Errorf("depth = %d, want 1", child.Depth())
	}
	if child.Index() != HardenedOffset {
		t.Errorf("index = %#x, want %#x", child.Index(), HardenedOffset)
	}

	// A neutered node cannot perform hardened derivation.
	_, err = node.Neuter().DeriveChild(HardenedOffset)
	if !errors.Is(err, ErrInvalidHDNode) {
		t.Errorf("hardened derivation on public node: error = %v, want ErrInvalidHDNode", err)
	}
}

func TestDeriveChild_PublicPrivateConsistency(t *testing.T) {
	node, err := FromSeed(mustSeed(t, bip32Seed))
	if err != nil {
		t.Fatalf("FromSeed() error: %v", err)
	}

	// Unhardened children of the neutered parent must match the neutered
	// children of the private parent.
	for _, index := range []uint32{0, 1, 7} {
		fromPriv, err := node.DeriveChild(index)
		if err != nil {
			t.Fatalf("private DeriveChild(%d) error: %v", index, err)
		}
		fromPub, err := node.Neuter().DeriveChild(index)
		if err != nil {
			t.Fatalf("public DeriveChild(%d) error: %v", index, err)
		}
		if !bytes.Equal(fromPriv.PublicKeyBytes(), fromPub.PublicKeyBytes()) {
			t.Errorf("index %d: public keys diverge", index)
		}
		if fromPriv.Address() != fromPub.Address() {
			t.Errorf("index %d: addresses diverge", index)
		}
	}
}

func TestDerivePath(t *testing.T) {
	node, err := FromSeed(mustSeed(t, bip32Seed))
	if err != nil {
		t.Fatalf("FromSeed() error: %v", err)
	}

	stepwise, err := node.DeriveChild(HardenedOffset + 44)
	if err != nil {
		t.Fatalf("DeriveChild error: %v", err)
	}
	stepwise, err = stepwise.DeriveChild(0)
	if err != nil {
		t.Fatalf("DeriveChild error: %v", err)
	}

	direct, err := node.DerivePath(HardenedOffset+44, 0)
	if err != nil {
		t.Fatalf("DerivePath error: %v", err)
	}
	if !bytes.Equal(direct.PublicKeyBytes(), stepwise.PublicKeyBytes()) {
		t.Error("DerivePath must match stepwise DeriveChild")
	}

	parsed, err := node.Derive("m/44'/0")
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if !bytes.Equal(parsed.PublicKeyBytes(), direct.PublicKeyBytes()) {
		t.Error("Derive must match DerivePath")
	}

	if _, err := node.Derive("m/broken"); !errors.Is(err, ErrInvalidDerivationPath) {
		t.Errorf("error = %v, want ErrInvalidDerivationPath", err)
	}
}

func TestFromPrivateKey(t *testing.T) {
	priv := bytes.Repeat([]byte{0x11}, 32)
	chainCode := bytes.Repeat([]byte{0x22}, 32)

	node, err := FromPrivateKey(priv, chainCode)
	if err != nil {
		t.Fatalf("FromPrivateKey() error: %v", err)
	}
	if !bytes.Equal(node.PrivateKeyBytes(), priv) {
		t.Errorf("private key = %x, want %x", node.PrivateKeyBytes(), priv)
	}
	if !bytes.Equal(node.ChainCode(), chainCode) {
		t.Errorf("chain code = %x, want %x", node.ChainCode(), chainCode)
	}

	// Children must be derivable from a standalone node.
	child, err := node.DeriveChild(3)
	if err != nil {
		t.Fatalf("DeriveChild() error: %v", err)
	}
	if child.Depth() != 1 {
		t.Errorf("depth = %d, want 1", child.Depth())
	}

	if _, err := FromPrivateKey(make([]byte, 32), chainCode); err == nil {
		t.Error("zero private key should be rejected")
	}
	if _, err := FromPrivateKey(priv, make([]byte, 16)); err == nil {
		t.Error("short chain code should be rejected")
	}
}

func TestFromPublicKey(t *testing.T) {
	seedNode, err := FromSeed(mustSeed(t, bip32Seed))
	if err != nil {
		t.Fatalf("FromSeed() error: %v", err)
	}

	node, err := FromPublicKey(seedNode.PublicKeyBytes(), seedNode.ChainCode())
	if err != nil {
		t.Fatalf("FromPublicKey() error: %v", err)
	}
	if node.IsPrivate() {
		t.Error("node built from a public key must not claim a private key")
	}
	if node.PrivateKeyBytes() != nil {
		t.Error("PrivateKeyBytes() should be nil for a public node")
	}
	if node.Address() != seedNode.Address() {
		t.Error("address must match the source node")
	}

	child, err := node.DeriveChild(0)
	if err != nil {
		t.Fatalf("DeriveChild() error: %v", err)
	}
	want, err := seedNode.DeriveChild(0)
	if err != nil {
		t.Fatalf("DeriveChild() error: %v", err)
	}
	if !bytes.Equal(child.PublicKeyBytes(), want.PublicKeyBytes()) {
		t.Error("public-only derivation diverges from the private chain")
	}

	if _, err := FromPublicKey([]byte{0x04, 0x01}, seedNode.ChainCode()); err == nil {
		t.Error("malformed public key should be rejected")
	}
}

func TestNodeFromString_RoundTrip(t *testing.T) {
	node, err := FromSeed(mustSeed(t, bip32Seed))
	if err != nil {
		t.Fatalf("FromSeed() error: %v", err)
	}

	for _, serialized := range []string{node.String(), node.Neuter().String()} {
		back, err := NodeFromString(serialized)
		if err != nil {
			t.Fatalf("NodeFromString(%q) error: %v", serialized, err)
		}
		if got := back.String(); got != serialized {
			t.Errorf("round trip = %s, want %s", got, serialized)
		}
	}

	if _, err := NodeFromString("xprvNotAKey"); !errors.Is(err, ErrInvalidHDNode) {
		t.Errorf("error = %v, want ErrInvalidHDNode", err)
	}
}

func TestHDNode_Signer(t *testing.T) {
	node, err := FromSeed(mustSeed(t, bip32Seed))
	if err != nil {
		t.Fatalf("FromSeed() error: %v", err)
	}

	pair, err := node.Signer()
	if err != nil {
		t.Fatalf("Signer() error: %v", err)
	}
	defer pair.Zero()

	msgHash := crypto.Blake2b256([]byte("spend 10 to 0x00"))
	sig, err := pair.Sign(msgHash[:])
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	recovered, err := crypto.Recover(msgHash[:], sig)
	if err != nil {
		t.Fatalf("Recover() error: %v", err)
	}
	uncompressed, err := crypto.DecompressPublicKey(node.PublicKeyBytes())
	if err != nil {
		t.Fatalf("DecompressPublicKey() error: %v", err)
	}
	if !bytes.Equal(recovered, uncompressed) {
		t.Error("recovered key does not match the node's public key")
	}

	if _, err := node.Neuter().Signer(); !errors.Is(err, ErrInvalidHDNode) {
		t.Errorf("Signer() on public node: error = %v, want ErrInvalidHDNode", err)
	}
}
