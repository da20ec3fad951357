package wallet

import (
	"github.com/veltachain/velta-devkit/pkg/types"
)

// BIP-44 derivation path constants.
// Full path: m/44'/CoinType'/account'/change/index
const (
	// PurposeBIP44 is the BIP-44 purpose field (hardened).
	PurposeBIP44 = HardenedOffset + 44

	// CoinTypeVelta is the registered Velta coin type (hardened).
	CoinTypeVelta = HardenedOffset + 818

	// ChangeExternal is for receiving addresses.
	ChangeExternal = 0

	// ChangeInternal is for change addresses.
	ChangeInternal = 1
)

// AccountBasePath is the external account discovery base, m/44'/818'/0'/0.
// Caller-supplied derivation paths are applied relative to this node, so
// account keys stay interchangeable with other Velta wallets.
var AccountBasePath = DerivationPath{PurposeBIP44, CoinTypeVelta, HardenedOffset, ChangeExternal}

// DefaultDerivationPath is the standard external account path used when a
// caller supplies no path: m/44'/818'/0'/0/0.
var DefaultDerivationPath = DerivationPath{PurposeBIP44, CoinTypeVelta, HardenedOffset, ChangeExternal, 0}

// DeriveAccount derives the node at m/44'/818'/account'/change/index
// relative to this node (normally the master).
func (n *HDNode) DeriveAccount(account, change, index uint32) (*HDNode, error) {
	return n.DerivePath(
		PurposeBIP44,
		CoinTypeVelta,
		HardenedOffset+account,
		change,
		index,
	)
}

// PrivateKeyFromMnemonic derives the private key for a mnemonic at the
// given path, interpreted relative to AccountBasePath (so "m/0" names the
// first external account key). An empty path selects DefaultDerivationPath.
func PrivateKeyFromMnemonic(mnemonic, path string) ([]byte, error) {
	node, err := deriveFromMnemonic(mnemonic, path)
	if err != nil {
		return nil, err
	}
	return node.PrivateKeyBytes(), nil
}

// AddressFromMnemonic derives the account address for a mnemonic at the
// given path, interpreted relative to AccountBasePath. An empty path
// selects DefaultDerivationPath.
func AddressFromMnemonic(mnemonic, path string) (types.Address, error) {
	node, err := deriveFromMnemonic(mnemonic, path)
	if err != nil {
		return types.Address{}, err
	}
	return node.Address(), nil
}

func deriveFromMnemonic(mnemonic, path string) (*HDNode, error) {
	indices := DerivationPath{0}
	if path != "" {
		parsed, err := ParseDerivationPath(path)
		if err != nil {
			return nil, err
		}
		indices = parsed
	}
	root, err := FromMnemonic(mnemonic, "")
	if err != nil {
		return nil, err
	}
	base, err := root.DerivePath(AccountBasePath...)
	if err != nil {
		return nil, err
	}
	return base.DerivePath(indices...)
}
