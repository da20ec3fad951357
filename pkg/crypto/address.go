package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/veltachain/velta-devkit/pkg/types"
)

// AddressFromPublicKey derives the account address for a public key in
// either encoding. Address = low 20 bytes of Keccak-256 over the 64 raw
// point coordinate bytes (uncompressed encoding without the 0x04 prefix).
func AddressFromPublicKey(pub []byte) (types.Address, error) {
	p, err := parsePublicKey(pub)
	if err != nil {
		return types.Address{}, fmt.Errorf("address: %w", err)
	}
	return addressOf(p), nil
}

// addressOf computes the address for an already-validated curve point.
func addressOf(p *secp256k1.PublicKey) types.Address {
	h := Keccak256(p.SerializeUncompressed()[1:])
	var addr types.Address
	copy(addr[:], h[types.HashSize-types.AddressSize:])
	return addr
}
