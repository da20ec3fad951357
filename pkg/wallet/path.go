package wallet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip32"
)

// HardenedOffset is the index offset marking hardened derivation
// (the high bit of the 32-bit child index).
const HardenedOffset = bip32.FirstHardenedChild

// DerivationPath is a sequence of child indices. Indices at or above
// HardenedOffset are hardened.
type DerivationPath []uint32

// ParseDerivationPath parses a path like "m/44'/818'/0'/0" into its index
// sequence. The leading "m" is optional; components are decimal indices
// with an optional hardened suffix (', h or H). Malformed syntax fails
// with ErrInvalidDerivationPath before any derivation is attempted.
func ParseDerivationPath(path string) (DerivationPath, error) {
	components := strings.Split(path, "/")
	if strings.TrimSpace(components[0]) == "m" {
		components = components[1:]
	} else if strings.TrimSpace(components[0]) == "" {
		return nil, fmt.Errorf("parse path: empty first component: %w", ErrInvalidDerivationPath)
	}

	result := make(DerivationPath, 0, len(components))
	for _, component := range components {
		component = strings.TrimSpace(component)

		var hardened bool
		switch {
		case strings.HasSuffix(component, "'"):
			hardened = true
			component = strings.TrimSpace(strings.TrimSuffix(component, "'"))
		case strings.HasSuffix(component, "h"), strings.HasSuffix(component, "H"):
			hardened = true
			component = strings.TrimSpace(component[:len(component)-1])
		}

		index, err := strconv.ParseUint(component, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse path component %q: %w", component, ErrInvalidDerivationPath)
		}
		if hardened {
			if index >= uint64(HardenedOffset) {
				return nil, fmt.Errorf("parse path: hardened index %d out of range: %w", index, ErrInvalidDerivationPath)
			}
			index += uint64(HardenedOffset)
		}
		result = append(result, uint32(index))
	}
	return result, nil
}

// String formats the path canonically: "m" followed by "/<index>" per
// component, with "'" marking hardened indices.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, index := range p {
		if index >= HardenedOffset {
			fmt.Fprintf(&b, "/%d'", index-HardenedOffset)
		} else {
			fmt.Fprintf(&b, "/%d", index)
		}
	}
	return b.String()
}
