package go_pkcrypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/samber/oops"
)

// RandomInRange returns an integer drawn uniformly from [lower, upper).
//
// Every call consumes fresh output from rng, so two calls never share an
// ephemeral secret unless the source itself repeats. A nil rng selects
// crypto/rand.Reader. The bounds are not modified.
func RandomInRange(rng io.Reader, lower, upper *big.Int) (*big.Int, error) {
	if lower.Cmp(upper) >= 0 {
		return nil, oops.
			In("random").
			With("lower", lower.String(), "upper", upper.String()).
			Wrapf(ErrEmptyRange, "sample [%s, %s)", lower, upper)
	}
	if rng == nil {
		rng = rand.Reader
	}

	width := new(big.Int).Sub(upper, lower)
	n, err := rand.Int(rng, width)
	if err != nil {
		log.Errorf("Failed to draw random integer below %d bits: %v", width.BitLen(), err)
		return nil, oops.
			In("random").
			With("bits", width.BitLen()).
			Wrapf(fmt.Errorf("%w: %w", ErrRandomSource, err), "draw below 2^%d", width.BitLen())
	}

	return n.Add(n, lower), nil
}

// RandomBelow returns an integer drawn uniformly from [0, upper).
func RandomBelow(rng io.Reader, upper *big.Int) (*big.Int, error) {
	return RandomInRange(rng, new(big.Int), upper)
}
