package go_pkcrypto

import (
	"io"
	"math/big"

	"github.com/samber/oops"
)

// ElGamal holds an ElGamal parameter set over the multiplicative group
// modulo a prime.
//
// The caller is responsible for P being prime, G being a generator and
// Y = G^X mod P. None of this is checked. Messages are expected in [0, P).
//
// ElGamal only encrypts; it has no signing capability here.
type ElGamal struct {
	// P is the public prime.
	P *big.Int
	// G is the public group generator.
	G *big.Int
	// Y is the public value G^X mod P.
	Y *big.Int
	// X is the secret exponent.
	X *big.Int

	// Rand is the source of ephemeral secrets. If nil, crypto/rand.Reader
	// is used. It must be safe for concurrent use if the ElGamal is.
	Rand io.Reader
}

var _ Encrypter[Pair] = (*ElGamal)(nil)

// NewElGamal stores the given parameters. The values are not copied and must
// not be modified while the ElGamal is in use.
func NewElGamal(p, g, y, x *big.Int) *ElGamal {
	return &ElGamal{P: p, G: g, Y: y, X: x}
}

// Encrypt draws a fresh k from [1, P-1) and returns
//
//	c1 = G^k mod P
//	c2 = m * Y^k mod P
//
// Y^k is the shared secret; only the holder of X can rebuild it from c1.
func (e *ElGamal) Encrypt(m *big.Int) (Pair, error) {
	pMinus1 := new(big.Int).Sub(e.P, one)
	k, err := RandomInRange(e.Rand, one, pMinus1)
	if err != nil {
		return Pair{}, oops.
			In(ALGORITHM_ELGAMAL).
			With("operation", OPERATION_ENCRYPT, "bits", e.P.BitLen()).
			Wrapf(err, "draw ephemeral secret")
	}

	s := new(big.Int).Exp(e.Y, k, e.P)
	c1 := new(big.Int).Exp(e.G, k, e.P)
	c2 := s.Mul(m, s)
	c2.Mod(c2, e.P)

	return NewPair(c1, c2), nil
}

// Decrypt returns c2 * c1^(P-1-X) mod P.
//
// Since P is prime, c1^(P-1) ≡ 1, so c1^(P-1-X) ≡ c1^-X, which is the
// inverse of the shared secret.
func (e *ElGamal) Decrypt(c Pair) *big.Int {
	exp := new(big.Int).Sub(e.P, one)
	exp.Sub(exp, e.X)
	sInv := new(big.Int).Exp(c.First, exp, e.P)

	m := sInv.Mul(c.Second, sInv)
	return m.Mod(m, e.P)
}
