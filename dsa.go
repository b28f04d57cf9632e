package go_pkcrypto

import (
	"io"
	"math/big"

	"github.com/samber/oops"
)

// DSA holds a DSA parameter set.
//
// The caller is responsible for P and Q being prime, Q dividing P-1, G
// having order Q modulo P and Y = G^X mod P. None of this is checked.
//
// Messages are hashed with Digest before signing, so the signature scheme
// only interoperates with implementations that hash the decimal rendering
// of the message the same way.
type DSA struct {
	// P is the public prime.
	P *big.Int
	// Q is the public group order.
	Q *big.Int
	// G is the public group generator.
	G *big.Int
	// Y is the public value G^X mod P.
	Y *big.Int
	// X is the secret exponent.
	X *big.Int

	// Rand is the source of ephemeral secrets. If nil, crypto/rand.Reader
	// is used. It must be safe for concurrent use if the DSA is.
	Rand io.Reader
}

var _ Signer[Pair] = (*DSA)(nil)

// NewDSA stores the given parameters. The values are not copied and must
// not be modified while the DSA is in use.
func NewDSA(p, q, g, y, x *big.Int) *DSA {
	return &DSA{P: p, Q: q, G: g, Y: y, X: x}
}

// Hash returns Digest(m).
func (d *DSA) Hash(m *big.Int) *big.Int {
	return Digest(m)
}

// Sign produces the signature (r, s) with
//
//	r = (G^k mod P) mod Q
//	s = k^-1 (Hash(m) + X*r) mod Q
//
// where k is drawn from [1, Q). A k that yields r == 0 or s == 0 is
// discarded and a new one drawn, up to MaxSignAttempts times.
func (d *DSA) Sign(m *big.Int) (Pair, error) {
	z := d.Hash(m)

	for attempt := 1; attempt <= MaxSignAttempts; attempt++ {
		k, err := RandomInRange(d.Rand, one, d.Q)
		if err != nil {
			return Pair{}, oops.
				In(ALGORITHM_DSA).
				With("operation", OPERATION_SIGN, "attempt", attempt).
				Wrapf(err, "draw ephemeral secret")
		}

		kInv := fermatInverse(k, d.Q)

		r := new(big.Int).Exp(d.G, k, d.P)
		r.Mod(r, d.Q)
		if r.Sign() == 0 {
			log.Debugf("DSA attempt %d produced r == 0, drawing a new k", attempt)
			continue
		}

		s := new(big.Int).Mul(d.X, r)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, d.Q)
		if s.Sign() == 0 {
			log.Debugf("DSA attempt %d produced s == 0, drawing a new k", attempt)
			continue
		}

		return NewPair(r, s), nil
	}

	log.Warnf("DSA gave up after %d attempts, parameters are likely invalid", MaxSignAttempts)
	return Pair{}, oops.
		In(ALGORITHM_DSA).
		With("operation", OPERATION_SIGN, "attempts", MaxSignAttempts).
		Wrapf(ErrDegenerateSignature, "sign")
}

// Verify checks the signature sig = (r, s) by computing
//
//	w  = s^-1 mod Q
//	u1 = Hash(m) * w mod Q
//	u2 = r * w mod Q
//	v  = (G^u1 * Y^u2 mod P) mod Q
//
// and reporting whether v == r. Signatures with r or s outside (0, Q) are
// rejected without computing anything.
func (d *DSA) Verify(m *big.Int, sig Pair) bool {
	r, s := sig.First, sig.Second
	if r == nil || s == nil {
		return false
	}
	if r.Sign() < 1 || r.Cmp(d.Q) >= 0 {
		return false
	}
	if s.Sign() < 1 || s.Cmp(d.Q) >= 0 {
		return false
	}

	w := fermatInverse(s, d.Q)

	u1 := new(big.Int).Mul(d.Hash(m), w)
	u1.Mod(u1, d.Q)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, d.Q)

	v := new(big.Int).Exp(d.G, u1, d.P)
	u2.Exp(d.Y, u2, d.P)
	v.Mul(v, u2)
	v.Mod(v, d.P)
	v.Mod(v, d.Q)

	return v.Cmp(r) == 0
}
