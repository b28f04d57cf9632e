package go_pkcrypto

import (
	"math/big"
)

// RSA holds a textbook RSA parameter set.
//
// The caller is responsible for N = p*q with p, q prime and
// E*D ≡ 1 mod φ(N). None of this is checked; an inconsistent set yields
// meaningless but well-formed results.
//
// No padding scheme is applied, which makes this RSA malleable and
// deterministic. It is NOT safe for production use.
type RSA struct {
	// N is the public modulus.
	N *big.Int
	// E is the public exponent.
	E *big.Int
	// D is the secret exponent.
	D *big.Int
}

var (
	_ Encrypter[Single] = (*RSA)(nil)
	_ Signer[Single]    = (*RSA)(nil)
)

// NewRSA stores the given parameters. The values are not copied and must
// not be modified while the RSA is in use.
func NewRSA(n, e, d *big.Int) *RSA {
	return &RSA{N: n, E: e, D: d}
}

// Encrypt computes m^E mod N. The error is always nil.
func (r *RSA) Encrypt(m *big.Int) (Single, error) {
	return NewSingle(new(big.Int).Exp(m, r.E, r.N)), nil
}

// Decrypt computes c^D mod N.
func (r *RSA) Decrypt(c Single) *big.Int {
	return new(big.Int).Exp(c.Value, r.D, r.N)
}

// Hash returns Digest(m).
func (r *RSA) Hash(m *big.Int) *big.Int {
	return Digest(m)
}

// Sign computes Hash(m)^D mod N. The error is always nil.
func (r *RSA) Sign(m *big.Int) (Single, error) {
	return NewSingle(new(big.Int).Exp(r.Hash(m), r.D, r.N)), nil
}

// Verify checks sig^E mod N == Hash(m).
//
// The digest is compared unreduced, so a modulus smaller than 2^256 only
// verifies messages whose digest happens to be below N.
func (r *RSA) Verify(m *big.Int, sig Single) bool {
	v := new(big.Int).Exp(sig.Value, r.E, r.N)
	return v.Cmp(r.Hash(m)) == 0
}
