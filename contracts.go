package go_pkcrypto

import (
	"math/big"
)

// Encrypter is implemented by algorithms that can encrypt and decrypt
// integer messages. The ciphertext shape C is fixed per algorithm, so a
// ciphertext produced by one algorithm cannot be handed to another's Decrypt.
//
// Messages are expected in [0, modulus). Nothing is padded.
type Encrypter[C Ciphertext] interface {
	// Encrypt returns the ciphertext of m. Randomized algorithms return an
	// error only when their randomness source fails.
	Encrypt(m *big.Int) (C, error)
	// Decrypt recovers the message from c.
	Decrypt(c C) *big.Int
}

// Signer is implemented by algorithms that can sign integer messages and
// verify signatures over them.
type Signer[S Signature] interface {
	// Hash returns the digest the algorithm signs for m.
	Hash(m *big.Int) *big.Int
	// Sign returns a signature over m.
	Sign(m *big.Int) (S, error)
	// Verify reports whether sig is a valid signature over m. A tampered
	// message or signature yields false, never an error.
	Verify(m *big.Int, sig S) bool
}
