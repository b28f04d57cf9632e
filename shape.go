package go_pkcrypto

import (
	"fmt"
	"math/big"
)

// Single is a result made of one integer: an RSA ciphertext or an RSA
// signature.
type Single struct {
	Value *big.Int
}

// NewSingle wraps v without copying it.
func NewSingle(v *big.Int) Single {
	return Single{Value: v}
}

func (s Single) String() string {
	return fmt.Sprintf("Single(%s)", s.Value)
}

// Pair is a result made of an ordered pair of integers: an ElGamal
// ciphertext (c1, c2) or a DSA signature (r, s).
type Pair struct {
	First  *big.Int
	Second *big.Int
}

// NewPair wraps a and b without copying them.
func NewPair(a, b *big.Int) Pair {
	return Pair{First: a, Second: b}
}

func (p Pair) String() string {
	return fmt.Sprintf("Pair(%s, %s)", p.First, p.Second)
}

// Ciphertext is the set of shapes an encryption can produce.
// Each Encrypter fixes exactly one of them.
type Ciphertext interface {
	Single | Pair
}

// Signature is the set of shapes a signature can take.
// Each Signer fixes exactly one of them.
type Signature interface {
	Single | Pair
}
