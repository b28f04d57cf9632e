package go_pkcrypto

import (
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// MustBigInt parses a base-10 integer. It panics if s is not a number and is
// intended for fixtures and tests.
func MustBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("pkcrypto: not a number: " + s)
	}
	return n
}

// fermatInverse computes k^(n-2) mod n, the inverse of k modulo a prime n.
func fermatInverse(k, n *big.Int) *big.Int {
	nMinus2 := new(big.Int).Sub(n, two)
	return new(big.Int).Exp(k, nMinus2, n)
}
