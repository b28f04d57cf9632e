package go_pkcrypto

import (
	"errors"
)

// Standard pkcrypto error types
//
// These errors follow Go 1.13+ error wrapping conventions and can be checked
// using errors.Is(). Operations attach context (algorithm, operand sizes)
// with github.com/samber/oops, which keeps the sentinel reachable through
// Unwrap.
//
// Verification failure is never an error: Verify returns false.
// Invalid algorithm parameters (composite moduli, generators of the wrong
// order, mismatched exponents) are never detected and produce meaningless
// output instead of an error.
var (
	// ErrRandomSource indicates the randomness source failed to produce bytes.
	// ElGamal encryption and DSA signing cannot proceed without a fresh
	// ephemeral secret, so the operation is abandoned.
	ErrRandomSource = errors.New("pkcrypto: random source failure")

	// ErrEmptyRange indicates a sampling range [lower, upper) with lower >= upper.
	// For ElGamal this happens when p <= 2, for DSA when q <= 1.
	ErrEmptyRange = errors.New("pkcrypto: empty sampling range")

	// ErrDegenerateSignature indicates every ephemeral secret drawn for a DSA
	// signature produced r == 0 or s == 0. With valid parameters the
	// probability of this is negligible; in practice it means the
	// parameters are broken (for example g ≡ 0 mod p).
	ErrDegenerateSignature = errors.New("pkcrypto: no usable ephemeral secret after maximum attempts")
)
