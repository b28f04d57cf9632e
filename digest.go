package go_pkcrypto

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Digest maps a message integer to a 256-bit digest integer.
//
// The message is rendered in canonical base-10 text, hashed with SHA-256, and
// the lowercase hex form of the hash is read back as a base-16 integer. The
// decimal rendering is part of the contract: two implementations only agree
// on signatures if they hash the same text.
//
// A negative message hashes its leading '-' like any other character.
func Digest(m *big.Int) *big.Int {
	sum := sha256.Sum256([]byte(m.String()))
	h, _ := new(big.Int).SetString(hex.EncodeToString(sum[:]), 16)
	return h
}
