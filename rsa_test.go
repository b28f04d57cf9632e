package go_pkcrypto

import (
	"math/big"
	"testing"
)

// TestRSA_SmallRoundTrip tests the HAC example 8.3 key
func TestRSA_SmallRoundTrip(t *testing.T) {
	rsa := NewRSA(
		new(big.Int).Mul(big.NewInt(2357), big.NewInt(2551)),
		big.NewInt(3674911),
		big.NewInt(422191),
	)
	m := big.NewInt(5234673)

	c, err := rsa.Encrypt(m)
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	if got := rsa.Decrypt(c); got.Cmp(m) != 0 {
		t.Errorf("Decrypt(Encrypt(%s)) = %s", m, got)
	}
}

// TestRSA_SmallCiphertext tests the published HAC ciphertext for m = 5234673
func TestRSA_SmallCiphertext(t *testing.T) {
	rsa := FixtureRSASmall()

	c, err := rsa.Encrypt(big.NewInt(5234673))
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	if want := big.NewInt(3650502); c.Value.Cmp(want) != 0 {
		t.Errorf("Encrypt(5234673) = %s, want %s", c.Value, want)
	}
}

// TestRSA_RoundTrip tests decryption over a spread of messages with the 2048-bit key
func TestRSA_RoundTrip(t *testing.T) {
	rsa := FixtureRSA()
	last := new(big.Int).Sub(rsa.N, one)

	tests := []struct {
		name string
		m    *big.Int
	}{
		{"zero", big.NewInt(0)},
		{"one", big.NewInt(1)},
		{"fixture", MustBigInt(FixtureMessage)},
		{"n-1", last},
		{"half", new(big.Int).Rsh(rsa.N, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := rsa.Encrypt(tt.m)
			if err != nil {
				t.Fatalf("Failed to encrypt: %v", err)
			}
			if got := rsa.Decrypt(c); got.Cmp(tt.m) != 0 {
				t.Errorf("Decrypt(Encrypt(m)) = %s, want %s", got, tt.m)
			}
		})
	}
}

// TestRSA_Deterministic tests that textbook RSA encryption has no randomness
func TestRSA_Deterministic(t *testing.T) {
	rsa := FixtureRSA()
	m := MustBigInt(FixtureMessage)

	c1, _ := rsa.Encrypt(m)
	c2, _ := rsa.Encrypt(m)
	if c1.Value.Cmp(c2.Value) != 0 {
		t.Error("Encrypting the same message twice gave different ciphertexts")
	}
}

// TestRSA_SignVerify tests signing and verification with the 2048-bit key
func TestRSA_SignVerify(t *testing.T) {
	rsa := FixtureRSA()
	m := MustBigInt(FixtureMessage)

	sig, err := rsa.Sign(m)
	if err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}

	if !rsa.Verify(m, sig) {
		t.Error("Signature verification failed")
	}

	wrong := new(big.Int).Add(m, one)
	if rsa.Verify(wrong, sig) {
		t.Error("Signature verification should have failed for wrong message")
	}

	tampered := NewSingle(new(big.Int).Add(sig.Value, one))
	if rsa.Verify(m, tampered) {
		t.Error("Signature verification should have failed for tampered signature")
	}
}

// TestRSA_Hash tests that RSA signs the shared digest
func TestRSA_Hash(t *testing.T) {
	rsa := FixtureRSA()
	m := big.NewInt(2)

	if rsa.Hash(m).Cmp(Digest(m)) != 0 {
		t.Error("RSA.Hash differs from Digest")
	}

	sig, _ := rsa.Sign(m)
	want := new(big.Int).Exp(Digest(m), rsa.D, rsa.N)
	if sig.Value.Cmp(want) != 0 {
		t.Errorf("Sign(2) = %s, want %s", sig.Value, want)
	}
}

// TestRSA_SmallModulusCannotVerify tests that a modulus below the digest width never verifies
//
// The digest is compared unreduced, so with n < 2^256 the check can only pass
// for the rare message whose digest is already below n.
func TestRSA_SmallModulusCannotVerify(t *testing.T) {
	rsa := FixtureRSASmall()
	m := MustBigInt(FixtureMessage)

	sig, err := rsa.Sign(m)
	if err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}
	if rsa.Verify(m, sig) {
		t.Error("Verify passed with a modulus smaller than the digest")
	}
}

// TestRSA_DoesNotModifyInputs tests that operations leave their arguments alone
func TestRSA_DoesNotModifyInputs(t *testing.T) {
	rsa := FixtureRSA()
	m := MustBigInt(FixtureMessage)

	c, _ := rsa.Encrypt(m)
	cBefore := new(big.Int).Set(c.Value)
	rsa.Decrypt(c)
	sig, _ := rsa.Sign(m)
	sigBefore := new(big.Int).Set(sig.Value)
	rsa.Verify(m, sig)

	if m.String() != FixtureMessage {
		t.Errorf("message modified: %s", m)
	}
	if c.Value.Cmp(cBefore) != 0 {
		t.Error("ciphertext modified by Decrypt")
	}
	if sig.Value.Cmp(sigBefore) != 0 {
		t.Error("signature modified by Verify")
	}
	if rsa.E.Int64() != 65537 {
		t.Errorf("public exponent modified: %s", rsa.E)
	}
}

func BenchmarkRSA_Decrypt(b *testing.B) {
	rsa := FixtureRSA()
	c, _ := rsa.Encrypt(MustBigInt(FixtureMessage))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rsa.Decrypt(c)
	}
}

func BenchmarkRSA_Sign(b *testing.B) {
	rsa := FixtureRSA()
	m := MustBigInt(FixtureMessage)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rsa.Sign(m); err != nil {
			b.Fatal(err)
		}
	}
}
