package go_pkcrypto

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentEncrypter(t *testing.T) {
	metrics := NewInMemoryMetrics()
	var enc Encrypter[Pair] = InstrumentEncrypter[Pair](ALGORITHM_ELGAMAL, FixtureElGamal(), metrics)
	m := MustBigInt(FixtureMessage)

	c, err := enc.Encrypt(m)
	require.NoError(t, err)
	assert.Equal(t, 0, enc.Decrypt(c).Cmp(m))

	assert.Equal(t, uint64(1), metrics.Operations(ALGORITHM_ELGAMAL, OPERATION_ENCRYPT))
	assert.Equal(t, uint64(1), metrics.Operations(ALGORITHM_ELGAMAL, OPERATION_DECRYPT))
	assert.Equal(t, uint64(0), metrics.Errors(ALGORITHM_ELGAMAL, OPERATION_ENCRYPT))
	assert.Greater(t, metrics.MaxLatency(ALGORITHM_ELGAMAL, OPERATION_ENCRYPT), time.Duration(0))
}

func TestInstrumentEncrypter_Error(t *testing.T) {
	metrics := NewInMemoryMetrics()
	eg := FixtureElGamal()
	eg.Rand = failingReader{errEntropyExhausted}
	enc := InstrumentEncrypter[Pair](ALGORITHM_ELGAMAL, eg, metrics)

	_, err := enc.Encrypt(big.NewInt(1))
	require.True(t, errors.Is(err, ErrRandomSource))

	assert.Equal(t, uint64(1), metrics.Errors(ALGORITHM_ELGAMAL, OPERATION_ENCRYPT))
	assert.Equal(t, uint64(0), metrics.Operations(ALGORITHM_ELGAMAL, OPERATION_ENCRYPT))
}

func TestInstrumentSigner(t *testing.T) {
	metrics := NewInMemoryMetrics()
	var s Signer[Single] = InstrumentSigner[Single](ALGORITHM_RSA, FixtureRSA(), metrics)
	m := MustBigInt(FixtureMessage)

	sig, err := s.Sign(m)
	require.NoError(t, err)
	assert.True(t, s.Verify(m, sig))
	assert.False(t, s.Verify(big.NewInt(2), sig))
	assert.Equal(t, 0, s.Hash(m).Cmp(Digest(m)))

	assert.Equal(t, uint64(1), metrics.Operations(ALGORITHM_RSA, OPERATION_SIGN))
	assert.Equal(t, uint64(2), metrics.Operations(ALGORITHM_RSA, OPERATION_VERIFY))
	assert.Equal(t, uint64(1), metrics.VerifyFailures(ALGORITHM_RSA))
}

func TestInstrumentSigner_NilMetrics(t *testing.T) {
	s := InstrumentSigner[Pair](ALGORITHM_DSA, FixtureDSA(), nil)
	m := MustBigInt(FixtureMessage)

	sig, err := s.Sign(m)
	require.NoError(t, err)
	assert.True(t, s.Verify(m, sig))
	assert.False(t, s.Verify(m, NewPair(sig.Second, sig.First)))
}
