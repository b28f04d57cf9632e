package go_pkcrypto

import (
	"math/big"
	"time"
)

// InstrumentedEncrypter wraps an Encrypter and reports every call to a
// MetricsCollector. It satisfies Encrypter[C] itself, so it can replace the
// wrapped algorithm anywhere.
type InstrumentedEncrypter[C Ciphertext] struct {
	name    string
	inner   Encrypter[C]
	metrics MetricsCollector
}

// InstrumentEncrypter wraps inner. name labels the metrics, typically one of
// the ALGORITHM_* constants.
func InstrumentEncrypter[C Ciphertext](name string, inner Encrypter[C], metrics MetricsCollector) *InstrumentedEncrypter[C] {
	return &InstrumentedEncrypter[C]{name: name, inner: inner, metrics: metrics}
}

// Encrypt delegates to the wrapped Encrypter.
func (e *InstrumentedEncrypter[C]) Encrypt(m *big.Int) (C, error) {
	start := time.Now()
	c, err := e.inner.Encrypt(m)
	recordOperation(e.metrics, e.name, OPERATION_ENCRYPT, start, err)
	return c, err
}

// Decrypt delegates to the wrapped Encrypter.
func (e *InstrumentedEncrypter[C]) Decrypt(c C) *big.Int {
	start := time.Now()
	m := e.inner.Decrypt(c)
	recordOperation(e.metrics, e.name, OPERATION_DECRYPT, start, nil)
	return m
}

// InstrumentedSigner wraps a Signer and reports every call to a
// MetricsCollector. It satisfies Signer[S] itself.
type InstrumentedSigner[S Signature] struct {
	name    string
	inner   Signer[S]
	metrics MetricsCollector
}

// InstrumentSigner wraps inner. name labels the metrics, typically one of the
// ALGORITHM_* constants.
func InstrumentSigner[S Signature](name string, inner Signer[S], metrics MetricsCollector) *InstrumentedSigner[S] {
	return &InstrumentedSigner[S]{name: name, inner: inner, metrics: metrics}
}

// Hash delegates to the wrapped Signer. It is not counted.
func (s *InstrumentedSigner[S]) Hash(m *big.Int) *big.Int {
	return s.inner.Hash(m)
}

// Sign delegates to the wrapped Signer.
func (s *InstrumentedSigner[S]) Sign(m *big.Int) (S, error) {
	start := time.Now()
	sig, err := s.inner.Sign(m)
	recordOperation(s.metrics, s.name, OPERATION_SIGN, start, err)
	return sig, err
}

// Verify delegates to the wrapped Signer and counts rejected signatures.
func (s *InstrumentedSigner[S]) Verify(m *big.Int, sig S) bool {
	start := time.Now()
	ok := s.inner.Verify(m, sig)
	recordOperation(s.metrics, s.name, OPERATION_VERIFY, start, nil)
	if !ok && s.metrics != nil {
		s.metrics.IncrementVerifyFailure(s.name)
	}
	return ok
}

// recordOperation reports one call. A nil collector disables reporting.
func recordOperation(metrics MetricsCollector, algorithm, operation string, start time.Time, err error) {
	if metrics == nil {
		return
	}
	metrics.RecordOperationLatency(algorithm, operation, time.Since(start))
	if err != nil {
		log.Warnf("%s %s failed: %v", algorithm, operation, err)
		metrics.IncrementError(algorithm, operation)
		return
	}
	metrics.IncrementOperation(algorithm, operation)
}
