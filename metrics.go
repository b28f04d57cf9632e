package go_pkcrypto

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector defines the interface for collecting operation metrics.
// This interface allows applications to plug in custom metrics implementations
// (e.g., Prometheus, StatsD, custom logging) when running the algorithms
// behind InstrumentEncrypter or InstrumentSigner.
//
// All methods are safe for concurrent use and should be non-blocking.
type MetricsCollector interface {
	// IncrementOperation counts one completed operation.
	// algorithm is one of the ALGORITHM_* constants (or a caller-chosen
	// name), operation one of the OPERATION_* constants.
	IncrementOperation(algorithm, operation string)

	// IncrementError counts an operation that returned an error.
	IncrementError(algorithm, operation string)

	// IncrementVerifyFailure counts a Verify call that returned false.
	IncrementVerifyFailure(algorithm string)

	// RecordOperationLatency records how long an operation took.
	RecordOperationLatency(algorithm, operation string, duration time.Duration)
}

// InMemoryMetrics provides a simple in-memory implementation of MetricsCollector.
// Suitable for development, testing, and the CLI's --metrics summary.
//
// All operations are thread-safe using atomic operations and minimal locking.
type InMemoryMetrics struct {
	countersMu sync.RWMutex
	operations map[operationKey]*uint64
	errors     map[operationKey]*uint64

	verifyFailuresMu sync.RWMutex
	verifyFailures   map[string]*uint64

	latencyMu sync.RWMutex
	latency   map[operationKey]*latencyStats

	total uint64
}

type operationKey struct {
	algorithm string
	operation string
}

// latencyStats tracks latency statistics for one operation
type latencyStats struct {
	count      uint64
	totalNanos uint64
	minNanos   uint64
	maxNanos   uint64
}

// NewInMemoryMetrics creates a new in-memory metrics collector.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		operations:     make(map[operationKey]*uint64),
		errors:         make(map[operationKey]*uint64),
		verifyFailures: make(map[string]*uint64),
		latency:        make(map[operationKey]*latencyStats),
	}
}

// counter returns the counter for key, creating it on first use.
func counter(mu *sync.RWMutex, m map[operationKey]*uint64, key operationKey) *uint64 {
	mu.RLock()
	c := m[key]
	mu.RUnlock()
	if c != nil {
		return c
	}

	mu.Lock()
	defer mu.Unlock()
	if c = m[key]; c == nil {
		c = new(uint64)
		m[key] = c
	}
	return c
}

// IncrementOperation increments the counter for the algorithm and operation.
func (m *InMemoryMetrics) IncrementOperation(algorithm, operation string) {
	atomic.AddUint64(counter(&m.countersMu, m.operations, operationKey{algorithm, operation}), 1)
	atomic.AddUint64(&m.total, 1)
}

// IncrementError increments the error counter for the algorithm and operation.
func (m *InMemoryMetrics) IncrementError(algorithm, operation string) {
	atomic.AddUint64(counter(&m.countersMu, m.errors, operationKey{algorithm, operation}), 1)
}

// IncrementVerifyFailure increments the rejected signature counter.
func (m *InMemoryMetrics) IncrementVerifyFailure(algorithm string) {
	m.verifyFailuresMu.RLock()
	c := m.verifyFailures[algorithm]
	m.verifyFailuresMu.RUnlock()
	if c == nil {
		m.verifyFailuresMu.Lock()
		if c = m.verifyFailures[algorithm]; c == nil {
			c = new(uint64)
			m.verifyFailures[algorithm] = c
		}
		m.verifyFailuresMu.Unlock()
	}
	atomic.AddUint64(c, 1)
}

// RecordOperationLatency records the latency for the algorithm and operation.
func (m *InMemoryMetrics) RecordOperationLatency(algorithm, operation string, duration time.Duration) {
	nanos := uint64(duration.Nanoseconds())
	key := operationKey{algorithm, operation}

	m.latencyMu.Lock()
	defer m.latencyMu.Unlock()

	stats := m.latency[key]
	if stats == nil {
		stats = &latencyStats{
			minNanos: nanos,
			maxNanos: nanos,
		}
		m.latency[key] = stats
	}

	stats.count++
	stats.totalNanos += nanos

	if nanos < stats.minNanos {
		stats.minNanos = nanos
	}
	if nanos > stats.maxNanos {
		stats.maxNanos = nanos
	}
}

// Getter methods for programmatic access to metrics

// Operations returns the number of completed operations.
func (m *InMemoryMetrics) Operations(algorithm, operation string) uint64 {
	m.countersMu.RLock()
	defer m.countersMu.RUnlock()
	if c := m.operations[operationKey{algorithm, operation}]; c != nil {
		return atomic.LoadUint64(c)
	}
	return 0
}

// TotalOperations returns the number of completed operations across all
// algorithms.
func (m *InMemoryMetrics) TotalOperations() uint64 {
	return atomic.LoadUint64(&m.total)
}

// Errors returns the number of operations that returned an error.
func (m *InMemoryMetrics) Errors(algorithm, operation string) uint64 {
	m.countersMu.RLock()
	defer m.countersMu.RUnlock()
	if c := m.errors[operationKey{algorithm, operation}]; c != nil {
		return atomic.LoadUint64(c)
	}
	return 0
}

// VerifyFailures returns the number of rejected signatures.
func (m *InMemoryMetrics) VerifyFailures(algorithm string) uint64 {
	m.verifyFailuresMu.RLock()
	defer m.verifyFailuresMu.RUnlock()
	if c := m.verifyFailures[algorithm]; c != nil {
		return atomic.LoadUint64(c)
	}
	return 0
}

// AvgLatency returns the average latency for an operation.
// Returns 0 if no measurements have been recorded.
func (m *InMemoryMetrics) AvgLatency(algorithm, operation string) time.Duration {
	m.latencyMu.RLock()
	defer m.latencyMu.RUnlock()

	stats := m.latency[operationKey{algorithm, operation}]
	if stats == nil || stats.count == 0 {
		return 0
	}

	return time.Duration(stats.totalNanos / stats.count)
}

// MinLatency returns the minimum latency for an operation.
// Returns 0 if no measurements have been recorded.
func (m *InMemoryMetrics) MinLatency(algorithm, operation string) time.Duration {
	m.latencyMu.RLock()
	defer m.latencyMu.RUnlock()

	stats := m.latency[operationKey{algorithm, operation}]
	if stats == nil {
		return 0
	}

	return time.Duration(stats.minNanos)
}

// MaxLatency returns the maximum latency for an operation.
// Returns 0 if no measurements have been recorded.
func (m *InMemoryMetrics) MaxLatency(algorithm, operation string) time.Duration {
	m.latencyMu.RLock()
	defer m.latencyMu.RUnlock()

	stats := m.latency[operationKey{algorithm, operation}]
	if stats == nil {
		return 0
	}

	return time.Duration(stats.maxNanos)
}

// Reset clears all metrics. Useful for testing.
func (m *InMemoryMetrics) Reset() {
	m.countersMu.Lock()
	m.operations = make(map[operationKey]*uint64)
	m.errors = make(map[operationKey]*uint64)
	m.countersMu.Unlock()

	m.verifyFailuresMu.Lock()
	m.verifyFailures = make(map[string]*uint64)
	m.verifyFailuresMu.Unlock()

	m.latencyMu.Lock()
	m.latency = make(map[operationKey]*latencyStats)
	m.latencyMu.Unlock()

	atomic.StoreUint64(&m.total, 0)
}
