package usl

import "fmt"

// Measurement is a single observation of a system under load, normalized to
// a canonical (concurrency, throughput) pair.
//
// A measurement can be built from any two of concurrency (N), throughput (X)
// and latency (R); the missing quantity follows from Little's Law, N = X·R.
// Measurements are immutable once constructed.
type Measurement struct {
	concurrency float64
	throughput  float64
}

// ConcurrencyAndThroughput builds a measurement from the number of
// concurrent workers and the observed throughput, in operations per second.
func ConcurrencyAndThroughput(n, x float64) (Measurement, error) {
	if n <= 0 {
		return Measurement{}, fmt.Errorf("%w: concurrency %v", ErrInvalidMeasurement, n)
	}
	if x <= 0 {
		return Measurement{}, fmt.Errorf("%w: throughput %v", ErrInvalidMeasurement, x)
	}
	return Measurement{concurrency: n, throughput: x}, nil
}

// ConcurrencyAndLatency builds a measurement from the number of concurrent
// workers and the mean latency per operation, in seconds.
func ConcurrencyAndLatency(n, r float64) (Measurement, error) {
	if n <= 0 {
		return Measurement{}, fmt.Errorf("%w: concurrency %v", ErrInvalidMeasurement, n)
	}
	if r <= 0 {
		return Measurement{}, fmt.Errorf("%w: latency %v", ErrInvalidMeasurement, r)
	}
	return Measurement{concurrency: n, throughput: n / r}, nil
}

// ThroughputAndLatency builds a measurement from the observed throughput and
// the mean latency per operation, in seconds.
func ThroughputAndLatency(x, r float64) (Measurement, error) {
	if x <= 0 {
		return Measurement{}, fmt.Errorf("%w: throughput %v", ErrInvalidMeasurement, x)
	}
	if r <= 0 {
		return Measurement{}, fmt.Errorf("%w: latency %v", ErrInvalidMeasurement, r)
	}
	return Measurement{concurrency: x * r, throughput: x}, nil
}

// Concurrency returns N, the number of concurrent workers.
func (m Measurement) Concurrency() float64 { return m.concurrency }

// Throughput returns X, in operations per second.
func (m Measurement) Throughput() float64 { return m.throughput }

// Latency returns R = N/X, the seconds per operation implied by Little's Law.
func (m Measurement) Latency() float64 { return m.concurrency / m.throughput }
