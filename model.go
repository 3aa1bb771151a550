package usl

import (
	"fmt"
	"math"
)

// Model is a fitted Universal Scalability Law,
//
//	X(N) = λN / (1 + σ(N−1) + κN(N−1))
//
// where σ captures contention (serialization cost, linear in N), κ captures
// coherency delay (crosstalk cost, quadratic in N), and λ is the throughput
// of a single worker. A Model is an immutable value; every query below is a
// closed-form function of the three coefficients.
type Model struct {
	sigma  float64
	kappa  float64
	lambda float64
}

// NewModel builds a model directly from known coefficients, for what-if
// analysis and synthetic curves.
func NewModel(sigma, kappa, lambda float64) Model {
	return Model{sigma: sigma, kappa: kappa, lambda: lambda}
}

// Sigma returns σ, the contention coefficient.
func (m Model) Sigma() float64 { return m.sigma }

// Kappa returns κ, the coherency-delay coefficient.
func (m Model) Kappa() float64 { return m.kappa }

// Lambda returns λ, the ideal single-worker throughput.
func (m Model) Lambda() float64 { return m.lambda }

// ThroughputAtConcurrency predicts X(N), operations per second at N workers.
func (m Model) ThroughputAtConcurrency(n float64) float64 {
	return (m.lambda * n) / (1 + m.sigma*(n-1) + m.kappa*n*(n-1))
}

// LatencyAtConcurrency predicts R(N) = N/X(N), seconds per operation at N
// workers. This is Little's Law applied to the fitted curve, so
// R(N)·X(N) = N holds exactly.
func (m Model) LatencyAtConcurrency(n float64) float64 {
	return (1 + m.sigma*(n-1) + m.kappa*n*(n-1)) / m.lambda
}

// ConcurrencyAtThroughput inverts the throughput law exactly: the N on the
// rising branch of the curve at which X(N) = x. The inversion is the smaller
// positive root of
//
//	κx·N² + (σx − κx − λ)·N + x(1−σ) = 0
//
// (the larger root is the unphysical point past the peak). It fails with
// ErrUnreachableThroughput when x exceeds MaxThroughput.
func (m Model) ConcurrencyAtThroughput(x float64) (float64, error) {
	n, ok := smallestPositiveRoot(m.kappa*x, m.sigma*x-m.kappa*x-m.lambda, x*(1-m.sigma))
	if !ok {
		return 0, fmt.Errorf("%w: %v ops/sec", ErrUnreachableThroughput, x)
	}
	return n, nil
}

// LatencyAtThroughput predicts the seconds per operation when the system
// sustains throughput x, using the contention-bound form
//
//	R(X) = (1−σ) / (λ − σX).
//
// It fails with ErrUnreachableThroughput once σx reaches λ.
func (m Model) LatencyAtThroughput(x float64) (float64, error) {
	d := m.lambda - m.sigma*x
	if d <= 0 {
		return 0, fmt.Errorf("%w: %v ops/sec", ErrUnreachableThroughput, x)
	}
	return (1 - m.sigma) / d, nil
}

// ConcurrencyAtLatency returns the N at which the mean latency reaches r
// seconds: the smallest positive root of
//
//	κ·N² + (σ−κ)·N + (1 − σ − λr) = 0.
//
// It fails with ErrUnreachableLatency when r is below the achievable
// minimum.
func (m Model) ConcurrencyAtLatency(r float64) (float64, error) {
	n, ok := smallestPositiveRoot(m.kappa, m.sigma-m.kappa, 1-m.sigma-m.lambda*r)
	if !ok {
		return 0, fmt.Errorf("%w: %v sec/op", ErrUnreachableLatency, r)
	}
	return n, nil
}

// ThroughputAtLatency predicts the throughput the system delivers when the
// mean latency is r seconds.
func (m Model) ThroughputAtLatency(r float64) (float64, error) {
	n, err := m.ConcurrencyAtLatency(r)
	if err != nil {
		return 0, err
	}
	return n / r, nil
}

// MaxConcurrency is the point past which adding workers reduces throughput,
// ⌊√((1−σ)/κ)⌋, or +Inf for a limitless (κ = 0) model.
func (m Model) MaxConcurrency() float64 {
	if m.kappa == 0 {
		return math.Inf(1)
	}
	return math.Floor(math.Sqrt((1 - m.sigma) / m.kappa))
}

// MaxThroughput is the throughput at MaxConcurrency, or +Inf for a
// limitless model.
func (m Model) MaxThroughput() float64 {
	if m.kappa == 0 {
		return math.Inf(1)
	}
	return m.ThroughputAtConcurrency(m.MaxConcurrency())
}

// Efficiency is X(N)/(λN): 1.0 is perfect linear scaling, lower values
// measure what contention and coherency cost at N workers.
func (m Model) Efficiency(n float64) float64 {
	return m.ThroughputAtConcurrency(n) / (m.lambda * n)
}

// IsLimitless reports whether κ = 0, in which case throughput grows without
// bound; σ still throttles the rate of growth.
func (m Model) IsLimitless() bool { return m.kappa == 0 }

// IsContentionConstrained reports whether σ > κ: serialization dominates
// the scaling loss.
func (m Model) IsContentionConstrained() bool { return m.sigma > m.kappa }

// IsCoherencyConstrained reports whether κ > σ: crosstalk dominates the
// scaling loss. At σ = κ neither predicate holds.
func (m Model) IsCoherencyConstrained() bool { return m.kappa > m.sigma }

// smallestPositiveRoot solves a·x² + b·x + c = 0 and returns the smallest
// strictly positive real root, degrading to the linear solution when a = 0.
// Both inversion queries route through here so the branch-selection rule
// lives in exactly one place.
func smallestPositiveRoot(a, b, c float64) (float64, bool) {
	if a == 0 {
		if b == 0 {
			return 0, false
		}
		x := -c / b
		return x, x > 0
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	// Pair the roots as q/a and c/q to avoid cancellation in b ± √disc.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	if q == 0 {
		// b = 0 and disc = 0: a double root at zero.
		return 0, false
	}
	best, ok := math.Inf(1), false
	for _, x := range [2]float64{q / a, c / q} {
		if x > 0 && x < best {
			best, ok = x, true
		}
	}
	if !ok {
		return 0, false
	}
	return best, true
}
