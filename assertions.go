package usl

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for the model property assertions.
type AssertionConfig struct {
	// Tolerance is the relative error allowed by identity checks
	// (Little's Law, inversion round-trips).
	Tolerance float64
}

// DefaultAssertionConfig allows one part per million, loose enough to
// absorb floating-point noise in the quadratic solves.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{Tolerance: 1e-6}
}

// AssertLittlesLaw verifies R(N)·X(N) = N at each concurrency.
//
// The latency and throughput predictions share the same denominator, so
// any disagreement means the model's arithmetic is broken, not the data.
func AssertLittlesLaw(t *testing.T, m Model, concurrencies []float64, cfg AssertionConfig) {
	t.Helper()

	for _, n := range concurrencies {
		got := m.LatencyAtConcurrency(n) * m.ThroughputAtConcurrency(n)
		if relativeError(n, got) > cfg.Tolerance {
			t.Errorf("Little's Law broken at N=%v: R·X = %v\n"+
				"The latency and throughput predictions disagree about the same point.",
				n, got)
		}
	}
	t.Logf("✓ Little's Law holds at %d concurrency levels", len(concurrencies))
}

// AssertThroughputInvertible verifies X(N(x)) = x for each throughput on
// the rising branch (x below MaxThroughput).
func AssertThroughputInvertible(t *testing.T, m Model, throughputs []float64, cfg AssertionConfig) {
	t.Helper()

	for _, x := range throughputs {
		n, err := m.ConcurrencyAtThroughput(x)
		if err != nil {
			t.Errorf("throughput %v should be reachable (max %v): %v",
				x, m.MaxThroughput(), err)
			continue
		}
		if got := m.ThroughputAtConcurrency(n); relativeError(x, got) > cfg.Tolerance {
			t.Errorf("inversion drift at X=%v: N(x)=%v but X(N(x))=%v", x, n, got)
		}
	}
	t.Logf("✓ throughput inversion is consistent at %d points", len(throughputs))
}

// AssertRegime verifies the classification predicates are mutually
// exclusive and that exactly one holds whenever σ ≠ κ.
func AssertRegime(t *testing.T, m Model) {
	t.Helper()

	contention, coherency := m.IsContentionConstrained(), m.IsCoherencyConstrained()
	if contention && coherency {
		t.Errorf("model claims both σ > κ and κ > σ (σ=%v, κ=%v)", m.Sigma(), m.Kappa())
	}
	if m.Sigma() != m.Kappa() && !contention && !coherency {
		t.Errorf("σ=%v ≠ κ=%v but neither regime is reported", m.Sigma(), m.Kappa())
	}
	if m.IsLimitless() != (m.Kappa() == 0) {
		t.Errorf("limitless must mean exactly κ = 0, got κ=%v", m.Kappa())
	}
}

func relativeError(want, got float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}
