package usl

import "fmt"

// Advice is the advisor's verdict on an operating point.
type Advice string

const (
	AdviceGrow   Advice = "GROW"   // headroom left on the rising branch
	AdviceHold   Advice = "HOLD"   // near the knee, more workers buy little throughput
	AdviceShrink Advice = "SHRINK" // at or past the peak: more workers, less throughput
)

// Recommendation explains where an operating point sits on the fitted curve.
type Recommendation struct {
	Advice          Advice
	Concurrency     float64 // the operating point examined
	PeakConcurrency float64 // MaxConcurrency of the model (+Inf when limitless)
	Utilization     float64 // predicted X(N)/MaxThroughput (0 for limitless models)
	Efficiency      float64 // predicted X(N)/(λN)
	Retrograde      bool    // true once N ≥ peak
	Reason          string
}

// holdUtilization is the fraction of peak throughput past which adding
// workers mostly buys latency, not throughput.
const holdUtilization = 0.95

// Advise classifies running n workers against the fitted model.
//
// The point of the retrograde check is that scaling up past the peak is
// worse than doing nothing: the coherency term grows with N², so every
// added worker lowers total throughput. Limitless models (κ = 0) have no
// peak and never report a retrograde zone.
func Advise(m Model, n float64) Recommendation {
	rec := Recommendation{
		Concurrency:     n,
		PeakConcurrency: m.MaxConcurrency(),
		Efficiency:      m.Efficiency(n),
	}

	if m.IsLimitless() {
		rec.Advice = AdviceGrow
		rec.Reason = fmt.Sprintf(
			"κ = 0: no coherency peak; efficiency at N=%.0f is %.0f%%",
			n, rec.Efficiency*100)
		return rec
	}

	rec.Utilization = m.ThroughputAtConcurrency(n) / m.MaxThroughput()

	switch {
	case n >= rec.PeakConcurrency:
		rec.Retrograde = true
		rec.Advice = AdviceShrink
		rec.Reason = fmt.Sprintf(
			"N=%.0f is at or past the peak N_max=%.0f: additional workers reduce throughput",
			n, rec.PeakConcurrency)
	case rec.Utilization >= holdUtilization:
		rec.Advice = AdviceHold
		rec.Reason = fmt.Sprintf(
			"N=%.0f already delivers %.0f%% of peak throughput; growing toward N_max=%.0f buys little",
			n, rec.Utilization*100, rec.PeakConcurrency)
	default:
		rec.Advice = AdviceGrow
		rec.Reason = fmt.Sprintf(
			"N=%.0f delivers %.0f%% of peak throughput with headroom up to N_max=%.0f",
			n, rec.Utilization*100, rec.PeakConcurrency)
	}
	return rec
}
