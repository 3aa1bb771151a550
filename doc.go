// Package usl fits and queries the Universal Scalability Law (USL), the
// capacity-planning model
//
//	X(N) = λN / (1 + σ(N−1) + κN(N−1))
//
// Where:
//   - N: number of concurrent workers driving the system
//   - X: throughput, completed operations per second
//   - λ (lambda): ideal single-worker throughput
//   - σ (sigma): contention coefficient (serialization, lock waiting)
//   - κ (kappa): coherency coefficient (crosstalk, cache/consistency traffic)
//
// Feed it empirical (concurrency, throughput) observations and it derives
// the three coefficients by least-squares regression, then answers every
// directional question about the curve in closed form: throughput or
// latency at a concurrency, concurrency at a throughput or latency, the
// peak, and which coefficient dominates the scaling loss.
//
// # Quick Start
//
// Fit a model from measurements and interrogate it:
//
//	var f usl.Fitter
//	for _, p := range points {
//	    m, err := usl.ConcurrencyAndThroughput(p.N, p.X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    f.Add(m)
//	}
//
//	model, err := f.Model()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("contention (σ): %.4f\n", model.Sigma())
//	fmt.Printf("coherency  (κ): %.4f\n", model.Kappa())
//	fmt.Printf("peak: %.0f workers at %.0f ops/sec\n",
//	    model.MaxConcurrency(), model.MaxThroughput())
//
// Measurements normalize to (concurrency, throughput) internally; any two
// of concurrency, throughput and latency will do, the third follows from
// Little's Law (N = X·R).
//
// # Gathering Measurements
//
// Sample runs an Operation at a ladder of concurrency levels and emits one
// Measurement per level:
//
//	ms, err := usl.Sample(ctx, op, usl.DefaultSamplerConfig())
//
// CRITICAL: contention readings depend on GOMAXPROCS. With more workers
// than schedulable threads you measure Go scheduler context switching, not
// application lock contention. Pin SamplerConfig.MaxProcs to
// runtime.NumCPU() for realistic coefficients.
//
// # Reading the Fit
//
// A fitted model falls into one of three regimes:
//   - contention-constrained (σ > κ): serialization dominates; shorten
//     critical sections before buying hardware
//   - coherency-constrained (κ > σ): crosstalk dominates; adding nodes past
//     the peak actively reduces throughput
//   - limitless (κ = 0): no finite peak; throughput keeps growing, throttled
//     only by σ
//
// Advise classifies a concrete operating point against the curve and warns
// when it is in the retrograde zone (N past the peak).
package usl
