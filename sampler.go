package usl

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Operation is a unit of work to drive under increasing concurrency.
// Implementations must be safe for concurrent use.
type Operation func(ctx context.Context) error

// SamplerConfig controls how the concurrency ladder is driven.
//
// Contention readings depend on GOMAXPROCS: with more workers than
// schedulable threads the sample measures the Go scheduler, not the
// operation. Pin MaxProcs to runtime.NumCPU() for honest coefficients.
type SamplerConfig struct {
	Duration time.Duration // measurement window per concurrency level
	Warmup   time.Duration // settle time before each window
	Levels   []int         // concurrency levels to sample
	MaxProcs int           // GOMAXPROCS pin for the run (0 = leave as-is)
}

// DefaultSamplerConfig spans 1..32 workers, five seconds per level.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		Duration: 5 * time.Second,
		Warmup:   time.Second,
		Levels:   []int{1, 2, 4, 8, 16, 32},
	}
}

// Sample drives op at each configured concurrency level and returns one
// measurement per level, ready for Fit. Cancelling the context stops the
// ladder and returns the context's error.
func Sample(ctx context.Context, op Operation, cfg SamplerConfig) ([]Measurement, error) {
	if cfg.MaxProcs > 0 {
		old := runtime.GOMAXPROCS(cfg.MaxProcs)
		defer runtime.GOMAXPROCS(old)
	}

	measurements := make([]Measurement, 0, len(cfg.Levels))
	for _, n := range cfg.Levels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := sampleLevel(ctx, op, n, cfg)
		if err != nil {
			return nil, fmt.Errorf("sampling N=%d: %w", n, err)
		}
		measurements = append(measurements, m)
	}
	return measurements, nil
}

func sampleLevel(ctx context.Context, op Operation, n int, cfg SamplerConfig) (Measurement, error) {
	if cfg.Warmup > 0 {
		warmupCtx, cancel := context.WithTimeout(ctx, cfg.Warmup)
		runWorkers(warmupCtx, op, n)
		cancel()
	}

	runCtx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	start := time.Now()
	completed := runWorkers(runCtx, op, n)
	elapsed := time.Since(start)

	if completed == 0 {
		return Measurement{}, fmt.Errorf("no operations completed in %v", elapsed)
	}
	return ConcurrencyAndThroughput(float64(n), float64(completed)/elapsed.Seconds())
}

// runWorkers loops op on n goroutines until ctx expires and returns the
// number of successful completions.
func runWorkers(ctx context.Context, op Operation, n int) int64 {
	var (
		wg        sync.WaitGroup
		completed int64
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				if op(ctx) == nil {
					atomic.AddInt64(&completed, 1)
				}
			}
		}()
	}
	wg.Wait()
	return atomic.LoadInt64(&completed)
}
