package usl

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestSampleProducesMeasurements verifies the ladder emits one measurement
// per configured level.
func TestSampleProducesMeasurements(t *testing.T) {
	op := func(ctx context.Context) error { return nil }

	cfg := SamplerConfig{
		Duration: 200 * time.Millisecond,
		Warmup:   50 * time.Millisecond,
		Levels:   []int{1, 2},
	}

	ms, err := Sample(context.Background(), op, cfg)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("expected 2 measurements, got %d", len(ms))
	}

	for i, want := range []float64{1, 2} {
		if ms[i].Concurrency() != want {
			t.Errorf("measurement %d: concurrency %v, want %v", i, ms[i].Concurrency(), want)
		}
		if ms[i].Throughput() <= 0 {
			t.Errorf("measurement %d: non-positive throughput %v", i, ms[i].Throughput())
		}
		t.Logf("N=%v: %.0f ops/sec", ms[i].Concurrency(), ms[i].Throughput())
	}
}

// TestSampleAllFailures verifies a level with zero completions is an error,
// not a zero-throughput measurement.
func TestSampleAllFailures(t *testing.T) {
	boom := errors.New("boom")
	op := func(ctx context.Context) error { return boom }

	cfg := SamplerConfig{Duration: 100 * time.Millisecond, Levels: []int{1}}
	if _, err := Sample(context.Background(), op, cfg); err == nil {
		t.Fatal("expected an error when every operation fails")
	}
}

// TestSampleCancelled verifies the ladder stops on context cancellation.
func TestSampleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	op := func(ctx context.Context) error { return nil }
	if _, err := Sample(ctx, op, DefaultSamplerConfig()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
