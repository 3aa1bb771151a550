package usl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementConstructorsAgree(t *testing.T) {
	// any two of (N, X, R) must land on the same canonical pair
	for _, c := range [][2]float64{
		{1, 955.16},
		{3, 2688.01},
		{32, 12074.39},
		{0.5, 10},
	} {
		n, x := c[0], c[1]
		r := n / x

		direct, err := ConcurrencyAndThroughput(n, x)
		require.NoError(t, err)
		fromLatency, err := ConcurrencyAndLatency(n, r)
		require.NoError(t, err)
		fromThroughput, err := ThroughputAndLatency(x, r)
		require.NoError(t, err)

		assert.InEpsilon(t, direct.Concurrency(), fromLatency.Concurrency(), 1e-12)
		assert.InEpsilon(t, direct.Throughput(), fromLatency.Throughput(), 1e-12)
		assert.InEpsilon(t, direct.Concurrency(), fromThroughput.Concurrency(), 1e-12)
		assert.InEpsilon(t, direct.Throughput(), fromThroughput.Throughput(), 1e-12)

		assert.InEpsilon(t, r, direct.Latency(), 1e-12)
	}
}

func TestMeasurementRejectsNonPositive(t *testing.T) {
	for name, build := range map[string]func() (Measurement, error){
		"zero concurrency":     func() (Measurement, error) { return ConcurrencyAndThroughput(0, 10) },
		"negative throughput":  func() (Measurement, error) { return ConcurrencyAndThroughput(4, -1) },
		"zero latency":         func() (Measurement, error) { return ConcurrencyAndLatency(4, 0) },
		"negative concurrency": func() (Measurement, error) { return ConcurrencyAndLatency(-4, 0.1) },
		"zero throughput":      func() (Measurement, error) { return ThroughputAndLatency(0, 0.1) },
		"negative latency":     func() (Measurement, error) { return ThroughputAndLatency(10, -0.1) },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := build()
			require.ErrorIs(t, err, ErrInvalidMeasurement)
		})
	}
}
