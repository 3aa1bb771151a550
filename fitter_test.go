package usl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitEmpty(t *testing.T) {
	_, err := Fit(nil)
	require.ErrorIs(t, err, ErrInsufficientData)

	var f Fitter
	_, err = f.Model()
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestFitSingleConcurrencyIsDegenerate(t *testing.T) {
	// every point at the same concurrency: the normal equations are singular
	var ms []Measurement
	for _, x := range []float64{900, 950, 1000, 1050} {
		m, err := ConcurrencyAndThroughput(8, x)
		require.NoError(t, err)
		ms = append(ms, m)
	}

	_, err := Fit(ms)
	require.ErrorIs(t, err, ErrDegenerateFit)
}

func TestFitTwoConcurrenciesIsDegenerate(t *testing.T) {
	// two distinct concurrencies cannot determine a quadratic
	var ms []Measurement
	for _, p := range [][2]float64{{1, 950}, {2, 1800}} {
		m, err := ConcurrencyAndThroughput(p[0], p[1])
		require.NoError(t, err)
		ms = append(ms, m)
	}

	_, err := Fit(ms)
	require.ErrorIs(t, err, ErrDegenerateFit)
}

func TestFitterMatchesBatchFit(t *testing.T) {
	var (
		f  Fitter
		ms []Measurement
	)
	for _, p := range cisco {
		m, err := ConcurrencyAndThroughput(p[0], p[1])
		require.NoError(t, err)
		f.Add(m)
		ms = append(ms, m)
	}

	incremental, err := f.Model()
	require.NoError(t, err)
	batch, err := Fit(ms)
	require.NoError(t, err)

	assert.InDelta(t, batch.Sigma(), incremental.Sigma(), 1e-12)
	assert.InDelta(t, batch.Kappa(), incremental.Kappa(), 1e-12)
	assert.InDelta(t, batch.Lambda(), incremental.Lambda(), 1e-9)
}

func TestFitRecoversKnownModel(t *testing.T) {
	// points generated straight from a known curve fit back to the same
	// coefficients
	want := NewModel(0.03, 0.0007, 1000)

	var f Fitter
	for n := 1.0; n <= 32; n++ {
		m, err := ConcurrencyAndThroughput(n, want.ThroughputAtConcurrency(n))
		require.NoError(t, err)
		f.Add(m)
	}

	got, err := f.Model()
	require.NoError(t, err)

	assert.InEpsilon(t, want.Sigma(), got.Sigma(), 1e-6)
	// κ/λ is the smallest normal-equations coefficient and carries the most
	// rounding from the N⁴ sums
	assert.InEpsilon(t, want.Kappa(), got.Kappa(), 1e-5)
	assert.InEpsilon(t, want.Lambda(), got.Lambda(), 1e-6)
}
