package usl

import (
	"fmt"
	"math"
)

// Fitter accumulates measurements into the running sums of a least-squares
// regression, so a model can be fitted without retaining the measurements
// themselves. The zero value is ready to use, and measurements may be added
// in any order; the sums are commutative.
//
// The fit linearizes the scalability law: with y = N/X it rearranges to the
// quadratic
//
//	y = a + b·N + c·N²,  a = (1−σ)/λ,  b = (σ−κ)/λ,  c = κ/λ
//
// so ordinary least squares on (N, y) recovers the coefficients exactly:
//
//	λ = 1/(a+b+c),  σ = λ(b+c),  κ = λc
type Fitter struct {
	count                     int
	sumN, sumN2, sumN3, sumN4 float64
	sumY, sumYN, sumYN2       float64
}

// Add folds one measurement into the regression sums.
func (f *Fitter) Add(m Measurement) {
	n := m.Concurrency()
	y := n / m.Throughput()
	n2 := n * n
	f.count++
	f.sumN += n
	f.sumN2 += n2
	f.sumN3 += n2 * n
	f.sumN4 += n2 * n2
	f.sumY += y
	f.sumYN += y * n
	f.sumYN2 += y * n2
}

// Model solves the normal equations over everything added so far and
// returns the fitted model.
//
// The system is fixed-shape 3×3, so it is solved directly with Cramer's
// rule. A numerically singular system (for example, every measurement at
// the same concurrency) fails with ErrDegenerateFit. Fewer than three
// distinct concurrencies that still solve are returned as-is, however
// unstable the coefficients; validating measurement quality is the
// caller's job.
func (f *Fitter) Model() (Model, error) {
	if f.count == 0 {
		return Model{}, ErrInsufficientData
	}

	// Normal equations for y ≈ a + b·N + c·N²:
	//
	//	[ n    ΣN   ΣN²  ] [a]   [ΣY  ]
	//	[ ΣN   ΣN²  ΣN³  ] [b] = [ΣYN ]
	//	[ ΣN²  ΣN³  ΣN⁴  ] [c]   [ΣYN²]
	s0 := float64(f.count)
	s1, s2, s3, s4 := f.sumN, f.sumN2, f.sumN3, f.sumN4
	t0, t1, t2 := f.sumY, f.sumYN, f.sumYN2

	det := s0*(s2*s4-s3*s3) - s1*(s1*s4-s3*s2) + s2*(s1*s3-s2*s2)

	// A collinear system cancels to rounding noise rather than exactly
	// zero, so compare against the matrix scale, not an absolute epsilon.
	if math.Abs(det) <= 1e-12*s0*s2*s4 {
		return Model{}, fmt.Errorf("%w: determinant %v", ErrDegenerateFit, det)
	}

	a := (t0*(s2*s4-s3*s3) - s1*(t1*s4-s3*t2) + s2*(t1*s3-s2*t2)) / det
	b := (s0*(t1*s4-s3*t2) - t0*(s1*s4-s3*s2) + s2*(s1*t2-t1*s2)) / det
	c := (s0*(s2*t2-t1*s3) - s1*(s1*t2-t1*s2) + t0*(s1*s3-s2*s2)) / det

	sum := a + b + c
	if sum == 0 {
		return Model{}, fmt.Errorf("%w: a+b+c = 0", ErrDegenerateFit)
	}

	lambda := 1 / sum
	return Model{
		sigma:  lambda * (b + c),
		kappa:  lambda * c,
		lambda: lambda,
	}, nil
}

// Fit builds a model from a batch of measurements. It fails with
// ErrInsufficientData on an empty batch.
func Fit(measurements []Measurement) (Model, error) {
	var f Fitter
	for _, m := range measurements {
		f.Add(m)
	}
	return f.Model()
}
