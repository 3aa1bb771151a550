package usl

import "errors"

// Every failure in this package is a deterministic function of its input;
// nothing is transient, nothing is worth retrying.
var (
	// ErrInvalidMeasurement reports a non-positive value passed to a
	// measurement constructor.
	ErrInvalidMeasurement = errors.New("measurement values must be positive")

	// ErrInsufficientData reports a fit attempted with no measurements.
	ErrInsufficientData = errors.New("no measurements to fit")

	// ErrDegenerateFit reports a singular regression system, e.g. every
	// measurement taken at the same concurrency.
	ErrDegenerateFit = errors.New("degenerate fit: singular regression system")

	// ErrUnreachableThroughput reports a throughput query beyond what the
	// fitted curve can deliver.
	ErrUnreachableThroughput = errors.New("throughput not reachable by model")

	// ErrUnreachableLatency reports a latency query below the model's
	// achievable minimum.
	ErrUnreachableLatency = errors.New("latency not reachable by model")
)
