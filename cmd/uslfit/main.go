package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/alexshd/usl"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type opts struct {
	latency  bool
	jsonPath string
	predict  []float64
}

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "uslfit FILE",
		Short: "Fit the Universal Scalability Law to load measurements",
		Long: `uslfit reads CSV rows of (concurrency, throughput) measurements, fits the
Universal Scalability Law, and reports the contention (σ), coherency (κ)
and ideal-throughput (λ) coefficients together with the predicted peak and
the scaling regime.

With --latency the second column is read as seconds per operation instead
of operations per second; throughput then follows from Little's Law.

Examples:
  uslfit measurements.csv
  uslfit --latency --predict 48,64 measurements.csv
  uslfit --json fit.json measurements.csv`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args[0])
		},
	}

	root.Flags().BoolVar(&o.latency, "latency", false,
		"second CSV column is latency (sec/op), not throughput")
	root.Flags().StringVar(&o.jsonPath, "json", "",
		"also write the fit to a JSON file")
	root.Flags().Float64SliceVar(&o.predict, "predict", nil,
		"extra concurrency levels to predict")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(o opts, path string) error {
	measurements, err := readMeasurements(path, o.latency)
	if err != nil {
		return err
	}
	slog.Info("loaded measurements", "file", path, "points", len(measurements))

	model, err := usl.Fit(measurements)
	if err != nil {
		return fmt.Errorf("fitting %s: %w", path, err)
	}

	report(os.Stdout, model, measurements, o.predict)

	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, model, len(measurements)); err != nil {
			return err
		}
		slog.Info("wrote fit", "file", o.jsonPath)
	}
	return nil
}

func readMeasurements(path string, latency bool) ([]usl.Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	var measurements []usl.Measurement
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		line++

		n, errN := strconv.ParseFloat(record[0], 64)
		v, errV := strconv.ParseFloat(record[1], 64)
		if errN != nil || errV != nil {
			if line == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("%s line %d: non-numeric row %q", path, line, record)
		}

		var m usl.Measurement
		if latency {
			m, err = usl.ConcurrencyAndLatency(n, v)
		} else {
			m, err = usl.ConcurrencyAndThroughput(n, v)
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		measurements = append(measurements, m)
	}
	return measurements, nil
}

func report(w io.Writer, m usl.Model, measurements []usl.Measurement, predict []float64) {
	fmt.Fprintf(w, "σ (contention)        %.6g\n", m.Sigma())
	fmt.Fprintf(w, "κ (coherency)         %.6g\n", m.Kappa())
	fmt.Fprintf(w, "λ (ideal throughput)  %.6g ops/sec\n", m.Lambda())
	fmt.Fprintf(w, "regime                %s\n", regime(m))
	if !m.IsLimitless() {
		fmt.Fprintf(w, "peak                  %.0f workers ≈ %.6g ops/sec\n",
			m.MaxConcurrency(), m.MaxThroughput())
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "N\tmeasured\tpredicted\tresidual\t")
	for _, meas := range measurements {
		pred := m.ThroughputAtConcurrency(meas.Concurrency())
		resid := 100 * (pred - meas.Throughput()) / meas.Throughput()
		fmt.Fprintf(tw, "%.0f\t%.2f\t%.2f\t%+.2f%%\t\n",
			meas.Concurrency(), meas.Throughput(), pred, resid)
	}
	for _, n := range predict {
		fmt.Fprintf(tw, "%.0f\t-\t%.2f\t-\t\n", n, m.ThroughputAtConcurrency(n))
	}
	tw.Flush()
}

func regime(m usl.Model) string {
	switch {
	case m.IsLimitless():
		return "limitless (κ = 0)"
	case m.IsCoherencyConstrained():
		return "coherency-constrained (κ > σ)"
	case m.IsContentionConstrained():
		return "contention-constrained (σ > κ)"
	default:
		return "balanced (σ = κ)"
	}
}

// fitReport is the JSON shape written by --json. Peak fields are omitted
// for limitless models instead of emitting +Inf, which JSON cannot carry.
type fitReport struct {
	Sigma          float64 `json:"sigma"`
	Kappa          float64 `json:"kappa"`
	Lambda         float64 `json:"lambda"`
	Limitless      bool    `json:"limitless"`
	MaxConcurrency float64 `json:"max_concurrency,omitempty"`
	MaxThroughput  float64 `json:"max_throughput,omitempty"`
	Regime         string  `json:"regime"`
	Points         int     `json:"points"`
}

func writeJSON(path string, m usl.Model, points int) error {
	rep := fitReport{
		Sigma:     m.Sigma(),
		Kappa:     m.Kappa(),
		Lambda:    m.Lambda(),
		Limitless: m.IsLimitless(),
		Regime:    regime(m),
		Points:    points,
	}
	if !m.IsLimitless() {
		rep.MaxConcurrency = m.MaxConcurrency()
		rep.MaxThroughput = m.MaxThroughput()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
