// Package report turns root-finding trajectories into convergence series
// for printing, comparison and log-log plotting.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
)

// Convergence is the per-iteration error series of one root-finding run.
type Convergence struct {
	Method    string
	X         float64   // The radicand
	B         int       // The root degree
	Estimates []float64 // Successive estimates vₖ
	Errors    []float64 // Absolute errors |vₖᵇ − x|
}

// Track builds the convergence record for a trajectory of estimates.
func Track(method string, x float64, b int, traj []float64) *Convergence {
	errs := make([]float64, len(traj))
	for i, v := range traj {
		errs[i] = math.Abs(math.Pow(v, float64(b)) - x)
	}
	return &Convergence{Method: method, X: x, B: b, Estimates: traj, Errors: errs}
}

// Final returns the last estimate and its error.
func (c *Convergence) Final() (estimate, err float64) {
	n := len(c.Estimates) - 1
	return c.Estimates[n], c.Errors[n]
}

// Best returns the estimate with the smallest error. For Newton this is the
// last one, but a bisection midpoint may pass closer to the root earlier.
func (c *Convergence) Best() (estimate, err float64) {
	i := floats.MinIdx(c.Errors)
	return c.Estimates[i], c.Errors[i]
}

// LogLog returns the (log₁₀ k, log₁₀ errₖ) series for k ≥ 1, the
// coordinates of a log-log convergence plot. Zero errors are clamped to the
// smallest positive float to keep the series finite.
func (c *Convergence) LogLog() (iters, errs []float64) {
	n := len(c.Estimates)
	if n < 2 {
		return nil, nil
	}
	iters = make([]float64, 0, n-1)
	errs = make([]float64, 0, n-1)
	for k := 1; k < n; k++ {
		e := c.Errors[k]
		if e == 0 {
			e = math.SmallestNonzeroFloat64
		}
		iters = append(iters, math.Log10(float64(k)))
		errs = append(errs, math.Log10(e))
	}
	return
}

// WriteCSV writes iteration, estimate and error rows for external plotting.
func (c *Convergence) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"iter", "estimate", "error"}); err != nil {
		return err
	}
	for i, v := range c.Estimates {
		rec := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(v, 'g', -1, 64),
			strconv.FormatFloat(c.Errors[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FprintTable writes an aligned comparison table of one or more runs.
func FprintTable(w io.Writer, runs ...*Convergence) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "method\titerations\testimate\terror\tworst")
	for _, c := range runs {
		est, e := c.Final()
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%.12g\t%.3e\t%.3e\n",
			c.Method, len(c.Estimates), est, e, floats.Max(c.Errors))
	}
	return tw.Flush()
}
