package main

import (
	"fmt"
	"os"

	"github.com/hahnec/optimizay/report"
	"github.com/hahnec/optimizay/root"
	"github.com/spf13/cobra"
)

var (
	flagX       float64
	flagB       int
	flagTol     float64
	flagMaxIter int
)

var rootCmd = &cobra.Command{
	Use:   "optimizay",
	Short: "optimizay computes b-th roots by Newton-Raphson and bisection",
	Long: `optimizay derives the b-th root of a positive number from a squared-loss
objective, either by Newton-Raphson iteration or by bisection, and reports
the convergence behavior of each run.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagX, "x", 144, "radicand (must be positive)")
	pf.IntVar(&flagB, "b", 2, "root degree (positive integer)")
	pf.Float64Var(&flagTol, "tol", 1e-9, "convergence tolerance")
	pf.IntVar(&flagMaxIter, "max-iter", 100, "iteration cap")
}

func newSolver(trace bool) (*root.Solver, error) {
	logger := &root.Logger{Level: root.LogNoop, Msg: os.Stderr}
	if trace {
		logger.Level = root.LogTrace
	}
	p := root.Problem{
		X:    flagX,
		B:    flagB,
		Stop: root.Termination{MaxIterations: flagMaxIter, Tolerance: flagTol},
	}
	return p.New(logger)
}

func describe(cmd *cobra.Command, method string, r *root.Result, csvPath string) error {
	c := report.Track(method, flagX, flagB, r.Trajectory)
	out := cmd.OutOrStdout()
	if err := report.FprintTable(out, c); err != nil {
		return err
	}
	fmt.Fprintf(out, "status: %s\n", r.Status)

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := c.WriteCSV(f); err != nil {
			return err
		}
	}

	if !r.OK {
		return fmt.Errorf("%s did not converge: %s", method, r.Status)
	}
	return nil
}
