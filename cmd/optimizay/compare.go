package main

import (
	"fmt"

	"github.com/hahnec/optimizay/report"
	"github.com/hahnec/optimizay/root"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run Newton-Raphson and bisection side by side",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSolver(false)
		if err != nil {
			return err
		}

		// The solver is stateless, so both methods can run concurrently.
		var newton, bisect *root.Result
		var g errgroup.Group
		g.Go(func() error { newton = s.Newton(); return nil })
		g.Go(func() error { bisect = s.Bisect(); return nil })
		if err := g.Wait(); err != nil {
			return err
		}

		nc := report.Track("newton", flagX, flagB, newton.Trajectory)
		bc := report.Track("bisect", flagX, flagB, bisect.Trajectory)

		out := cmd.OutOrStdout()
		if err := report.FprintTable(out, nc, bc); err != nil {
			return err
		}
		fmt.Fprintf(out, "newton: %s, bisect: %s\n", newton.Status, bisect.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
