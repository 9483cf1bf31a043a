package main

import (
	"github.com/spf13/cobra"
)

var (
	newtonTrace bool
	newtonCSV   string
)

var newtonCmd = &cobra.Command{
	Use:   "newton",
	Short: "Extract the b-th root by Newton-Raphson iteration",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSolver(newtonTrace)
		if err != nil {
			return err
		}
		return describe(cmd, "newton", s.Newton(), newtonCSV)
	},
}

func init() {
	newtonCmd.Flags().BoolVar(&newtonTrace, "trace", false, "log every iteration to stderr")
	newtonCmd.Flags().StringVar(&newtonCSV, "csv", "", "write the convergence series to a CSV file")
	rootCmd.AddCommand(newtonCmd)
}
