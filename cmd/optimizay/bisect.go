package main

import (
	"github.com/spf13/cobra"
)

var (
	bisectTrace bool
	bisectCSV   string
)

var bisectCmd = &cobra.Command{
	Use:   "bisect",
	Short: "Extract the b-th root by bisection on [0, x/2]",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSolver(bisectTrace)
		if err != nil {
			return err
		}
		return describe(cmd, "bisect", s.Bisect(), bisectCSV)
	},
}

func init() {
	bisectCmd.Flags().BoolVar(&bisectTrace, "trace", false, "log every iteration to stderr")
	bisectCmd.Flags().StringVar(&bisectCSV, "csv", "", "write the convergence series to a CSV file")
	rootCmd.AddCommand(bisectCmd)
}
