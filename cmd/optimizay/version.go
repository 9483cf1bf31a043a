package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of the optimizay CLI.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of optimizay",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("optimizay version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
