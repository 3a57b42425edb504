package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("nbastat %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
}
