package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wheelview/internal/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the content sources a wheel can be filled from",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range source.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
