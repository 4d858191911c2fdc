// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Color Studio - palettes, gradients and contrast from the terminal",
	Long: `Color Studio builds color palettes and gradients, checks text contrast,
and exports the result as CSS or PNG.

Run "studio tui" for the interactive preview or "studio server start" for
the browser page and JSON API. History and saved palettes are shared by
every command.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
