// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recent palettes",
	Long:  "List, reload and clear the most recent palettes (newest first, up to 8)",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent palettes",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		printPalettes(s.store.LoadHistory(ctx), "No history yet")
	},
}

var historyLoadCmd = &cobra.Command{
	Use:   "load <position>",
	Short: "Make a history entry the current palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		idx, err := parseIndex(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		history := s.store.LoadHistory(ctx)
		if idx >= len(history) {
			fmt.Fprintf(os.Stderr, "Error: history has %d entries\n", len(history))
			os.Exit(1)
		}

		s.state.Load(ctx, history[idx])
		fmt.Println(themes.GenerateCSS(s.state.Snapshot()))
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all recent palettes",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		if err := s.store.ClearHistory(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared")
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyLoadCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
