// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Saved palettes",
	Long:  "Save, list, reload and clear palettes (newest first, up to 30)",
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		printPalettes(s.store.LoadSaved(ctx), "No saved palettes")
	},
}

var savedAddCmd = &cobra.Command{
	Use:   "add [color...]",
	Short: "Save the current palette, or the given colors",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		if len(args) > 0 {
			p := make(colors.Palette, 0, len(args))
			for _, arg := range args {
				c, err := colors.ParseColor(arg)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				p = append(p, c)
			}
			s.state.Load(ctx, p)
		}

		current := s.state.Snapshot().Colors
		if err := s.store.PushSaved(ctx, current); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Palette saved: %s\n", formatPalette(current))
	},
}

var savedLoadCmd = &cobra.Command{
	Use:   "load <position>",
	Short: "Make a saved palette the current palette",
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

		saved := s.store.LoadSaved(ctx)
		if idx >= len(saved) {
			fmt.Fprintf(os.Stderr, "Error: %d saved palettes\n", len(saved))
			os.Exit(1)
		}

		s.state.Load(ctx, saved[idx])
		fmt.Println(themes.GenerateCSS(s.state.Snapshot()))
	},
}

var savedClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved palettes",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		if err := s.store.ClearSaved(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Saved palettes cleared")
	},
}

func init() {
	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedAddCmd)
	savedCmd.AddCommand(savedLoadCmd)
	savedCmd.AddCommand(savedClearCmd)
	rootCmd.AddCommand(savedCmd)
}
