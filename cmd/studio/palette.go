// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/media"
	"github.com/thatcatcamp/colorstudio/internal/palette"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <color>",
	Short: "Print a color in canonical #rrggbb form",
	Long:  "Accepts hex with or without '#', 3-digit shorthand, rgb() and hsl().",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := colors.ParseColor(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(c)
	},
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <background> [foreground]",
	Short: "Show the WCAG contrast ratio between two colors",
	Long: `Prints the contrast ratio and whether it passes WCAG AA and AAA.
Without a foreground the readable text color for the background is used.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		bg, err := colors.ParseColor(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: background: %v\n", err)
			os.Exit(1)
		}

		fg := colors.PickReadableTextColor(bg)
		if len(args) == 2 {
			fg, err = colors.ParseColor(args[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: foreground: %v\n", err)
				os.Exit(1)
			}
		}

		ratio := colors.ContrastRatio(bg, fg)
		fmt.Printf("%s on %s: %.2f:1\n", fg, bg, ratio)
		fmt.Printf("  AA  normal text: %s\n", passFail(ratio >= colors.ReadableContrast))
		fmt.Printf("  AA  large text:  %s\n", passFail(ratio >= 3))
		fmt.Printf("  AAA normal text: %s\n", passFail(ratio >= 7))
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random palette and make it current",
	Run: func(cmd *cobra.Command, args []string) {
		gradient, _ := cmd.Flags().GetBool("gradient")
		angle, _ := cmd.Flags().GetString("angle")

		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		s.state.SetMode(palette.Mode{Gradient: gradient, Angle: palette.ParseAngle(angle)})
		p := s.state.Randomize(ctx)

		fmt.Println(formatPalette(p))
		fmt.Println(themes.GenerateCSS(s.state.Snapshot()))
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in preset colors",
	Run: func(cmd *cobra.Command, args []string) {
		for i, p := range themes.ListPresets() {
			fmt.Printf("%2d  %-10s %s\n", i+1, p.Name, p.Color)
		}
	},
}

var presetsApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Make a preset the current palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		preset := themes.GetPreset(args[0])
		if preset == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", args[0])
			os.Exit(1)
		}

		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		s.state.ApplyPreset(ctx, preset.Color)
		fmt.Printf("Applied %s (%s)\n", preset.Name, preset.Color)
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Build a palette from the dominant colors of a local image",
	Long: `Reads a PNG, JPEG, GIF or WebP file and prints its most common colors.
With --apply the result becomes the current palette.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		apply, _ := cmd.Flags().GetBool("apply")

		p, err := media.ExtractPaletteFile(args[0], count)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(formatPalette(p))

		if !apply {
			return
		}

		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		s.state.Load(ctx, p)
		fmt.Println(themes.GenerateCSS(s.state.Snapshot()))
	},
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func init() {
	randomCmd.Flags().Bool("gradient", false, "Generate 2-3 colors for a gradient")
	randomCmd.Flags().String("angle", "90", "Gradient angle in degrees")

	presetsCmd.AddCommand(presetsApplyCmd)

	extractCmd.Flags().Int("count", 5, "Number of colors to extract (max 8)")
	extractCmd.Flags().Bool("apply", false, "Make the extracted palette current")

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(extractCmd)
}
