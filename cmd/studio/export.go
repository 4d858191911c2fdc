// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorstudio/internal/clipboard"
	"github.com/thatcatcamp/colorstudio/internal/config"
	"github.com/thatcatcamp/colorstudio/internal/media"
	"github.com/thatcatcamp/colorstudio/internal/palette"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current palette",
	Long:  "Export the current palette (the most recent history entry) as CSS or PNG",
}

var exportCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the CSS background declaration",
	Run: func(cmd *cobra.Command, args []string) {
		vars, _ := cmd.Flags().GetBool("vars")
		copyText, _ := cmd.Flags().GetBool("copy")

		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		snap := exportSnapshot(cmd, s)
		css := themes.GenerateCSS(snap)
		if vars {
			css += "\n" + themes.GenerateCSSVariables(snap)
		}
		fmt.Println(css)

		if copyText {
			if _, err := clipboard.NewCopier().Copy(css); err != nil {
				log.Printf("Error copying to clipboard: %v", err)
			}
			fmt.Fprintln(os.Stderr, "Copied!")
		}
	},
}

var exportPNGCmd = &cobra.Command{
	Use:   "png [path]",
	Short: "Render the palette to a PNG file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		path := config.GetString("export.output")
		if len(args) == 1 {
			path = args[0]
		}

		if err := media.SavePNG(path, exportSnapshot(cmd, s), exportOptions()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Downloaded PNG %s\n", path)
	},
}

// exportSnapshot applies the --gradient and --angle flags to the current palette
func exportSnapshot(cmd *cobra.Command, s *studio) palette.Snapshot {
	snap := s.state.Snapshot()
	snap.Mode.Gradient, _ = cmd.Flags().GetBool("gradient")
	angle, _ := cmd.Flags().GetString("angle")
	snap.Mode.Angle = palette.ParseAngle(angle)
	return snap
}

func init() {
	for _, c := range []*cobra.Command{exportCSSCmd, exportPNGCmd} {
		c.Flags().Bool("gradient", false, "Render as a gradient")
		c.Flags().String("angle", "90", "Gradient angle in degrees")
	}
	exportCSSCmd.Flags().Bool("vars", false, "Also print CSS custom properties")
	exportCSSCmd.Flags().Bool("copy", false, "Copy the CSS to the clipboard")

	exportCmd.AddCommand(exportCSSCmd)
	exportCmd.AddCommand(exportPNGCmd)
	rootCmd.AddCommand(exportCmd)
}
