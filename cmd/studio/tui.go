// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorstudio/internal/clipboard"
	"github.com/thatcatcamp/colorstudio/internal/config"
	"github.com/thatcatcamp/colorstudio/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive palette preview",
	Long: `Opens a full-screen preview of the current palette.

Keys: space random, c copy CSS, s save, g gradient, [ ] angle, a add,
x remove, p preset, 1-8 history, i enter a color, d PNG, q quit.

With --serve the HTTP server runs alongside on the same palette, so the
browser page and the terminal follow each other.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := mustOpenStudio(ctx)
		defer s.Close()

		// The screen belongs to bubbletea; keep log output in a file
		logPath := config.GetString("tui.log_file")
		_ = os.MkdirAll(filepath.Dir(logPath), 0755)
		if f, err := tea.LogToFile(logPath, "studio"); err == nil {
			defer f.Close()
		} else {
			log.SetOutput(io.Discard)
		}

		serveFlag, _ := cmd.Flags().GetBool("serve")
		if serveFlag {
			gin.SetMode(gin.ReleaseMode)
			gin.DefaultWriter = log.Writer()
			addr := ":" + config.GetString("server.http_port")
			go func() {
				if err := serve(ctx, s, addr); err != nil {
					log.Printf("Server error: %v", err)
				}
			}()
		}

		err := tui.Run(ctx, tui.Options{
			State:  s.state,
			Store:  s.store,
			Copier: clipboard.NewCopier(),
			Export: exportOptions(),
			Output: config.GetString("export.output"),
		})
		if err != nil && err != context.Canceled {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	tuiCmd.Flags().Bool("serve", false, "Also run the HTTP server on server.http_port")
	rootCmd.AddCommand(tuiCmd)
}
