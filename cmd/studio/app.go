// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/config"
	"github.com/thatcatcamp/colorstudio/internal/media"
	"github.com/thatcatcamp/colorstudio/internal/palette"
	"github.com/thatcatcamp/colorstudio/internal/store"
)

// studio is the shared state every command works against
type studio struct {
	state *palette.State
	store *store.PaletteStore
	close func() error
}

// openStudio reads config, opens the configured storage backend and
// restores the most recent history entry as the current palette.
func openStudio(ctx context.Context) (*studio, error) {
	if err := initConfig(); err != nil {
		return nil, err
	}

	backend, closeFn, err := store.OpenBackend(ctx, store.Options{
		Driver:      config.GetString("storage.driver"),
		Path:        config.GetString("storage.path"),
		RedisAddr:   config.GetString("storage.redis_addr"),
		RedisPrefix: config.GetString("storage.redis_prefix"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	paletteStore := store.NewPaletteStore(backend)

	initial := colors.Palette{configColor("palette.default_color", palette.DefaultColor)}
	if history := paletteStore.LoadHistory(ctx); len(history) > 0 {
		initial = history[0]
	}

	state := palette.New(
		palette.WithHistory(paletteStore),
		palette.WithInitial(initial),
		palette.WithFallback(configColor("palette.fallback_color", palette.FallbackColor)),
	)

	return &studio{state: state, store: paletteStore, close: closeFn}, nil
}

// mustOpenStudio is openStudio for one-shot commands
func mustOpenStudio(ctx context.Context) *studio {
	s, err := openStudio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

func (s *studio) Close() {
	if err := s.close(); err != nil {
		log.Printf("Error closing storage: %v", err)
	}
}

// configColor reads a color setting, ignoring values that do not parse
func configColor(key string, fallback colors.Color) colors.Color {
	raw := config.GetString(key)
	if raw == "" {
		return fallback
	}
	c, ok := colors.NormalizeHex(raw)
	if !ok {
		log.Printf("Ignoring invalid %s %q", key, raw)
		return fallback
	}
	return c
}

func exportOptions() media.ExportOptions {
	opts := media.DefaultExportOptions()
	if w := config.GetInt("export.width"); w > 0 {
		opts.Width = w
	}
	if h := config.GetInt("export.height"); h > 0 {
		opts.Height = h
	}
	opts.Watermark = config.GetString("export.watermark")
	return opts
}

// parseIndex turns a 1-based position from the command line into an index
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q, expected a number starting at 1", arg)
	}
	return n - 1, nil
}

func printPalettes(list []colors.Palette, empty string) {
	if len(list) == 0 {
		fmt.Println(empty)
		return
	}
	for i, p := range list {
		fmt.Printf("%2d  %s\n", i+1, formatPalette(p))
	}
}

func formatPalette(p colors.Palette) string {
	return strings.Join(p.Strings(), " ")
}
