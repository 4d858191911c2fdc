package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thatcatcamp/colorstudio/internal/palette"
)

// Run starts the full-screen studio and blocks until the user quits or ctx
// is cancelled. Palette changes made elsewhere (the HTTP server) are picked
// up through a renderer subscribed on opts.State.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks until the event loop reads it, and Update itself mutates
	// the state, so deliver from a goroutine. The message carries nothing;
	// the model re-reads the state, which makes delivery order irrelevant.
	opts.State.Subscribe(palette.RendererFunc(func(palette.Snapshot) {
		go p.Send(snapshotMsg{})
	}))

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
