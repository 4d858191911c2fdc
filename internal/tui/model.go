// Package tui is the terminal front end: a live preview of the palette with
// single-key commands.
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thatcatcamp/colorstudio/internal/clipboard"
	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/media"
	"github.com/thatcatcamp/colorstudio/internal/palette"
	"github.com/thatcatcamp/colorstudio/internal/store"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

const (
	noticeDuration = 1600 * time.Millisecond
	angleStep      = 15
)

// Copier puts text on the clipboard
type Copier interface {
	Copy(text string) (clipboard.Method, error)
}

// Options wires the model to the rest of the studio
type Options struct {
	State  *palette.State
	Store  *store.PaletteStore
	Copier Copier
	Export media.ExportOptions
	Output string // PNG path for downloads
}

type (
	// snapshotMsg tells the model the palette changed somewhere
	snapshotMsg struct{}
	// noticeMsg is the result of a detached task
	noticeMsg string
	// clearNoticeMsg expires the notice with the same id
	clearNoticeMsg int
)

// Model is the bubbletea model for the studio
type Model struct {
	ctx    context.Context
	state  *palette.State
	store  *store.PaletteStore
	copier Copier
	export media.ExportOptions
	output string

	keys  keyMap
	help  help.Model
	input textinput.Model

	inputActive bool
	snap        palette.Snapshot
	history     []colors.Palette
	savedCount  int
	presetIdx   int
	notice      string
	noticeID    int
	width       int
}

// NewModel creates a model over opts.State
func NewModel(ctx context.Context, opts Options) *Model {
	in := textinput.New()
	in.Placeholder = "#ff6b6b, rgb(255, 107, 107), hsl(0, 100%, 71%)"
	in.CharLimit = 64
	in.Prompt = "color> "

	output := opts.Output
	if output == "" {
		output = media.DefaultFilename
	}

	m := &Model{
		ctx:    ctx,
		state:  opts.State,
		store:  opts.Store,
		copier: opts.Copier,
		export: opts.Export,
		output: output,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  in,
		width:  80,
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.refresh()
		return m, nil

	case noticeMsg:
		m.refresh()
		return m, m.setNotice(string(msg))

	case clearNoticeMsg:
		if int(msg) == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.inputActive {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Random):
		m.state.Randomize(m.ctx)

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCSS()

	case key.Matches(msg, m.keys.Save):
		return m, m.save()

	case key.Matches(msg, m.keys.Download):
		return m, m.download()

	case key.Matches(msg, m.keys.Gradient):
		mode := m.state.Mode()
		mode.Gradient = !mode.Gradient
		m.state.SetMode(mode)

	case key.Matches(msg, m.keys.AngleDn):
		m.rotate(-angleStep)

	case key.Matches(msg, m.keys.AngleUp):
		m.rotate(angleStep)

	case key.Matches(msg, m.keys.Add):
		// A random color is always valid
		_ = m.state.AddColor(m.ctx, string(colors.RandomColor()))

	case key.Matches(msg, m.keys.Remove):
		_ = m.state.RemoveAt(m.ctx, len(m.state.Snapshot().Colors)-1)

	case key.Matches(msg, m.keys.Preset):
		presets := themes.ListPresets()
		p := presets[m.presetIdx%len(presets)]
		m.presetIdx++
		m.state.ApplyPreset(m.ctx, p.Color)
		m.refresh()
		return m, m.setNotice(p.Name)

	case key.Matches(msg, m.keys.History):
		idx := int(msg.Runes[0] - '1')
		if idx >= len(m.history) {
			return m, m.setNotice(fmt.Sprintf("No history entry %d", idx+1))
		}
		m.state.Load(m.ctx, m.history[idx])

	case key.Matches(msg, m.keys.Input):
		m.inputActive = true
		m.input.SetValue("")
		return m, m.input.Focus()

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return m, nil

	case tea.KeyEnter:
		value := m.input.Value()
		m.closeInput()
		if err := m.state.ApplyInput(m.ctx, value); err != nil {
			return m, m.setNotice("Invalid color")
		}
		m.refresh()
		return m, nil

	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.inputActive = false
	m.input.Blur()
}

// rotate shifts the gradient angle, keeping it within [0, 360)
func (m *Model) rotate(delta int) {
	mode := m.state.Mode()
	mode.Angle = ((mode.Angle+delta)%360 + 360) % 360
	m.state.SetMode(mode)
}

func (m *Model) refresh() {
	m.snap = m.state.Snapshot()
	if m.store != nil {
		m.history = m.store.LoadHistory(m.ctx)
		m.savedCount = len(m.store.LoadSaved(m.ctx))
	}
}

func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeID++
	m.notice = text
	id := m.noticeID
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg(id)
	})
}

// copyCSS runs detached; the notice is the only result
func (m *Model) copyCSS() tea.Cmd {
	css := themes.GenerateCSS(m.state.Snapshot())
	copier := m.copier
	return func() tea.Msg {
		// Failures are logged only; the user always sees the copy notice
		if copier == nil {
			log.Printf("No clipboard configured, CSS not copied")
		} else if _, err := copier.Copy(css); err != nil {
			log.Printf("Error copying CSS: %v", err)
		}
		return noticeMsg("Copied!")
	}
}

func (m *Model) save() tea.Cmd {
	p := m.state.Snapshot().Colors
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		if st == nil {
			return noticeMsg("Storage unavailable")
		}
		if err := st.PushSaved(ctx, p); err != nil {
			return noticeMsg("Save failed")
		}
		return noticeMsg("Palette saved")
	}
}

func (m *Model) download() tea.Cmd {
	snap := m.state.Snapshot()
	path, opts := m.output, m.export
	return func() tea.Msg {
		if err := media.SavePNG(path, snap, opts); err != nil {
			return noticeMsg("Export failed")
		}
		return noticeMsg("Downloaded PNG " + path)
	}
}
