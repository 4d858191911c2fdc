package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/colorstudio/internal/clipboard"
	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/media"
	"github.com/thatcatcamp/colorstudio/internal/palette"
	"github.com/thatcatcamp/colorstudio/internal/store"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

type fakeCopier struct {
	text string
	err  error
}

func (f *fakeCopier) Copy(text string) (clipboard.Method, error) {
	f.text = text
	if f.err != nil {
		return clipboard.MethodNone, f.err
	}
	return clipboard.MethodSystem, nil
}

func newTestModel(t *testing.T, initial colors.Palette) (*Model, *fakeCopier) {
	t.Helper()
	paletteStore := store.NewPaletteStore(store.NewMemoryBackend())
	state := palette.New(palette.WithHistory(paletteStore), palette.WithInitial(initial))
	copier := &fakeCopier{}

	m := NewModel(context.Background(), Options{
		State:  state,
		Store:  paletteStore,
		Copier: copier,
		Export: media.ExportOptions{Width: 40, Height: 30},
		Output: filepath.Join(t.TempDir(), "out.png"),
	})
	return m, copier
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	for _, k := range []string{"q", "ctrl+c"} {
		cmd := press(m, k)
		require.NotNil(t, cmd, "%s should quit", k)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_Randomize(t *testing.T) {
	m, _ := newTestModel(t, colors.Palette{"#ff0000"})

	press(m, " ")

	assert.Len(t, m.snap.Colors, 1)
	assert.Len(t, m.history, 1, "randomize should commit history")
}

func TestModel_ToggleGradientAndAngle(t *testing.T) {
	m, _ := newTestModel(t, colors.Palette{"#ff0000", "#0000ff"})

	press(m, "g")
	assert.True(t, m.snap.Mode.Gradient)

	press(m, "]")
	assert.Equal(t, 105, m.snap.Mode.Angle)

	for i := 0; i < 8; i++ {
		press(m, "[")
	}
	assert.Equal(t, 345, m.snap.Mode.Angle, "angle should wrap below zero")
	assert.Empty(t, m.history, "mode changes should not commit history")
}

func TestModel_AddAndRemove(t *testing.T) {
	m, _ := newTestModel(t, colors.Palette{"#ff0000"})

	press(m, "a")
	require.Len(t, m.snap.Colors, 2)
	assert.Equal(t, colors.Color("#ff0000"), m.snap.Colors[0])

	press(m, "x")
	press(m, "x")
	assert.Equal(t, colors.Palette{palette.FallbackColor}, m.snap.Colors)
}

func TestModel_CyclePresets(t *testing.T) {
	m, _ := newTestModel(t, nil)
	presets := themes.ListPresets()

	cmd := press(m, "p")
	assert.NotNil(t, cmd)
	assert.Equal(t, colors.Palette{presets[0].Color}, m.snap.Colors)
	assert.Equal(t, presets[0].Name, m.notice)

	press(m, "p")
	assert.Equal(t, colors.Palette{presets[1].Color}, m.snap.Colors)
}

func TestModel_LoadHistory(t *testing.T) {
	m, _ := newTestModel(t, nil)
	ctx := context.Background()
	m.state.SetColors(ctx, []string{"#111111"})
	m.state.SetColors(ctx, []string{"#222222"})
	m.Update(snapshotMsg{})

	press(m, "2")
	assert.Equal(t, colors.Palette{"#111111"}, m.snap.Colors)

	press(m, "8")
	assert.Contains(t, m.notice, "No history entry 8")
}

func TestModel_CopyCSS(t *testing.T) {
	m, copier := newTestModel(t, colors.Palette{"#ff0000"})

	cmd := press(m, "c")
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, noticeMsg("Copied!"), msg)
	assert.Equal(t, "background-color: #ff0000;", copier.text)

	m.Update(msg)
	assert.Equal(t, "Copied!", m.notice)

}

func TestModel_CopyCSSFailureStillNotifies(t *testing.T) {
	m, copier := newTestModel(t, colors.Palette{"#ff0000"})
	copier.err = errors.New("no display")

	msg := press(m, "c")()
	assert.Equal(t, noticeMsg("Copied!"), msg)
	assert.Equal(t, "background-color: #ff0000;", copier.text, "copy should still be attempted")

	m.Update(msg)
	assert.Equal(t, "Copied!", m.notice)

	m.copier = nil
	assert.Equal(t, noticeMsg("Copied!"), press(m, "c")())
}

func TestModel_Save(t *testing.T) {
	m, _ := newTestModel(t, colors.Palette{"#ff0000", "#00ff00"})

	msg := press(m, "s")()
	assert.Equal(t, noticeMsg("Palette saved"), msg)

	m.Update(msg)
	assert.Equal(t, 1, m.savedCount)
	saved := m.store.LoadSaved(context.Background())
	require.Len(t, saved, 1)
	assert.Equal(t, colors.Palette{"#ff0000", "#00ff00"}, saved[0])
}

func TestModel_Download(t *testing.T) {
	m, _ := newTestModel(t, colors.Palette{"#ff0000"})

	msg := press(m, "d")()
	assert.Contains(t, string(msg.(noticeMsg)), "Downloaded PNG")

	info, err := os.Stat(m.output)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestModel_InputMode(t *testing.T) {
	m, _ := newTestModel(t, colors.Palette{"#ff0000", "#00ff00"})

	press(m, "i")
	require.True(t, m.inputActive)

	// Keys go to the input, not the command map
	typeText(m, "nope")
	assert.Len(t, m.snap.Colors, 2)

	press(m, "enter")
	assert.False(t, m.inputActive)
	assert.Equal(t, "Invalid color", m.notice)
	assert.Len(t, m.snap.Colors, 2)

	press(m, "i")
	typeText(m, "rgb(0, 0, 255)")
	press(m, "enter")
	assert.Equal(t, colors.Palette{"#0000ff"}, m.snap.Colors)

	press(m, "i")
	press(m, "esc")
	assert.False(t, m.inputActive)
}

func TestModel_NoticeExpires(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(noticeMsg("first"))
	firstID := m.noticeID
	m.Update(noticeMsg("second"))

	m.Update(clearNoticeMsg(firstID))
	assert.Equal(t, "second", m.notice, "stale timer must not clear a newer notice")

	m.Update(clearNoticeMsg(m.noticeID))
	assert.Empty(t, m.notice)
}

func TestModel_ExternalChange(t *testing.T) {
	m, _ := newTestModel(t, colors.Palette{"#ff0000"})

	m.state.SetColors(context.Background(), []string{"#abcdef"})
	assert.Equal(t, colors.Palette{"#ff0000"}, m.snap.Colors, "model only refreshes on a message")

	m.Update(snapshotMsg{})
	assert.Equal(t, colors.Palette{"#abcdef"}, m.snap.Colors)
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, colors.Palette{"#ff0000", "#0000ff"})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	press(m, "g")

	view := m.View()
	assert.Contains(t, view, "Color Studio")
	assert.Contains(t, view, "#FF0000")
	assert.Contains(t, view, "linear-gradient(90deg, #ff0000, #0000ff)")
	assert.Contains(t, view, "gradient 90°")
}

func TestBlend(t *testing.T) {
	stops := colors.Palette{"#000000", "#ffffff"}

	assert.Equal(t, "#000000", blend(stops, 0).Hex())
	assert.Equal(t, "#ffffff", blend(stops, 1).Hex())

	three := colors.Palette{"#ff0000", "#00ff00", "#0000ff"}
	assert.Equal(t, "#00ff00", blend(three, 0.5).Hex())
}
