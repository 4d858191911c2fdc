package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/palette"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

const previewHeight = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4d96ff"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9aa0a6"))
	cssStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e8eaed"))
	noticeStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#4d96ff")).
			Padding(0, 1)
)

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	mode := "solid"
	if m.snap.Mode.Gradient {
		mode = fmt.Sprintf("gradient %d°", m.snap.Mode.Angle)
	}
	b.WriteString(titleStyle.Render("Color Studio"))
	b.WriteString("  " + labelStyle.Render(mode) + "\n\n")

	b.WriteString(renderPreview(m.snap, m.width))
	b.WriteString("\n\n")

	for _, s := range palette.NewView(m.snap).Swatches {
		b.WriteString(renderSwatch(s))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("css  "))
	b.WriteString(cssStyle.Render(themes.GenerateCSS(m.snap)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("hist "))
	if len(m.history) == 0 {
		b.WriteString(labelStyle.Render("empty"))
	}
	for i, p := range m.history {
		b.WriteString(fmt.Sprintf("%d", i+1))
		b.WriteString(renderChip(p))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("saved %d", m.savedCount)))
	b.WriteString("\n\n")

	if m.inputActive {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderPreview fills a block with the palette. Gradients run left to right
// since terminal cells cannot follow an arbitrary angle.
func renderPreview(snap palette.Snapshot, width int) string {
	if width < 10 {
		width = 10
	}

	row := previewRow(snap, width)
	rows := make([]string, previewHeight)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func previewRow(snap palette.Snapshot, width int) string {
	stops := snap.Colors
	if len(stops) == 0 {
		stops = colors.Palette{palette.FallbackColor}
	}
	if !snap.Mode.Gradient || len(stops) == 1 {
		return lipgloss.NewStyle().Background(lipgloss.Color(string(stops[0]))).Render(strings.Repeat(" ", width))
	}

	var b strings.Builder
	for x := 0; x < width; x++ {
		t := float64(x) / float64(width-1)
		c := blend(stops, t)
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}
	return b.String()
}

// blend returns the color at position t in [0, 1] across evenly spaced stops
func blend(stops colors.Palette, t float64) colorful.Color {
	segments := float64(len(stops) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(stops)-1 {
		i = len(stops) - 2
	}
	a, _ := colorful.Hex(string(stops[i]))
	b, _ := colorful.Hex(string(stops[i+1]))
	return a.BlendRgb(b, pos-float64(i)).Clamped()
}

func renderSwatch(s palette.Swatch) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(string(s.Color))).
		Foreground(lipgloss.Color(string(s.TextColor))).
		Padding(0, 2).
		Width(28)
	return style.Render(fmt.Sprintf("%s  %.1f:1", s.Label, s.Contrast))
}

func renderChip(p colors.Palette) string {
	var b strings.Builder
	for _, c := range p {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(string(c))).Render("  "))
	}
	return b.String()
}
