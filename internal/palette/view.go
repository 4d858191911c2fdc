package palette

import "github.com/thatcatcamp/colorstudio/internal/colors"

// Swatch is one color prepared for display
type Swatch struct {
	Color     colors.Color `json:"color"`
	Label     string       `json:"label"`
	TextColor colors.Color `json:"text_color"`
	Contrast  float64      `json:"contrast"`
}

// View is the render-ready form of a snapshot
type View struct {
	Swatches []Swatch `json:"swatches"`
	Mode     Mode     `json:"mode"`
}

// NewSwatch labels c and picks a readable text color for it
func NewSwatch(c colors.Color) Swatch {
	text := colors.PickReadableTextColor(c)
	return Swatch{
		Color:     c,
		Label:     c.Upper(),
		TextColor: text,
		Contrast:  colors.ContrastRatio(c, text),
	}
}

// NewView builds the display form of a snapshot
func NewView(snap Snapshot) View {
	v := View{Swatches: make([]Swatch, len(snap.Colors)), Mode: snap.Mode}
	for i, c := range snap.Colors {
		v.Swatches[i] = NewSwatch(c)
	}
	return v
}
