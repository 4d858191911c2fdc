package themes

import "github.com/thatcatcamp/colorstudio/internal/colors"

// Preset is a named single-color starting point
type Preset struct {
	Name  string       `json:"name"`
	Color colors.Color `json:"color"`
}

// presets in display order
var presets = []Preset{
	{Name: "coral", Color: "#ff6b6b"},
	{Name: "sunflower", Color: "#ffd93d"},
	{Name: "mint", Color: "#6bcb77"},
	{Name: "azure", Color: "#4d96ff"},
	{Name: "lavender", Color: "#9b7dff"},
	{Name: "sky", Color: "#00c2ff"},
	{Name: "bubblegum", Color: "#ff7ab6"},
	{Name: "tangerine", Color: "#ff8a00"},
	{Name: "turquoise", Color: "#00d2a9"},
	{Name: "scarlet", Color: "#ff4d4d"},
}

// GetPreset returns a preset by name
func GetPreset(name string) *Preset {
	for i := range presets {
		if presets[i].Name == name {
			p := presets[i]
			return &p
		}
	}
	return nil
}

// ListPresets returns all available presets in order
func ListPresets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}
