// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/palette"
)

// GenerateCSS returns the one-line background declaration for a snapshot:
// a linear gradient when gradient mode is on and there are at least two
// colors, a solid background color otherwise.
func GenerateCSS(snap palette.Snapshot) string {
	if snap.Mode.Gradient && len(snap.Colors) > 1 {
		return fmt.Sprintf("background: linear-gradient(%ddeg, %s);",
			snap.Mode.Angle, strings.Join(snap.Colors.Strings(), ", "))
	}
	return fmt.Sprintf("background-color: %s;", first(snap))
}

// GenerateCSSVariables returns a :root block with one variable per color and
// a matching readable text color for each
func GenerateCSSVariables(snap palette.Snapshot) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range snap.Colors {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c)
		fmt.Fprintf(&b, "  --color-%d-contrast: %s;\n", i+1, colors.PickReadableTextColor(c))
	}
	fmt.Fprintf(&b, "  --palette-background: %s\n", strings.TrimPrefix(
		strings.TrimPrefix(GenerateCSS(snap), "background-color: "), "background: "))
	b.WriteString("}\n")
	return b.String()
}

func first(snap palette.Snapshot) colors.Color {
	if len(snap.Colors) == 0 {
		return palette.FallbackColor
	}
	return snap.Colors[0]
}
