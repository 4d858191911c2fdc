// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/middleware"
	"github.com/thatcatcamp/colorstudio/internal/palette"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

// csrfSlot marks where each form gets its hidden token field
const csrfSlot = "<!--csrf-->"

// ServeIndex renders the preview page: the live preview, the CSS snippet,
// the swatch list and the history, saved and preset chips.
func (h *Handler) ServeIndex(c *gin.Context) {
	ctx := c.Request.Context()
	snap := h.state.Snapshot()
	view := palette.NewView(snap)
	css := themes.GenerateCSS(snap)

	var notice string
	if msg := c.Query("notice"); msg != "" {
		notice = `<div class="notice">` + html.EscapeString(msg) + `</div>`
	}

	var swatches strings.Builder
	for i, s := range view.Swatches {
		swatches.WriteString(fmt.Sprintf(`
			<div class="swatch" style="background: %s; color: %s;">
				<span>%s</span>
				<small style="color: %s;">%.2f:1</small>
				<form method="POST" action="/ui/colors/%d/remove"><!--csrf-->
					<button type="submit" class="btn-plain" style="color: %s;" title="Remove">&times;</button>
				</form>
			</div>`,
			s.Color, s.TextColor, html.EscapeString(s.Label), s.TextColor, s.Contrast, i, s.TextColor))
	}

	checked := ""
	if snap.Mode.Gradient {
		checked = " checked"
	}

	textColor := colors.PickReadableTextColor(snap.Colors[0])

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Color Studio</title>
	<style>%s</style>
</head>
<body>
	<div class="layout">
		<main>
			%s
			<div class="preview" style="%s color: %s;">
				<h1>Color Studio</h1>
			</div>
			<div class="toolbar">
				<form method="POST" action="/ui/random"><!--csrf--><button type="submit">Random</button></form>
				<form method="POST" action="/ui/apply"><!--csrf-->
					<input type="text" name="input" placeholder="#ff6b6b, rgb(), hsl()">
					<button type="submit">Apply</button>
				</form>
				<form method="POST" action="/ui/mode"><!--csrf-->
					<label><input type="checkbox" name="gradient" value="1"%s> Gradient</label>
					<input type="text" name="angle" value="%d" size="4">
					<button type="submit">Set</button>
				</form>
				<form method="POST" action="/ui/save"><!--csrf--><button type="submit">Save</button></form>
				<a href="/api/export/css">CSS</a>
				<a href="/api/export/png">PNG</a>
			</div>
			<div class="card">
				<h2>CSS</h2>
				<div class="css-output">%s</div>
			</div>
			<div class="card">
				<h2>History</h2>
				%s
			</div>
			<div class="card">
				<h2>Saved</h2>
				%s
			</div>
		</main>
		<aside>
			<div class="card">
				<h2>Palette</h2>
				%s
				<form method="POST" action="/ui/colors"><!--csrf-->
					<input type="text" name="color" placeholder="Add color">
					<button type="submit">Add</button>
				</form>
			</div>
			<div class="card">
				<h2>Presets</h2>
				%s
			</div>
		</aside>
	</div>
	%s
</body>
</html>
`,
		GetDesignSystemCSS(),
		notice,
		html.EscapeString(css), textColor,
		checked, snap.Mode.Angle,
		html.EscapeString(css),
		renderChips("/ui/history", h.store.LoadHistory(ctx), "No history yet"),
		renderChips("/ui/saved", h.store.LoadSaved(ctx), "No saved palettes"),
		swatches.String(),
		renderPresets(),
		h.liveScript(snap),
	)
	page = strings.ReplaceAll(page, csrfSlot, middleware.GetCSRFTokenHTML(c))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// liveScript reloads the page when a palette different from the rendered
// one arrives, including a change made before the socket connected.
func (h *Handler) liveScript(snap palette.Snapshot) string {
	if h.hub == nil {
		return ""
	}
	return fmt.Sprintf(`<script>
	(function () {
		var rendered = %q;
		var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/api/ws");
		ws.onmessage = function (e) {
			var msg = JSON.parse(e.data);
			if (msg.type !== "palette") return;
			var d = msg.data;
			var key = d.swatches.map(function (s) { return s.color; }).join(",") + "|" + d.mode.gradient + "|" + d.mode.angle;
			if (key !== rendered) location.replace("/");
		};
	})();
	</script>`, snapshotKey(snap))
}

// snapshotKey identifies what the page shows; the live script builds the
// same string from incoming views
func snapshotKey(snap palette.Snapshot) string {
	return fmt.Sprintf("%s|%t|%d", strings.Join(snap.Colors.Strings(), ","), snap.Mode.Gradient, snap.Mode.Angle)
}

func renderChips(base string, list []colors.Palette, empty string) string {
	if len(list) == 0 {
		return "<small>" + empty + "</small>"
	}

	var b strings.Builder
	b.WriteString(`<div class="chips">`)
	for i, p := range list {
		b.WriteString(fmt.Sprintf(`
			<form method="POST" action="%s/%d/load"><!--csrf-->
				<button type="submit" class="chip" style="background: %s;" title="%s"></button>
			</form>`,
			base, i, chipBackground(p), html.EscapeString(strings.Join(p.Strings(), " "))))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderPresets() string {
	var b strings.Builder
	b.WriteString(`<div class="chips">`)
	for i, p := range themes.ListPresets() {
		b.WriteString(fmt.Sprintf(`
			<form method="POST" action="/ui/presets/%d/apply"><!--csrf-->
				<button type="submit" class="chip" style="background: %s;" title="%s"></button>
			</form>`,
			i, p.Color, html.EscapeString(p.Name)))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// chipBackground draws a multi-color palette as a left-to-right gradient
func chipBackground(p colors.Palette) string {
	switch len(p) {
	case 0:
		return string(palette.FallbackColor)
	case 1:
		return string(p[0])
	default:
		return "linear-gradient(90deg, " + strings.Join(p.Strings(), ", ") + ")"
	}
}

// redirectHome sends the browser back to the page with an optional notice
func redirectHome(c *gin.Context, notice string) {
	target := "/"
	if notice != "" {
		target += "?notice=" + url.QueryEscape(notice)
	}
	c.Redirect(http.StatusFound, target)
}

// UIRandom handles the Random button
func (h *Handler) UIRandom(c *gin.Context) {
	h.state.Randomize(c.Request.Context())
	redirectHome(c, "")
}

// UIApply handles the color input box
func (h *Handler) UIApply(c *gin.Context) {
	if err := h.state.ApplyInput(c.Request.Context(), c.PostForm("input")); err != nil {
		redirectHome(c, "Invalid color")
		return
	}
	redirectHome(c, "")
}

// UIAddColor appends a color from the sidebar
func (h *Handler) UIAddColor(c *gin.Context) {
	if err := h.state.AddColor(c.Request.Context(), c.PostForm("color")); err != nil {
		redirectHome(c, "Invalid color")
		return
	}
	redirectHome(c, "")
}

// UIRemoveColor removes one swatch
func (h *Handler) UIRemoveColor(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		redirectHome(c, "Invalid index")
		return
	}
	if err := h.state.RemoveAt(c.Request.Context(), idx); err != nil {
		redirectHome(c, "Color not found")
		return
	}
	redirectHome(c, "")
}

// UIMode applies the gradient checkbox and angle field
func (h *Handler) UIMode(c *gin.Context) {
	h.state.SetMode(palette.Mode{
		Gradient: c.PostForm("gradient") != "",
		Angle:    palette.ParseAngle(c.PostForm("angle")),
	})
	redirectHome(c, "")
}

// UISave stores the current palette
func (h *Handler) UISave(c *gin.Context) {
	if err := h.store.PushSaved(c.Request.Context(), h.state.Snapshot().Colors); err != nil {
		log.Printf("Error saving palette: %v", err)
		redirectHome(c, "Save failed")
		return
	}
	h.notice("Palette saved")
	redirectHome(c, "Palette saved")
}

// UILoadHistory loads a history chip
func (h *Handler) UILoadHistory(c *gin.Context) {
	h.uiLoad(c, h.store.LoadHistory(c.Request.Context()))
}

// UILoadSaved loads a saved chip
func (h *Handler) UILoadSaved(c *gin.Context) {
	h.uiLoad(c, h.store.LoadSaved(c.Request.Context()))
}

// UIApplyPreset applies a preset chip
func (h *Handler) UIApplyPreset(c *gin.Context) {
	idx, ok := indexParam(c)
	presets := themes.ListPresets()
	if !ok || idx < 0 || idx >= len(presets) {
		redirectHome(c, "Preset not found")
		return
	}
	h.state.ApplyPreset(c.Request.Context(), presets[idx].Color)
	redirectHome(c, "")
}

func (h *Handler) uiLoad(c *gin.Context, list []colors.Palette) {
	idx, ok := indexParam(c)
	if !ok {
		redirectHome(c, "Invalid index")
		return
	}
	p, err := pick(list, idx)
	if err != nil {
		redirectHome(c, "Palette not found")
		return
	}
	h.state.Load(c.Request.Context(), p)
	redirectHome(c, "")
}
