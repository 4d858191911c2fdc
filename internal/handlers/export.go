// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/media"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

// ExportCSS returns the CSS snippet for the current palette as plain text.
// ?vars=1 adds a :root block of custom properties.
func (h *Handler) ExportCSS(c *gin.Context) {
	snap := h.state.Snapshot()
	css := themes.GenerateCSS(snap) + "\n"
	if c.Query("vars") == "1" {
		css += themes.GenerateCSSVariables(snap)
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(css))
}

// ExportPNG renders the current palette as a PNG download
func (h *Handler) ExportPNG(c *gin.Context) {
	var buf bytes.Buffer
	if err := media.EncodePNG(&buf, h.state.Snapshot(), h.export); err != nil {
		log.Printf("Error exporting png: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export image"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+media.DefaultFilename+`"`)
	c.Data(http.StatusOK, "image/png", buf.Bytes())
	h.notice("Downloaded PNG")
}

// Contrast reports the WCAG contrast ratio between ?bg and ?fg. Without fg
// the readable text color for bg is used.
func (h *Handler) Contrast(c *gin.Context) {
	bg, err := colors.ParseColor(c.Query("bg"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bg: " + err.Error()})
		return
	}

	fg := colors.PickReadableTextColor(bg)
	if raw := c.Query("fg"); raw != "" {
		fg, err = colors.ParseColor(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fg: " + err.Error()})
			return
		}
	}

	ratio := colors.ContrastRatio(bg, fg)
	c.JSON(http.StatusOK, gin.H{
		"bg":       bg,
		"fg":       fg,
		"ratio":    ratio,
		"aa":       ratio >= colors.ReadableContrast,
		"aa_large": ratio >= 3,
		"aaa":      ratio >= 7,
	})
}
