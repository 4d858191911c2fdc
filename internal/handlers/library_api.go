// SPDX-License-Identifier: MIT
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

type paletteEntry struct {
	Index  int      `json:"index"`
	Colors []string `json:"colors"`
}

func entries(list []colors.Palette) []paletteEntry {
	out := make([]paletteEntry, len(list))
	for i, p := range list {
		out[i] = paletteEntry{Index: i, Colors: p.Strings()}
	}
	return out
}

// ListHistory returns the recent palettes, newest first
func (h *Handler) ListHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": entries(h.store.LoadHistory(c.Request.Context()))})
}

// LoadHistory makes history entry :index the current palette
func (h *Handler) LoadHistory(c *gin.Context) {
	h.loadFrom(c, h.store.LoadHistory(c.Request.Context()))
}

// ClearHistory empties the history list
func (h *Handler) ClearHistory(c *gin.Context) {
	if err := h.store.ClearHistory(c.Request.Context()); err != nil {
		log.Printf("Error clearing history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": []paletteEntry{}})
}

// ListSaved returns the saved palettes, newest first
func (h *Handler) ListSaved(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"saved": entries(h.store.LoadSaved(c.Request.Context()))})
}

// SavePalette stores the current palette at the front of the saved list
func (h *Handler) SavePalette(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.store.PushSaved(ctx, h.state.Snapshot().Colors); err != nil {
		log.Printf("Error saving palette: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save palette"})
		return
	}
	h.notice("Palette saved")
	c.JSON(http.StatusCreated, gin.H{"saved": entries(h.store.LoadSaved(ctx))})
}

// LoadSaved makes saved palette :index the current palette
func (h *Handler) LoadSaved(c *gin.Context) {
	h.loadFrom(c, h.store.LoadSaved(c.Request.Context()))
}

// ClearSaved empties the saved list
func (h *Handler) ClearSaved(c *gin.Context) {
	if err := h.store.ClearSaved(c.Request.Context()); err != nil {
		log.Printf("Error clearing saved palettes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear saved palettes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": []paletteEntry{}})
}

// ListPresets returns the built-in preset colors
func (h *Handler) ListPresets(c *gin.Context) {
	presets := themes.ListPresets()
	out := make([]gin.H, len(presets))
	for i, p := range presets {
		out[i] = gin.H{
			"index":      i,
			"name":       p.Name,
			"color":      p.Color,
			"text_color": colors.PickReadableTextColor(p.Color),
		}
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

// ApplyPreset replaces the palette with preset :index
func (h *Handler) ApplyPreset(c *gin.Context) {
	idx, ok := indexParam(c)
	presets := themes.ListPresets()
	if !ok || idx < 0 || idx >= len(presets) {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}

	h.state.ApplyPreset(c.Request.Context(), presets[idx].Color)
	c.JSON(http.StatusOK, paletteResponse(h.state.Snapshot()))
}

func (h *Handler) loadFrom(c *gin.Context, list []colors.Palette) {
	idx, ok := indexParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	p, err := pick(list, idx)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.state.Load(c.Request.Context(), p)
	c.JSON(http.StatusOK, paletteResponse(h.state.Snapshot()))
}
