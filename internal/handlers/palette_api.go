// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorstudio/internal/palette"
	"github.com/thatcatcamp/colorstudio/internal/themes"
)

type setColorsRequest struct {
	Colors      []string `json:"colors" binding:"required"`
	SkipHistory bool     `json:"skip_history"`
}

type colorRequest struct {
	Color string `json:"color" binding:"required"`
}

type inputRequest struct {
	Input string `json:"input" binding:"required"`
}

// Angle accepts a number or a string so clients can forward raw text input
type modeRequest struct {
	Gradient *bool       `json:"gradient"`
	Angle    interface{} `json:"angle"`
}

// paletteResponse is the body every palette mutation returns
func paletteResponse(snap palette.Snapshot) gin.H {
	return gin.H{
		"palette": palette.NewView(snap),
		"colors":  snap.Colors.Strings(),
		"css":     themes.GenerateCSS(snap),
	}
}

// GetPalette returns the current palette, mode and CSS
func (h *Handler) GetPalette(c *gin.Context) {
	c.JSON(http.StatusOK, paletteResponse(h.state.Snapshot()))
}

// PutPalette replaces the palette. Invalid entries are dropped.
func (h *Handler) PutPalette(c *gin.Context) {
	var req setColorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "colors is required"})
		return
	}

	var opts []palette.SetOption
	if req.SkipHistory {
		opts = append(opts, palette.WithoutHistory())
	}
	h.state.SetColors(c.Request.Context(), req.Colors, opts...)
	c.JSON(http.StatusOK, paletteResponse(h.state.Snapshot()))
}

// RandomPalette generates a new palette for the current mode
func (h *Handler) RandomPalette(c *gin.Context) {
	h.state.Randomize(c.Request.Context())
	c.JSON(http.StatusOK, paletteResponse(h.state.Snapshot()))
}

// AddColor appends one color
func (h *Handler) AddColor(c *gin.Context) {
	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "color is required"})
		return
	}

	if err := h.state.AddColor(c.Request.Context(), req.Color); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, paletteResponse(h.state.Snapshot()))
}

// RemoveColor deletes the color at :index
func (h *Handler) RemoveColor(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	if err := h.state.RemoveAt(c.Request.Context(), idx); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, paletteResponse(h.state.Snapshot()))
}

// ApplyInput sets the palette to the single color the user typed
func (h *Handler) ApplyInput(c *gin.Context) {
	var req inputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is required"})
		return
	}

	if err := h.state.ApplyInput(c.Request.Context(), req.Input); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, paletteResponse(h.state.Snapshot()))
}

// PutMode updates gradient mode and angle. Omitted fields keep their value.
func (h *Handler) PutMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode"})
		return
	}

	mode := h.state.Mode()
	if req.Gradient != nil {
		mode.Gradient = *req.Gradient
	}
	if req.Angle != nil {
		mode.Angle = coerceAngle(req.Angle)
	}
	h.state.SetMode(mode)
	c.JSON(http.StatusOK, paletteResponse(h.state.Snapshot()))
}

func coerceAngle(v interface{}) int {
	switch a := v.(type) {
	case float64:
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return palette.DefaultAngle
		}
		return int(a)
	case string:
		return palette.ParseAngle(a)
	default:
		return palette.ParseAngle(fmt.Sprint(a))
	}
}
