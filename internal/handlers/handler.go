// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/live"
	"github.com/thatcatcamp/colorstudio/internal/media"
	"github.com/thatcatcamp/colorstudio/internal/middleware"
	"github.com/thatcatcamp/colorstudio/internal/palette"
	"github.com/thatcatcamp/colorstudio/internal/store"
)

// Handler serves the palette API and the preview page
type Handler struct {
	state  *palette.State
	store  *store.PaletteStore
	hub    *live.Hub
	export media.ExportOptions
}

// NewHandler creates a handler. hub may be nil when live updates are not served.
func NewHandler(state *palette.State, paletteStore *store.PaletteStore, hub *live.Hub, export media.ExportOptions) *Handler {
	return &Handler{
		state:  state,
		store:  paletteStore,
		hub:    hub,
		export: export,
	}
}

// Register mounts every route on r
func (h *Handler) Register(r gin.IRouter) {
	// The page hands out the token its forms post back
	page := r.Group("", middleware.CSRFMiddleware())
	page.GET("/", h.ServeIndex)

	// Form posts from the preview page
	ui := page.Group("/ui")
	ui.POST("/random", h.UIRandom)
	ui.POST("/apply", h.UIApply)
	ui.POST("/colors", h.UIAddColor)
	ui.POST("/colors/:index/remove", h.UIRemoveColor)
	ui.POST("/mode", h.UIMode)
	ui.POST("/save", h.UISave)
	ui.POST("/history/:index/load", h.UILoadHistory)
	ui.POST("/saved/:index/load", h.UILoadSaved)
	ui.POST("/presets/:index/apply", h.UIApplyPreset)

	api := r.Group("/api", middleware.SameOriginMiddleware())
	api.GET("/palette", h.GetPalette)
	api.PUT("/palette", h.PutPalette)
	api.POST("/palette/random", h.RandomPalette)
	api.POST("/palette/colors", h.AddColor)
	api.DELETE("/palette/colors/:index", h.RemoveColor)
	api.POST("/palette/apply", h.ApplyInput)
	api.PUT("/palette/mode", h.PutMode)

	api.GET("/export/css", h.ExportCSS)
	api.GET("/export/png", h.ExportPNG)

	api.GET("/history", h.ListHistory)
	api.POST("/history/:index/load", h.LoadHistory)
	api.DELETE("/history", h.ClearHistory)

	api.GET("/saved", h.ListSaved)
	api.POST("/saved", h.SavePalette)
	api.POST("/saved/:index/load", h.LoadSaved)
	api.DELETE("/saved", h.ClearSaved)

	api.GET("/presets", h.ListPresets)
	api.POST("/presets/:index/apply", h.ApplyPreset)

	api.GET("/contrast", h.Contrast)

	if h.hub != nil {
		api.GET("/ws", func(c *gin.Context) {
			h.hub.ServeWS(c.Writer, c.Request)
		})
	}
}

// notice forwards a transient message to live clients
func (h *Handler) notice(text string) {
	if h.hub != nil {
		h.hub.Notify(text)
	}
}

// indexParam reads the :index path parameter
func indexParam(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, false
	}
	return idx, true
}

// pick returns list[idx] or an out-of-range error
func pick(list []colors.Palette, idx int) (colors.Palette, error) {
	if idx < 0 || idx >= len(list) {
		return nil, palette.ErrIndexOutOfRange
	}
	return list[idx], nil
}

// errorStatus maps domain errors onto HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, colors.ErrInvalidColor):
		return http.StatusBadRequest
	case errors.Is(err, palette.ErrIndexOutOfRange):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
