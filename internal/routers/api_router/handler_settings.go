package api_router

import (
	"github.com/gin-gonic/gin"

	"github.com/picup-app/picup/internal/app"
	"github.com/picup-app/picup/internal/settings"
	pkgapp "github.com/picup-app/picup/pkg/app"
	"github.com/picup-app/picup/pkg/code"
)

// SettingsHandler serves the settings document API.
type SettingsHandler struct {
	*Handler
}

// NewSettingsHandler creates a SettingsHandler instance.
func NewSettingsHandler(a *app.App) *SettingsHandler {
	return &SettingsHandler{Handler: NewHandler(a)}
}

// Get returns the current settings document snapshot.
func (h *SettingsHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	response.ToResponse(h.App.Service.GetSettings())
}

// Save replaces the settings document with the request body. The stored
// upload history is preserved regardless of what the body carries.
func (h *SettingsHandler) Save(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	var params settings.Settings
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ToError(code.ErrInvalidParams, "invalid settings payload", err.Error())
		return
	}

	saved, err := h.App.Service.SaveSettings(c.Request.Context(), &params)
	if err != nil {
		response.ToError(code.ErrServerInternal, "save settings failed", err.Error())
		return
	}
	response.ToResponse(saved)
}

// DeleteProfile removes one storage profile by id.
func (h *SettingsHandler) DeleteProfile(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id := c.Param("id")
	if id == "" {
		response.ToError(code.ErrInvalidParams, "profile id is required")
		return
	}

	saved, err := h.App.Service.DeleteProfile(c.Request.Context(), id)
	if err != nil {
		response.ToError(code.ErrServerInternal, "delete profile failed", err.Error())
		return
	}
	response.ToResponse(saved)
}
