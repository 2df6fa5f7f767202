// Package api_router provides the HTTP API route handlers.
package api_router

import (
	"github.com/picup-app/picup/internal/app"
)

// Handler is the base handler every API handler embeds for dependency
// injection from the app container.
type Handler struct {
	App *app.App
}

// NewHandler creates a base Handler instance.
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}
