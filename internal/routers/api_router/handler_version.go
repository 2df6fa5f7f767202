package api_router

import (
	"github.com/gin-gonic/gin"

	"github.com/picup-app/picup/internal/app"
	pkgapp "github.com/picup-app/picup/pkg/app"
)

// VersionHandler serves agent version information.
type VersionHandler struct {
	*Handler
}

// NewVersionHandler creates a VersionHandler instance.
func NewVersionHandler(a *app.App) *VersionHandler {
	return &VersionHandler{Handler: NewHandler(a)}
}

// VersionDTO is the version payload.
type VersionDTO struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

// ServerVersion returns the agent name, version, git tag and build time.
func (h *VersionHandler) ServerVersion(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	response.ToResponse(VersionDTO{
		Name:      app.Name,
		Version:   app.Version,
		GitTag:    app.GitTag,
		BuildTime: app.BuildTime,
	})
}
