// Package routers assembles the gin engine for the local agent API.
package routers

import (
	"time"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"

	"github.com/picup-app/picup/internal/app"
	"github.com/picup-app/picup/internal/middleware"
	"github.com/picup-app/picup/internal/routers/api_router"
)

// NewRouter wires the HTTP API and the websocket event endpoint shells
// subscribe to. The agent listens on loopback; there is no auth layer.
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, app.Version))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		settingsHandler := api_router.NewSettingsHandler(appContainer)
		uploadHandler := api_router.NewUploadHandler(appContainer)
		historyHandler := api_router.NewHistoryHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		api.GET("/version", versionHandler.ServerVersion)

		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", settingsHandler.Save)
		api.DELETE("/settings/profile/:id", settingsHandler.DeleteProfile)

		api.POST("/upload/clipboard", uploadHandler.Clipboard)
		api.POST("/upload/files", uploadHandler.Files)

		api.GET("/history", historyHandler.List)
		api.DELETE("/history", historyHandler.Clear)

		api.GET("/events", appContainer.Hub.Run())
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
