package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/picup-app/picup/pkg/app"
	"github.com/picup-app/picup/pkg/code"
)

// NoFound answers unknown routes with the unified envelope.
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		app.NewResponse(c).ToError(code.ErrNotFoundAPI, "api not found")
		c.Abort()
	}
}
