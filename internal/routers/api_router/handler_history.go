package api_router

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/picup-app/picup/internal/app"
	pkgapp "github.com/picup-app/picup/pkg/app"
	"github.com/picup-app/picup/pkg/code"
)

// HistoryHandler serves the upload history API.
type HistoryHandler struct {
	*Handler
}

// NewHistoryHandler creates a HistoryHandler instance.
func NewHistoryHandler(a *app.App) *HistoryHandler {
	return &HistoryHandler{Handler: NewHandler(a)}
}

// List returns the upload log, newest first. Without page/pageSize the
// full log is returned in one response.
func (h *HistoryHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	records := h.App.Service.History()

	pageQ := c.Query("page")
	sizeQ := c.Query("pageSize")
	if pageQ == "" && sizeQ == "" {
		response.ToResponse(records)
		return
	}

	page, err := strconv.Atoi(pageQ)
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(sizeQ)
	if err != nil || size < 1 {
		size = 20
	}

	start := (page - 1) * size
	if start > len(records) {
		start = len(records)
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}

	response.ToResponse(gin.H{
		"total": len(records),
		"page":  page,
		"list":  records[start:end],
	})
}

// Clear empties the upload log.
func (h *HistoryHandler) Clear(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	if err := h.App.Service.ClearHistory(c.Request.Context()); err != nil {
		response.ToError(code.ErrServerInternal, "clear history failed", err.Error())
		return
	}
	response.ToResponse(nil)
}
