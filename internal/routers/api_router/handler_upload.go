package api_router

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/picup-app/picup/internal/app"
	"github.com/picup-app/picup/internal/clipboard"
	"github.com/picup-app/picup/internal/service"
	"github.com/picup-app/picup/internal/settings"
	"github.com/picup-app/picup/internal/uploader"
	pkgapp "github.com/picup-app/picup/pkg/app"
	"github.com/picup-app/picup/pkg/code"
)

// UploadHandler triggers the upload pipeline over HTTP.
type UploadHandler struct {
	*Handler
}

// NewUploadHandler creates an UploadHandler instance.
func NewUploadHandler(a *app.App) *UploadHandler {
	return &UploadHandler{Handler: NewHandler(a)}
}

// UploadFilesRequest lists the local files to upload, in order.
type UploadFilesRequest struct {
	Paths []string `json:"paths" binding:"required,min=1"`
}

// Clipboard uploads whatever image the system clipboard currently holds.
func (h *UploadHandler) Clipboard(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	rec, err := h.App.Service.UploadFromClipboard(c.Request.Context())
	if err != nil {
		response.ToError(uploadErrCode(err), "clipboard upload failed", err.Error())
		return
	}
	response.ToResponse(rec)
}

// UploadFilesResult pairs the successful records with the per-path
// failures of one batch.
type UploadFilesResult struct {
	Records  []*settings.UploadRecord `json:"records"`
	Failures []service.PathFailure    `json:"failures,omitempty"`
}

// Files uploads a batch of local files sequentially. A partial failure
// still returns the records that succeeded, with the failed paths and
// their reasons alongside.
func (h *UploadHandler) Files(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	var params UploadFilesRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ToError(code.ErrInvalidParams, "invalid upload payload", err.Error())
		return
	}

	records, failures, err := h.App.Service.UploadFromPaths(c.Request.Context(), params.Paths)
	if err != nil && len(records) == 0 {
		response.ToError(uploadErrCode(err), "file upload failed", err.Error())
		return
	}
	response.ToResponse(UploadFilesResult{Records: records, Failures: failures})
}

func uploadErrCode(err error) int {
	switch {
	case errors.Is(err, uploader.ErrNoProfile):
		return code.ErrNoProfile
	case errors.Is(err, uploader.ErrEmptyClipboard):
		return code.ErrClipboardEmpty
	case errors.Is(err, clipboard.ErrUnavailable):
		return code.ErrClipboardUnavailable
	default:
		return code.ErrUploadFailed
	}
}
