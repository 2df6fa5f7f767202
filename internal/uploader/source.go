package uploader

import (
	"mime"
	"os"
	"path/filepath"

	"github.com/picup-app/picup/pkg/logger"

	"go.uber.org/zap"
)

// Source is a concrete local byte source for one upload attempt.
type Source struct {
	// Path is the local file holding the bytes.
	Path string
	// Name is the suggested destination file name.
	Name string
	// Ephemeral marks a source materialized just for this upload (a
	// clipboard-derived temp file). It is deleted after the attempt;
	// a user's original file never is.
	Ephemeral bool
}

// FromPath builds the trivial source for drag-and-drop and file-picker
// triggers. Existence is not probed here; an absent file surfaces as an
// I/O error when the transfer opens it.
func FromPath(path string) *Source {
	return &Source{
		Path:      path,
		Name:      filepath.Base(path),
		Ephemeral: false,
	}
}

// Cleanup removes ephemeral temp files. Deletion errors are logged and
// never propagated; they must not mask the upload outcome.
func (s *Source) Cleanup(lg *zap.Logger) {
	if !s.Ephemeral {
		return
	}
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		lg.Warn("temp file cleanup failed",
			zap.String(logger.FieldPath, s.Path),
			zap.Error(err))
	}
}

// ContentType derives the MIME type for the transfer from the name.
func (s *Source) ContentType() string {
	if t := mime.TypeByExtension(filepath.Ext(s.Name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
