package uploader

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/picup-app/picup/internal/clipboard"
	"github.com/picup-app/picup/pkg/fileurl"
	"github.com/picup-app/picup/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AllowedImageExts are the file extensions accepted from a clipboard
// file reference, matched case-insensitively.
var AllowedImageExts = []string{"png", "jpg", "jpeg", "gif", "bmp", "webp", "svg"}

// Extractor turns an upload trigger into a concrete byte source, trying
// the clipboard representations in priority order.
type Extractor struct {
	reader  clipboard.Reader
	tempDir string
	logger  *zap.Logger
}

func NewExtractor(reader clipboard.Reader, tempDir string, lg *zap.Logger) *Extractor {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Extractor{
		reader:  reader,
		tempDir: tempDir,
		logger:  lg,
	}
}

// FromClipboard probes the clipboard. Raster image data wins over a file
// reference; a reference only counts when the file exists and bears an
// allowed image extension, otherwise the probe falls through to
// ErrEmptyClipboard.
func (e *Extractor) FromClipboard() (*Source, error) {
	content, err := e.reader.Read()
	if err != nil {
		return nil, err
	}

	switch content.Kind {
	case clipboard.KindImage:
		return e.materializeImage(content.Image)
	case clipboard.KindFileRef:
		if fileurl.IsExist(content.Path) && fileurl.IsContainExt(content.Path, AllowedImageExts) {
			return FromPath(content.Path), nil
		}
	}

	return nil, ErrEmptyClipboard
}

// materializeImage writes the PNG bytes into a fresh temp file owned by
// the upload attempt.
func (e *Extractor) materializeImage(png []byte) (*Source, error) {
	name := fmt.Sprintf("picup_clip_%d.png", time.Now().UnixMilli())
	path := filepath.Join(e.tempDir, name)

	if err := os.MkdirAll(e.tempDir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "extractor")
	}
	if err := os.WriteFile(path, png, 0600); err != nil {
		return nil, errors.Wrap(err, "extractor")
	}

	e.logger.Debug("clipboard image materialized",
		zap.String(logger.FieldPath, path),
		zap.Int("size", len(png)))

	return &Source{Path: path, Name: name, Ephemeral: true}, nil
}
