package webdav

import (
	"context"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/studio-b12/gowebdav"

	"github.com/picup-app/picup/pkg/fileurl"
)

// Exists probes the object with a PROPFIND. A not-found answer is the
// expected non-error outcome.
func (w *WebDAV) Exists(ctx context.Context, fileKey string) (bool, error) {
	_, err := w.Client.Stat(fileKey)
	if err != nil {
		if gowebdav.IsErrNotFound(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "webdav")
	}
	return true, nil
}

func (w *WebDAV) PutFile(ctx context.Context, fileKey string, file io.Reader, cType string) error {
	if dir := path.Dir(fileKey); dir != "." && dir != "/" {
		if err := w.Client.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "webdav")
		}
	}

	if err := w.Client.WriteStream(fileKey, file, os.ModePerm); err != nil {
		return errors.Wrap(err, "webdav")
	}
	return nil
}

func (w *WebDAV) URL(fileKey string) string {
	if w.Config.CustomDomain != "" {
		return fileurl.PathSuffixCheckAdd(w.Config.CustomDomain, "/") + fileKey
	}
	return fileurl.PathSuffixCheckAdd(w.Config.Endpoint, "/") + fileKey
}
