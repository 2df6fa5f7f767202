package clipboard

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	xclipboard "golang.design/x/clipboard"
	"go.uber.org/zap"

	"github.com/picup-app/picup/global"
)

// System reads and writes the real OS clipboard through
// golang.design/x/clipboard. Init is lazy and happens once; on headless
// systems every call reports ErrUnavailable instead of panicking.
type System struct {
	initOnce sync.Once
	initErr  error
}

func NewSystem() *System {
	return &System{}
}

func (s *System) init() error {
	s.initOnce.Do(func() {
		defer func() {
			// golang.design/x/clipboard panics on unsupported setups
			if r := recover(); r != nil {
				global.Log().Warn("clipboard init failed", zap.Any("panic", r))
				s.initErr = ErrUnavailable
			}
		}()
		if err := xclipboard.Init(); err != nil {
			global.Log().Warn("clipboard init failed", zap.Error(err))
			s.initErr = errors.Wrap(ErrUnavailable, err.Error())
		}
	})
	return s.initErr
}

func (s *System) Read() (Content, error) {
	if err := s.init(); err != nil {
		return Content{}, err
	}

	if img := xclipboard.Read(xclipboard.FmtImage); len(img) > 0 {
		return Content{Kind: KindImage, Image: img}, nil
	}

	if txt := xclipboard.Read(xclipboard.FmtText); len(txt) > 0 {
		if p, ok := fileRefPath(string(txt)); ok {
			return Content{Kind: KindFileRef, Path: p}, nil
		}
	}

	return Content{Kind: KindEmpty}, nil
}

func (s *System) WriteText(text string) error {
	if err := s.init(); err != nil {
		return err
	}
	xclipboard.Write(xclipboard.FmtText, []byte(text))
	return nil
}

// fileRefPath recognizes the textual file references the platforms put
// on the clipboard when a file is copied: a file:// URL (macOS
// public.file-url, most Linux file managers) or a bare absolute path.
func fileRefPath(text string) (string, bool) {
	text = strings.TrimSpace(strings.Trim(text, "\x00"))
	if text == "" || strings.ContainsAny(text, "\n\r") {
		return "", false
	}

	if strings.HasPrefix(text, "file://") {
		u, err := url.Parse(text)
		if err != nil {
			return "", false
		}
		return u.Path, true
	}

	if filepath.IsAbs(text) {
		return text, true
	}
	return "", false
}
