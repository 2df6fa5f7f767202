package local_fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/picup-app/picup/pkg/fileurl"

	"github.com/pkg/errors"
)

// Config holds the local filesystem target settings. Mainly used for
// tests and for keeping uploads on the same machine.
type Config struct {
	SavePath     string `yaml:"save-path"`
	CustomDomain string `yaml:"custom-domain"`
}

type LocalFS struct {
	Config *Config
}

// NewClient creates a local filesystem storage instance.
func NewClient(conf *Config) (*LocalFS, error) {
	if conf.SavePath == "" {
		return nil, errors.New("local_fs: save path is required")
	}
	return &LocalFS{Config: conf}, nil
}

func (p *LocalFS) localPath(fileKey string) string {
	return filepath.Join(p.Config.SavePath, filepath.FromSlash(fileKey))
}

func (p *LocalFS) Exists(ctx context.Context, fileKey string) (bool, error) {
	_, err := os.Stat(p.localPath(fileKey))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "local_fs")
	}
	return true, nil
}

func (p *LocalFS) PutFile(ctx context.Context, fileKey string, file io.Reader, cType string) error {
	dst := p.localPath(fileKey)
	if err := fileurl.CreatePath(dst, 0754); err != nil {
		return errors.Wrap(err, "local_fs")
	}

	f, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "local_fs")
	}
	defer f.Close()

	if _, err := io.Copy(f, file); err != nil {
		return errors.Wrap(err, "local_fs")
	}
	return nil
}

func (p *LocalFS) URL(fileKey string) string {
	if p.Config.CustomDomain != "" {
		return fileurl.PathSuffixCheckAdd(p.Config.CustomDomain, "/") + fileKey
	}
	abs, err := filepath.Abs(p.localPath(fileKey))
	if err != nil {
		abs = p.localPath(fileKey)
	}
	return "file://" + filepath.ToSlash(abs)
}
