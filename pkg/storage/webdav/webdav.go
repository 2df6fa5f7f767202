package webdav

import (
	"github.com/studio-b12/gowebdav"
)

// Config holds the WebDAV connection settings.
type Config struct {
	Endpoint     string `yaml:"endpoint"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	CustomDomain string `yaml:"custom-domain"`
}

type WebDAV struct {
	Client *gowebdav.Client
	Config *Config
}

// NewClient creates a WebDAV client instance. Every call builds a fresh
// client from the profile it is given, so profile edits take effect on
// the next upload.
func NewClient(conf *Config) (*WebDAV, error) {
	c := gowebdav.NewClient(conf.Endpoint, conf.User, conf.Password)

	return &WebDAV{
		Client: c,
		Config: conf,
	}, nil
}
