package tencent_cos

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	cos "github.com/tencentyun/cos-go-sdk-v5"
	"go.uber.org/zap"
)

type Config struct {
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	CustomDomain    string `yaml:"custom-domain"`
}

type COS struct {
	Client *cos.Client
	Config *Config
	logger *zap.Logger
}

// Option configuration option function type
type Option func(*COS)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *COS) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a COS storage instance. Construction is offline and
// cheap; every call builds a fresh client, so profile edits (rotated
// credentials, a changed custom domain) take effect on the next upload.
func NewClient(conf *Config, opts ...Option) (*COS, error) {
	bucketURL, err := url.Parse(fmt.Sprintf("https://%s.cos.%s.myqcloud.com", conf.BucketName, conf.Region))
	if err != nil {
		return nil, errors.Wrap(err, "tencent_cos")
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  conf.AccessKeyID,
			SecretKey: conf.AccessKeySecret,
		},
	})

	c := &COS{
		Client: client,
		Config: conf,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}
