// Package storage provides a unified client over the supported object
// storage backends. Keys are forward-slash namespace identifiers; no
// backend applies a prefix of its own, the caller owns the full key.
package storage

import (
	"context"
	"errors"
	"io"

	"github.com/picup-app/picup/pkg/storage/aliyun_oss"
	"github.com/picup-app/picup/pkg/storage/aws_s3"
	"github.com/picup-app/picup/pkg/storage/cloudflare_r2"
	"github.com/picup-app/picup/pkg/storage/local_fs"
	"github.com/picup-app/picup/pkg/storage/minio"
	"github.com/picup-app/picup/pkg/storage/tencent_cos"
	"github.com/picup-app/picup/pkg/storage/webdav"

	"go.uber.org/zap"
)

type Type = string
type CloudType = Type

const COS CloudType = "cos"
const OSS CloudType = "oss"
const R2 CloudType = "r2"
const S3 CloudType = "s3"
const MinIO CloudType = "minio"
const WebDAV CloudType = "webdav"
const LOCAL Type = "localfs"

var StorageTypeMap = map[Type]bool{
	COS:    true,
	OSS:    true,
	R2:     true,
	S3:     true,
	MinIO:  true,
	WebDAV: true,
	LOCAL:  true,
}

var ErrInvalidStorageType = errors.New("invalid storage type")

// Config Unified storage configuration
type Config struct {
	Type Type `yaml:"type"`

	// Common settings
	CustomDomain string `yaml:"custom-domain"`

	// Cloud Storage (COS/S3/OSS/MinIO/R2)
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	AccountID       string `yaml:"account-id"` // Cloudflare R2 specific

	// WebDAV
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	// Local FS
	SavePath string `yaml:"save-path"`
}

// Storager is the remote object store capability the uploader consumes.
type Storager interface {
	// Exists reports whether an object is present at fileKey. A backend
	// "not found" answer is (false, nil); anything else that keeps the
	// probe from completing is returned as an error.
	Exists(ctx context.Context, fileKey string) (bool, error)
	// PutFile streams file to fileKey.
	PutFile(ctx context.Context, fileKey string, file io.Reader, cType string) error
	// URL computes the public URL for fileKey without any network call.
	URL(fileKey string) string
}

// NewClient builds the backend client for the given configuration.
func NewClient(config *Config, logger *zap.Logger) (Storager, error) {
	if config == nil {
		return nil, ErrInvalidStorageType
	}

	switch config.Type {
	case COS:
		return tencent_cos.NewClient(&tencent_cos.Config{
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomDomain:    config.CustomDomain,
		}, tencent_cos.WithLogger(logger))
	case S3:
		return aws_s3.NewClient(&aws_s3.Config{
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomDomain:    config.CustomDomain,
		}, aws_s3.WithLogger(logger))
	case OSS:
		return aliyun_oss.NewClient(&aliyun_oss.Config{
			Endpoint:        config.Endpoint,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomDomain:    config.CustomDomain,
		})
	case R2:
		return cloudflare_r2.NewClient(&cloudflare_r2.Config{
			AccountID:       config.AccountID,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomDomain:    config.CustomDomain,
		}, cloudflare_r2.WithLogger(logger))
	case MinIO:
		return minio.NewClient(&minio.Config{
			Endpoint:        config.Endpoint,
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomDomain:    config.CustomDomain,
		}, minio.WithLogger(logger))
	case WebDAV:
		return webdav.NewClient(&webdav.Config{
			Endpoint:     config.Endpoint,
			User:         config.User,
			Password:     config.Password,
			CustomDomain: config.CustomDomain,
		})
	case LOCAL:
		return local_fs.NewClient(&local_fs.Config{
			SavePath:     config.SavePath,
			CustomDomain: config.CustomDomain,
		})
	}
	return nil, ErrInvalidStorageType
}
