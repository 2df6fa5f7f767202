package aliyun_oss

import (
	"context"
	"fmt"
	"io"

	oss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
)

// Exists probes the object. The SDK answers the not-found case without
// an error.
func (p *OSS) Exists(ctx context.Context, fileKey string) (bool, error) {
	ok, err := p.Bucket.IsObjectExist(fileKey)
	if err != nil {
		return false, errors.Wrap(err, "aliyun_oss")
	}
	return ok, nil
}

func (p *OSS) PutFile(ctx context.Context, fileKey string, file io.Reader, cType string) error {
	err := p.Bucket.PutObject(fileKey, file, oss.ContentType(cType))
	if err != nil {
		return errors.Wrap(err, "aliyun_oss")
	}
	return nil
}

func (p *OSS) URL(fileKey string) string {
	if p.Config.CustomDomain != "" {
		return p.Config.CustomDomain + "/" + fileKey
	}
	return fmt.Sprintf("https://%s.%s/%s", p.Config.BucketName, p.Config.Endpoint, fileKey)
}
