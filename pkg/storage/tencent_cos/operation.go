package tencent_cos

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	cos "github.com/tencentyun/cos-go-sdk-v5"
)

// Exists probes the object with a HEAD request. The SDK maps a 404
// answer to (false, nil); every other failure propagates.
func (p *COS) Exists(ctx context.Context, fileKey string) (bool, error) {
	ok, err := p.Client.Object.IsExist(ctx, fileKey)
	if err != nil {
		return false, errors.Wrap(err, "tencent_cos")
	}
	return ok, nil
}

func (p *COS) PutFile(ctx context.Context, fileKey string, file io.Reader, cType string) error {
	opt := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType: cType,
		},
	}
	_, err := p.Client.Object.Put(ctx, fileKey, file, opt)
	if err != nil {
		return errors.Wrap(err, "tencent_cos")
	}
	return nil
}

func (p *COS) URL(fileKey string) string {
	if p.Config.CustomDomain != "" {
		return p.Config.CustomDomain + "/" + fileKey
	}
	return fmt.Sprintf("https://%s.cos.%s.myqcloud.com/%s", p.Config.BucketName, p.Config.Region, fileKey)
}
