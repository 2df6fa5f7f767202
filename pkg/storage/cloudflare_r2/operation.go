package cloudflare_r2

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	smithy "github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

func (p *R2) Exists(ctx context.Context, fileKey string) (bool, error) {
	_, err := p.S3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.Config.BucketName),
		Key:    aws.String(fileKey),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "cloudflare_r2")
	}
	return true, nil
}

func (p *R2) PutFile(ctx context.Context, fileKey string, file io.Reader, cType string) error {
	_, err := p.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.Config.BucketName),
		Key:         aws.String(fileKey),
		Body:        file,
		ContentType: aws.String(cType),
	})
	if err != nil {
		return errors.Wrap(err, "cloudflare_r2")
	}
	return nil
}

// URL prefers the custom domain; R2 buckets are not publicly reachable
// on the account endpoint, so without one the endpoint URL is a best
// effort only.
func (p *R2) URL(fileKey string) string {
	if p.Config.CustomDomain != "" {
		return p.Config.CustomDomain + "/" + fileKey
	}
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com/%s/%s", p.Config.AccountID, p.Config.BucketName, fileKey)
}

func isNotFound(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "404":
			return true
		}
	}
	return false
}
