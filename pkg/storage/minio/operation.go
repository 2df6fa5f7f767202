package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	smithy "github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

func (p *MinIO) Exists(ctx context.Context, fileKey string) (bool, error) {
	_, err := p.S3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.Config.BucketName),
		Key:    aws.String(fileKey),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "minio")
	}
	return true, nil
}

func (p *MinIO) PutFile(ctx context.Context, fileKey string, file io.Reader, cType string) error {
	_, err := p.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.Config.BucketName),
		Key:         aws.String(fileKey),
		Body:        file,
		ContentType: aws.String(cType),
	})
	if err != nil {
		return errors.Wrap(err, "minio")
	}
	return nil
}

func (p *MinIO) URL(fileKey string) string {
	if p.Config.CustomDomain != "" {
		return p.Config.CustomDomain + "/" + fileKey
	}
	endpoint := strings.TrimSuffix(p.Config.Endpoint, "/")
	return fmt.Sprintf("%s/%s/%s", endpoint, p.Config.BucketName, fileKey)
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
