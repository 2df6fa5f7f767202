package aws_s3

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

// Exists probes the object with HeadObject. A NotFound answer is the
// expected non-error outcome; any other failure propagates.
func (p *S3) Exists(ctx context.Context, fileKey string) (bool, error) {
	_, err := p.S3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.Config.BucketName),
		Key:    aws.String(fileKey),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "aws_s3")
	}
	return true, nil
}

func (p *S3) PutFile(ctx context.Context, fileKey string, file io.Reader, cType string) error {
	_, err := p.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.Config.BucketName),
		Key:         aws.String(fileKey),
		Body:        file,
		ContentType: aws.String(cType),
	})
	if err != nil {
		return errors.Wrap(err, "aws_s3")
	}
	return nil
}

func (p *S3) URL(fileKey string) string {
	if p.Config.CustomDomain != "" {
		return p.Config.CustomDomain + "/" + fileKey
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.Config.BucketName, p.Config.Region, fileKey)
}

// isNotFound classifies the HeadObject errors that mean "no such
// object" as opposed to transport or auth failures.
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
