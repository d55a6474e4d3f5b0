package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Service uploads files to Amazon S3 (or compatible APIs).
type S3Service struct {
	uploader      uploader
	bucket        string
	publicBaseURL string
}

// NewS3Service returns an S3Service writing into bucket. When publicBaseURL is
// set, returned URLs are "<publicBaseURL>/<key>"; otherwise the location
// reported by S3 is used.
func NewS3Service(client *s3.Client, bucket, publicBaseURL string) *S3Service {
	return newS3Service(manager.NewUploader(client), bucket, publicBaseURL)
}

func newS3Service(up uploader, bucket, publicBaseURL string) *S3Service {
	return &S3Service{
		uploader:      up,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *S3Service) Upload(ctx context.Context, in UploadInput) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("storage bucket is required")
	}
	if strings.TrimSpace(in.Key) == "" {
		return "", fmt.Errorf("object key is required")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(in.Key),
		Body:   in.Body,
		ACL:    types.ObjectCannedACLPublicRead,
	}
	if in.ContentType != "" {
		input.ContentType = aws.String(in.ContentType)
	}

	out, err := s.uploader.Upload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", in.Key, err)
	}

	return s.objectURL(in.Key, out), nil
}

func (s *S3Service) objectURL(key string, out *manager.UploadOutput) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	if out != nil && out.Location != "" {
		return out.Location
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key)
}

var _ Service = (*S3Service)(nil)
