package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// S3AvatarStorage implements domain.AvatarStorage against an S3-compatible
// object store (AWS S3 or MinIO via a custom endpoint).
type S3AvatarStorage struct {
	region    string
	bucket    string
	endpoint  string
	accessKey string
	secretKey string
	publicURL string
}

// NewS3AvatarStorage creates a new S3-backed avatar storage
func NewS3AvatarStorage(region, bucket, endpoint, accessKey, secretKey, publicURL string) domain.AvatarStorage {
	return &S3AvatarStorage{
		region:    region,
		bucket:    bucket,
		endpoint:  endpoint,
		accessKey: accessKey,
		secretKey: secretKey,
		publicURL: publicURL,
	}
}

func (s *S3AvatarStorage) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.accessKey,
			s.secretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.endpoint != "" {
			o.BaseEndpoint = aws.String(s.endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Upload implements domain.AvatarStorage. The object key embeds the owner
// so old avatars of other users are never overwritten.
func (s *S3AvatarStorage) Upload(ctx context.Context, file io.Reader, size int64, owner string) (string, error) {
	client, err := s.client(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to build S3 client: %w", err)
	}

	key := fmt.Sprintf("avatars/%s/%s", owner, uuid.New())
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(s.publicURL, "/"), key), nil
}
