package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mmpl/league-api/config"
)

// R2Storage keeps media in an S3-compatible Cloudflare R2 bucket, for
// deployments where the API boxes have no shared disk.
type R2Storage struct {
	client *s3.Client
	bucket string
}

func NewR2Storage(cfg *config.StorageConfig) *R2Storage {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &R2Storage{client: client, bucket: cfg.BucketName}
}

func (s *R2Storage) Exists(ctx context.Context, name string) bool {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	return err == nil
}

func (s *R2Storage) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	return nil
}

// Delete removes the object. S3 delete is idempotent, so a missing key is
// indistinguishable from success here.
func (s *R2Storage) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", name, err)
	}
	return nil
}

// ForConfig picks the storage backend for the deployment's configuration.
func ForConfig(cfg *config.StorageConfig) Storage {
	if cfg.Backend == "r2" {
		return NewR2Storage(cfg)
	}
	return NewLocalStorage(cfg.MediaRoot)
}
