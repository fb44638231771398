package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"agentcard/internal/config"
)

// MinIOStorage implements Uploader on a MinIO (or S3-compatible) backend.
// The bucket is public-read, so the returned URLs stay fetchable without the
// application proxying file bytes.
type MinIOStorage struct {
	client *minio.Client
	bucket string
	useSSL bool
}

// NewMinIOStorage initializes the client and makes sure the bucket exists.
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
		useSSL: cfg.UseSSL,
	}, nil
}

func (s *MinIOStorage) Available() bool { return true }

// Upload stores the stream and returns its public URL. The key embeds a date
// partition and a random token, so unrelated uploads never overwrite each
// other even with identical original filenames.
func (s *MinIOStorage) Upload(ctx context.Context, r io.Reader, size int64, fileName, contentType, folder string) (string, error) {
	key := objectKey(folder, fileName, time.Now())

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key), nil
}

// objectKey builds "{folder}/{yyyy}/{mm}/{dd}/{uuid}{ext}".
func objectKey(folder, fileName string, now time.Time) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("%s/%s/%s%s", folder, now.Format("2006/01/02"), uuid.NewString(), ext)
}
