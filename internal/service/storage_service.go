package service

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/ndishimyeemilien/job-connect/internal/config"
)

type StorageServiceInterface interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
}

// StorageService stores resume files in an S3-compatible bucket and hands
// back a presigned download URL.
type StorageService struct {
	client *minio.Client
	config *config.StorageConfig
}

func NewStorageService() (*StorageService, error) {
	cfg := config.LoadStorageConfig()
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("STORAGE_ENDPOINT not set")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &StorageService{client: client, config: cfg}, nil
}

func (s *StorageService) Upload(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, s.config.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	url, err := s.client.PresignedGetObject(ctx, s.config.Bucket, key, s.config.URLExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return url.String(), nil
}
