package infra

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/RamonMR95/auto-api/config"
)

// MinioClient stores country flag images. Uploaded flags are publicly
// readable so the flag_url column can point straight at the object.
type MinioClient struct {
	Client     *minio.Client
	Endpoint   string
	FlagBucket string
	UseSSL     bool
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		log.Printf("MinIO endpoint is not configured")
		return nil
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.RootUser, cfg.Minio.RootPassword, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Printf("Failed to initialize MinIO client: %v", err)
		return nil
	}

	return &MinioClient{
		Client:     client,
		Endpoint:   endpoint,
		FlagBucket: cfg.Minio.FlagBucket,
		UseSSL:     cfg.Minio.UseSSL,
	}
}

// EnsureFlagBucket creates the flag bucket when it does not exist yet.
func (m *MinioClient) EnsureFlagBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.FlagBucket)
	if err != nil {
		return fmt.Errorf("failed to check flag bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.Client.MakeBucket(ctx, m.FlagBucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create flag bucket: %w", err)
	}
	return nil
}

// UploadFlag stores a flag image under the given object name and returns the
// URL to store in the country row.
func (m *MinioClient) UploadFlag(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := m.Client.PutObject(ctx, m.FlagBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload flag image: %w", err)
	}

	scheme := "http"
	if m.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.Endpoint, m.FlagBucket, objectName), nil
}
