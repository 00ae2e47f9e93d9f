package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/minutemeet/pkg/config"
)

// MinIOClient wraps MinIO operations for transcript archival
type MinIOClient struct {
	client *minio.Client
	bucket string
}

// NewMinIOClient creates a new MinIO client and ensures the bucket exists
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx := context.Background()
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket when it does not exist yet
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// UploadFile uploads a file to MinIO
func (m *MinIOClient) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// ArchiveTranscript stores the raw transcript of a meeting and returns the
// object key it was written under
func (m *MinIOClient) ArchiveTranscript(ctx context.Context, meetingID, transcript string) (string, error) {
	objectName := fmt.Sprintf("meetings/%s/transcript.txt", meetingID)
	reader := bytes.NewReader([]byte(transcript))
	if err := m.UploadFile(ctx, objectName, reader, int64(len(transcript)), "text/plain"); err != nil {
		return "", err
	}
	return objectName, nil
}

// transcriptURLExpiry bounds how long a presigned transcript link stays valid
const transcriptURLExpiry = 15 * time.Minute

// TranscriptURL returns a short-lived presigned URL for an archived transcript
func (m *MinIOClient) TranscriptURL(ctx context.Context, objectName string) (string, error) {
	return m.GetFileURL(ctx, objectName, transcriptURLExpiry)
}

// GetFileURL gets a presigned URL for accessing an archived object
func (m *MinIOClient) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}
