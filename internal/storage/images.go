package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/shenikar/civic_reporting_system/internal/service"
)

// ImageStorage загружает фотографии обращений в бакет MinIO
type ImageStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewImageStorage - publicURL задает адрес, по которому бакет доступен клиентам.
// Если он пуст, используется endpoint самого клиента.
func NewImageStorage(client *minio.Client, bucket, publicURL string) service.BlobStorage {
	baseURL := strings.TrimRight(publicURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(client.EndpointURL().String(), "/")
	}
	return &ImageStorage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Upload сохраняет объект и возвращает его постоянный URL
func (s *ImageStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}
	return s.objectURL(objectName), nil
}

func (s *ImageStorage) objectURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, strings.TrimLeft(objectName, "/"))
}
