package minio

import (
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/triply-app/triply-backend/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// Storage uploads objects to a MinIO bucket and derives their public URL
// from the client endpoint.
type Storage struct {
	client *minio.Client
	useSSL bool
}

func NewStorage(client *minio.Client, useSSL bool) *Storage {
	return &Storage{client: client, useSSL: useSSL}
}

func (s *Storage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return scheme + "://" + s.client.EndpointURL().Host + "/" + bucket + "/" + strings.TrimLeft(objectName, "/"), nil
}

var _ ports.ObjectStorage = (*Storage)(nil)
