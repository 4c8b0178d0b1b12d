package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/triply-app/triply-backend/internal/media"
	"github.com/triply-app/triply-backend/internal/repository/ports"
)

var (
	ErrImageRequired        = errors.New("image file required")
	ErrImageTooLarge        = errors.New("image exceeds maximum size")
	ErrImageUnsupportedType = errors.New("unsupported image content type")
)

var supportedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type ImageUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type ImageServiceConfig struct {
	Bucket        string
	PublicBaseURL string
	MaxBytes      int64
	MaxDimension  int
}

// ImageService turns uploaded image blobs into durable URLs. Itinerary
// creation consumes those URLs as opaque strings; nothing downstream ever
// inspects them.
type ImageService struct {
	storage   ports.ObjectStorage
	processor media.Processor
	cfg       ImageServiceConfig
	now       func() time.Time
}

func NewImageService(storage ports.ObjectStorage, processor media.Processor, cfg ImageServiceConfig) *ImageService {
	return &ImageService{
		storage:   storage,
		processor: processor,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *ImageService) Upload(ctx context.Context, upload ImageUpload) (string, error) {
	if upload.Reader == nil || upload.Size <= 0 {
		return "", ErrImageRequired
	}
	if s.cfg.MaxBytes > 0 && upload.Size > s.cfg.MaxBytes {
		return "", ErrImageTooLarge
	}

	contentType := media.NormalizeContentType(upload.ContentType, upload.FileName)
	if _, ok := supportedImageTypes[contentType]; !ok {
		return "", fmt.Errorf("%w: %s", ErrImageUnsupportedType, contentType)
	}

	reader, size, contentType, err := s.prepare(ctx, upload, contentType)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("itineraries/%s/%s%s",
		s.now().UTC().Format("20060102"),
		uuid.NewString(),
		extensionFor(contentType),
	)

	url, err := s.storage.Upload(ctx, s.cfg.Bucket, objectKey, contentType, reader, size)
	if err != nil {
		return "", err
	}
	if s.cfg.PublicBaseURL != "" {
		url = strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + objectKey
	}
	return url, nil
}

func (s *ImageService) prepare(ctx context.Context, upload ImageUpload, contentType string) (io.Reader, int64, string, error) {
	if s.processor == nil {
		return upload.Reader, upload.Size, contentType, nil
	}
	result, err := s.processor.Process(ctx, media.Upload{
		Reader:      upload.Reader,
		Size:        upload.Size,
		FileName:    upload.FileName,
		ContentType: contentType,
	}, s.cfg.MaxDimension)
	if err != nil {
		return nil, 0, "", err
	}
	return bytes.NewReader(result.Bytes), int64(len(result.Bytes)), result.ContentType, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
