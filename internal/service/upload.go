package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/guestlistapp/guestlist-api/internal/domain"
)

// MaxUploadSize caps multipart uploads at 50 MB.
const MaxUploadSize = 50 << 20

var ErrUnsupportedMediaType = errors.New("only image and video uploads are accepted")

type Bucket interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

type UploadService struct {
	bucket Bucket
}

func NewUploadService(bucket Bucket) *UploadService {
	return &UploadService{
		bucket: bucket,
	}
}

// Upload proxies a single media file into object storage under a fresh
// uuid-based key. Non-media content types are rejected before any I/O.
func (s *UploadService) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (domain.UploadedFile, error) {
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return domain.UploadedFile{}, ErrUnsupportedMediaType
	}

	key := "uploads/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	url, err := s.bucket.Put(ctx, key, body, size, contentType)
	if err != nil {
		return domain.UploadedFile{}, fmt.Errorf("s.bucket.Put -> %w", err)
	}

	return domain.UploadedFile{
		URL:      url,
		Key:      key,
		Filename: filename,
		MimeType: contentType,
		Size:     size,
	}, nil
}
