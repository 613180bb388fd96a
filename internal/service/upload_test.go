package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBucket struct {
	lastKey         string
	lastContentType string
	lastSize        int64
}

func (b *stubBucket) Put(_ context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}

	b.lastKey = key
	b.lastContentType = contentType
	b.lastSize = size

	return "https://media.example.com/" + key, nil
}

func TestUploadService_Upload(t *testing.T) {
	bucket := &stubBucket{}
	svc := NewUploadService(bucket)

	body := strings.NewReader("fake image bytes")
	uploaded, err := svc.Upload(context.Background(), "Poster.JPG", "image/jpeg", int64(body.Len()), body)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uploaded.Key, "uploads/"))
	assert.True(t, strings.HasSuffix(uploaded.Key, ".jpg"))
	assert.Equal(t, "https://media.example.com/"+uploaded.Key, uploaded.URL)
	assert.Equal(t, "Poster.JPG", uploaded.Filename)
	assert.Equal(t, "image/jpeg", uploaded.MimeType)
	assert.Equal(t, int64(16), uploaded.Size)

	assert.Equal(t, uploaded.Key, bucket.lastKey)
	assert.Equal(t, "image/jpeg", bucket.lastContentType)
}

func TestUploadService_Upload_AcceptsVideo(t *testing.T) {
	svc := NewUploadService(&stubBucket{})

	body := strings.NewReader("fake video bytes")
	uploaded, err := svc.Upload(context.Background(), "teaser.mp4", "video/mp4", int64(body.Len()), body)
	require.NoError(t, err)

	assert.Equal(t, "video/mp4", uploaded.MimeType)
}

func TestUploadService_Upload_RejectsOtherTypes(t *testing.T) {
	bucket := &stubBucket{}
	svc := NewUploadService(bucket)

	for _, contentType := range []string{"application/pdf", "text/html", "application/octet-stream", ""} {
		_, err := svc.Upload(context.Background(), "file.bin", contentType, 10, strings.NewReader("0123456789"))
		assert.ErrorIs(t, err, ErrUnsupportedMediaType, contentType)
	}

	// Rejection happens before any storage I/O.
	assert.Empty(t, bucket.lastKey)
}

func TestUploadService_Upload_UniqueKeys(t *testing.T) {
	bucket := &stubBucket{}
	svc := NewUploadService(bucket)

	first, err := svc.Upload(context.Background(), "a.png", "image/png", 1, strings.NewReader("x"))
	require.NoError(t, err)

	second, err := svc.Upload(context.Background(), "a.png", "image/png", 1, strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
}
