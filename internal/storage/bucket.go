// Package storage wraps the S3-compatible object store (an R2-style bucket)
// behind the narrow interface the upload service needs.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/guestlistapp/guestlist-api/internal/config"
)

type BucketClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewBucketClient(conf *config.StorageConfig) (*BucketClient, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("minio.New -> %w", err)
	}

	return &BucketClient{
		client:    client,
		bucket:    conf.Bucket,
		publicURL: strings.TrimSuffix(conf.PublicURL, "/"),
	}, nil
}

// Put streams an object into the bucket and returns its public URL.
func (c *BucketClient) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := c.client.PutObject(ctx, c.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("c.client.PutObject -> %w", err)
	}

	return c.publicURL + "/" + key, nil
}
