// Package storage provides a MinIO-backed object store for listing images.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/campusmart/campusmart/pkg/config"
	"github.com/campusmart/campusmart/pkg/logger"
)

// PresignedURLExpiry is how long a generated image download link stays valid.
const PresignedURLExpiry = 15 * time.Minute

// ImageStore stores listing images in a MinIO bucket.
// Object keys are "listings/<uuid><ext>"; the key (not a URL) is persisted
// with the listing so the endpoint can change without rewriting rows.
type ImageStore struct {
	client *minio.Client
	bucket string
	log    logger.Logger
}

// NewImageStore creates a MinIO client from config and ensures the bucket exists.
func NewImageStore(cfg *config.Config, log logger.Logger) (*ImageStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioRootUser, cfg.MinioRootPassword, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: new minio client: %w", err)
	}

	s := &ImageStore{client: client, bucket: cfg.MinioBucket, log: log}
	if err := s.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ImageStore) ensureBucket(ctx context.Context) error {
	err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	if err != nil {
		// MakeBucket races with other instances at startup; tolerate "already exists".
		exists, existsErr := s.client.BucketExists(ctx, s.bucket)
		if existsErr != nil || !exists {
			return fmt.Errorf("storage: ensure bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// Upload stores image data and returns the object key to persist with the listing.
// The original filename contributes only its extension; the key itself is a UUID.
func (s *ImageStore) Upload(ctx context.Context, originalFilename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("listings/%s%s", uuid.New(), filepath.Ext(originalFilename))

	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("storage: put object %s: %w", key, err)
	}

	s.log.InfoContext(ctx, "storage: image uploaded",
		"bucket", info.Bucket, "key", info.Key, "size", info.Size)
	return key, nil
}

// URL returns a presigned GET URL for the given object key.
func (s *ImageStore) URL(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, PresignedURLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("storage: presign %s: %w", key, err)
	}
	return u.String(), nil
}

// Delete removes an image object. Missing objects are not an error.
func (s *ImageStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: remove object %s: %w", key, err)
	}
	return nil
}
