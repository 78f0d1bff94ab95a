// Package minio serves static application assets from a MinIO bucket.
package minio

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/chirpy-server/internal/config"
	"github.com/dtroode/chirpy-server/internal/model"
)

//go:embed defaults
var defaults embed.FS

const defaultsDir = "defaults"

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// Wrapper to adapt *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}
func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}
func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}
func (w minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := w.c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}
func (w minioClientWrapper) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return w.c.StatObject(ctx, bucketName, objectName, opts)
}

var _ model.AssetStorage = (*Client)(nil)

type Client struct {
	api    minioAPI
	bucket string
}

// Connect dials MinIO with cfg and prepares the asset bucket.
func Connect(ctx context.Context, cfg config.Storage) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return NewClient(ctx, mc, cfg.Bucket)
}

// NewClient creates a new MinIO storage client using a real *minio.Client instance.
func NewClient(ctx context.Context, client *minio.Client, bucket string) (*Client, error) {
	return NewClientWithAPI(ctx, minioClientWrapper{c: client}, bucket)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket string) (*Client, error) {
	c := &Client{
		api:    api,
		bucket: bucket,
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	if err := c.seedDefaults(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed default assets: %w", err)
	}

	return c, nil
}

// ensureBucketExists creates the bucket if it doesn't exist
func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// seedDefaults uploads bundled assets that are missing from the bucket.
// Existing objects are never overwritten.
func (c *Client) seedDefaults(ctx context.Context) error {
	return fs.WalkDir(defaults, defaultsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		key := p[len(defaultsDir)+1:]
		if _, err := c.stat(ctx, key); err == nil {
			return nil
		} else if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		data, err := fs.ReadFile(defaults, p)
		if err != nil {
			return fmt.Errorf("failed to read bundled asset %s: %w", key, err)
		}

		_, err = c.api.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType(key),
		})
		if err != nil {
			return fmt.Errorf("failed to upload object: %w", err)
		}
		return nil
	})
}

// Open returns the object stored under key.
func (c *Client) Open(ctx context.Context, key string) (model.Asset, error) {
	info, err := c.stat(ctx, key)
	if err != nil {
		return model.Asset{}, err
	}

	obj, err := c.api.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to get object: %w", err)
	}

	ct := info.ContentType
	if ct == "" || ct == "application/octet-stream" {
		if guessed := contentType(key); guessed != "" {
			ct = guessed
		}
	}

	return model.Asset{
		Body:         obj,
		ContentType:  ct,
		Size:         info.Size,
		LastModified: info.LastModified,
	}, nil
}

func (c *Client) stat(ctx context.Context, key string) (minio.ObjectInfo, error) {
	info, err := c.api.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return minio.ObjectInfo{}, model.ErrNotFound
		}
		return minio.ObjectInfo{}, fmt.Errorf("failed to stat object: %w", err)
	}
	return info, nil
}

func contentType(key string) string {
	return mime.TypeByExtension(path.Ext(key))
}
