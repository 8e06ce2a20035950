package objectstore

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store is the narrow surface of the external object store used for images.
type Store interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	Ping(ctx context.Context) error
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Insecure  bool
	// PublicURL is the base that object keys are appended to; defaults to
	// <scheme>://<endpoint>/<bucket>.
	PublicURL string
}

type MinioStore struct {
	client    *minioSDK.Client
	bucket    string
	publicURL string
}

// NewMinioStore connects and makes sure the bucket exists.
func NewMinioStore(ctx context.Context, cfg Config) (*MinioStore, error) {
	opts := &minioSDK.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	}
	if cfg.Insecure {
		opts.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	client, err := minioSDK.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to object store: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	public := cfg.PublicURL
	if public == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		public = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(public, "/"),
	}, nil
}

func (s *MinioStore) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("object key cannot be empty")
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minioSDK.RemoveObjectOptions{})
}

func (s *MinioStore) PublicURL(key string) string {
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}

func (s *MinioStore) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}
