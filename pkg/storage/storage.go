package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Store persists rendered artifacts and returns a URL they can be fetched from.
type Store interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// Config selects and configures the backing store
type Config struct {
	Driver string // "local" or "s3"

	// Local
	Dir       string
	BaseURL   string
	URLPrefix string

	// S3
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Prefix          string
}

// New builds the store selected by cfg.Driver
func New(cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "s3":
		return NewS3Store(cfg)
	case "", "local":
		return NewLocalStore(cfg.Dir, cfg.BaseURL, cfg.URLPrefix)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// LocalStore writes files into a directory served as static assets
type LocalStore struct {
	dir       string
	baseURL   string
	urlPrefix string
}

func NewLocalStore(dir, baseURL, urlPrefix string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("local storage directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{
		dir:       dir,
		baseURL:   strings.TrimRight(baseURL, "/"),
		urlPrefix: strings.Trim(urlPrefix, "/"),
	}, nil
}

func (s *LocalStore) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	// Directory may have been removed since startup.
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if s.urlPrefix == "" {
		return fmt.Sprintf("%s/%s", s.baseURL, name), nil
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.urlPrefix, name), nil
}

// S3Store uploads files to an S3 bucket
type S3Store struct {
	uploader *s3manager.Uploader
	bucket   string
	prefix   string
}

func NewS3Store(cfg Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket name not configured")
	}

	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Store{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		prefix:   strings.Trim(cfg.Prefix, "/"),
	}, nil
}

func (s *S3Store) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := name
	if s.prefix != "" {
		key = s.prefix + "/" + name
	}

	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return out.Location, nil
}
