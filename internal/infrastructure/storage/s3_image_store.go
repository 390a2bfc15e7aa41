package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"packtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config holds the object-store settings for bill photographs.
type Config struct {
	Region          string
	Bucket          string
	Endpoint        string // optional; e.g. http://minio:9000 for local stacks
	AccessKeyID     string
	SecretAccessKey string
}

// ConfigFromEnv reads object-store settings from the environment. An empty
// BILL_IMAGES_BUCKET means the image store is not configured.
func ConfigFromEnv() Config {
	return Config{
		Region:          getenvDefault("AWS_REGION", "us-east-1"),
		Bucket:          os.Getenv("BILL_IMAGES_BUCKET"),
		Endpoint:        os.Getenv("S3_ENDPOINT"),
		AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
	}
}

// S3ImageStore stores bill photographs as JPEG objects in one bucket.
//
// Every upload gets a fresh object key, so replacing a bill's image yields a
// new URL and the gateway can delete the prior object by its old URL.

type S3ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IImageStore = (*S3ImageStore)(nil)

func NewS3ImageStore(ctx context.Context, cfg Config) (*S3ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("missing BILL_IMAGES_BUCKET")
	}

	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, err
	}

	var baseURL string
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	if cfg.Endpoint != "" {
		baseURL = fmt.Sprintf("%s/%s/", strings.TrimRight(cfg.Endpoint, "/"), cfg.Bucket)
	} else {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", cfg.Bucket, cfg.Region)
	}

	return &S3ImageStore{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

func (s *S3ImageStore) Upload(ctx context.Context, billID string, data []byte) (string, error) {
	key := fmt.Sprintf("bills/%s/%s.jpg", billID, uuid.NewString())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", err
	}
	return s.baseURL + key, nil
}

func (s *S3ImageStore) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		return fmt.Errorf("url %q is not owned by bucket %s", url, s.bucket)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// Owns reports whether the URL points into this bucket. Local data:
// placeholders and foreign URLs are left alone.
func (s *S3ImageStore) Owns(url string) bool {
	_, ok := s.keyFromURL(url)
	return ok
}

func (s *S3ImageStore) keyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, s.baseURL) {
		return "", false
	}
	key := strings.TrimPrefix(url, s.baseURL)
	if key == "" {
		return "", false
	}
	return key, true
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
