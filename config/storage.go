package config

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectGetter is the part of the S3 client used to read catalog snapshots.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     ObjectGetter
	BucketName string
}

// NewS3Config initializes the S3 client for the catalog bucket
func NewS3Config(ctx context.Context, cfg *Config) (*S3Config, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg, endpointOptions(cfg)),
		BucketName: cfg.CatalogS3Bucket,
	}, nil
}

// loadAWSConfig loads AWS config from environment or shared config, with
// static credentials when a key pair is configured.
func loadAWSConfig(ctx context.Context, cfg *Config) (aws.Config, error) {
	region := cfg.AWSRegion
	if region == "" && cfg.CatalogS3Endpoint != "" {
		region = "auto"
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.CatalogS3AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.CatalogS3AccessKey, cfg.CatalogS3SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}
	return awsCfg, nil
}

func endpointOptions(cfg *Config) func(*s3.Options) {
	return func(o *s3.Options) {
		if cfg.CatalogS3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.CatalogS3Endpoint)
			o.UsePathStyle = true
		}
	}
}

// FetchObject downloads the object stored under key.
func (s *S3Config) FetchObject(ctx context.Context, key string) ([]byte, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.BucketName, key, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", s.BucketName, key, err)
	}
	return raw, nil
}
