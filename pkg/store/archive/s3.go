// Package archive copies generated reports to S3-compatible object storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Settings struct {
	Bucket string
	Region string
	Prefix string
	// Endpoint points at a non-AWS implementation (MinIO, R2). Path-style
	// addressing is used when it is set.
	Endpoint string
}

// ObjectPutter is the part of the S3 client the archive uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Archive interface {
	Store(ctx context.Context, name string, content []byte, contentType string) (string, error)
}

type s3Archive struct {
	client ObjectPutter
	bucket string
	prefix string
}

// New builds an archive from the default AWS credential chain.
func New(ctx context.Context, settings Settings) (Archive, error) {
	if settings.Bucket == "" {
		return nil, fmt.Errorf("archive bucket is required")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if settings.Region != "" {
		opts = append(opts, awsconfig.WithRegion(settings.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewWithClient(client, settings.Bucket, settings.Prefix), nil
}

func NewWithClient(client ObjectPutter, bucket, prefix string) Archive {
	return &s3Archive{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Store uploads content under <prefix>/<name> and returns the object key.
func (a *s3Archive) Store(ctx context.Context, name string, content []byte, contentType string) (string, error) {
	key := path.Base(name)
	if a.prefix != "" {
		key = a.prefix + "/" + key
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}
