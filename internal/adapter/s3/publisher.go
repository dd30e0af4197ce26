package s3

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/couchcryptid/temperature-heatmap-service/internal/config"
	"github.com/couchcryptid/temperature-heatmap-service/internal/render"
)

const (
	pageObject = "index.html"
	svgObject  = "heatmap.svg"

	pageContentType = "text/html; charset=utf-8"
	svgContentType  = "image/svg+xml"
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads the rendered page and standalone SVG of a chart to an
// S3-compatible bucket under <prefix>/<chart id>/. It implements
// pipeline.Publisher.
type Publisher struct {
	client objectPutter
	bucket string
	prefix string
	logger *slog.Logger
}

// NewPublisher builds an S3 client from the default AWS configuration chain.
// Static credentials and a custom endpoint (MinIO, R2) override the chain
// when configured.
func NewPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Publisher, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Publisher{
		client: client,
		bucket: cfg.S3Bucket,
		prefix: strings.Trim(cfg.S3Prefix, "/"),
		logger: logger,
	}, nil
}

func (p *Publisher) Name() string { return "s3" }

// Publish writes index.html and heatmap.svg for the chart.
func (p *Publisher) Publish(ctx context.Context, chart *render.Chart) error {
	var page, doc bytes.Buffer
	if err := chart.WritePage(&page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := chart.WriteSVG(&doc); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}

	if err := p.put(ctx, p.key(chart.ID, pageObject), pageContentType, page.Bytes()); err != nil {
		return err
	}
	return p.put(ctx, p.key(chart.ID, svgObject), svgContentType, doc.Bytes())
}

func (p *Publisher) key(chartID, name string) string {
	if p.prefix == "" {
		return chartID + "/" + name
	}
	return p.prefix + "/" + chartID + "/" + name
}

func (p *Publisher) put(ctx context.Context, key, contentType string, body []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("s3 put object %s: %w", key, err)
	}
	p.logger.Debug("object uploaded", "bucket", p.bucket, "key", key, "bytes", len(body))
	return nil
}

// validateKey rejects object keys containing path traversal segments.
func validateKey(key string) error {
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return fmt.Errorf("path traversal detected in object key %q", key)
		}
	}
	return nil
}
