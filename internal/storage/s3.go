package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pakricemarket/mandi-admin/constants"
	"github.com/pakricemarket/mandi-admin/internal/common"
)

// UploadResult carries both URLs for a published report. The presigned URL is
// the authoritative one: it works regardless of the bucket ACL. The public URL
// only resolves if the bucket permits public read.
type UploadResult struct {
	Key          string
	PublicURL    string
	PresignedURL string
}

// Publisher is the interface the report pipeline depends on.
type Publisher interface {
	Upload(ctx context.Context, filename string, pdf []byte) (UploadResult, error)
}

// S3Publisher uploads report PDFs under the mandi-pdfs/ prefix and signs a
// 7-day GET URL. It never deletes anything: expiry relies on a bucket
// lifecycle rule configured outside this application, so the 7-day figure is
// advisory from this code's point of view. Re-uploading the same date
// overwrites the prior object for that date.
type S3Publisher struct {
	cfg       common.StorageConfig
	client    *s3.Client
	presigner *s3.PresignClient
	log       *slog.Logger
	now       func() time.Time
}

func NewS3Publisher(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (*S3Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	awscfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awscfg)
	return &S3Publisher{
		cfg:       cfg,
		client:    client,
		presigner: s3.NewPresignClient(client),
		log:       logger,
		now:       time.Now,
	}, nil
}

// WithClock overrides the timestamp source used for object metadata.
func (p *S3Publisher) WithClock(now func() time.Time) *S3Publisher {
	p.now = now
	return p
}

// Upload puts the document and returns the public and presigned URLs.
// Single-shot; upload and signing failures propagate to the caller.
func (p *S3Publisher) Upload(ctx context.Context, filename string, pdf []byte) (UploadResult, error) {
	start := time.Now()
	key := ObjectKey(filename)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String(constants.PDFContentType),
		Metadata: map[string]string{
			"auto-delete": "7-days",
			"created-at":  p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		p.log.Error("storage.upload.failed", "key", key, "bytes", len(pdf), "error", err)
		return UploadResult{}, fmt.Errorf("put object: %w", err)
	}

	signed, err := p.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.cfg.Bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = constants.ReportTTL
	})
	if err != nil {
		p.log.Error("storage.presign.failed", "key", key, "error", err)
		return UploadResult{}, fmt.Errorf("presign get object: %w", err)
	}

	result := UploadResult{
		Key:          key,
		PublicURL:    ObjectURL(p.cfg.Bucket, p.cfg.Region, key),
		PresignedURL: signed.URL,
	}
	p.log.Info("storage.upload.ok",
		"key", key,
		"bytes", len(pdf),
		"url", result.PublicURL,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// ObjectKey prefixes a report filename with the mandi PDF folder.
func ObjectKey(filename string) string {
	return constants.PDFFolderPrefix + filename
}

// ObjectURL builds the direct S3 URL for a key. Only valid for readers if the
// bucket allows public read.
func ObjectURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
