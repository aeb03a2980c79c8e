package services

import (
	"bytes"
	"context"
	"fmt"
	"log"

	appconfig "rental-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ArchiveService uploads generated receipts to S3-compatible object
// storage. When the archive is not configured every call is a no-op, so
// receipt generation never depends on it.
type ArchiveService struct {
	cfg    *appconfig.Config
	client *s3.Client
}

func NewArchiveService(cfg *appconfig.Config) *ArchiveService {
	s := &ArchiveService{cfg: cfg}
	if !cfg.Archive.Enabled {
		log.Printf("[Archive] Not configured, receipts will not be archived")
		return s
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Archive.Region),
	)
	if err != nil {
		log.Printf("[Archive] Failed to configure client: %v", err)
		return s
	}

	s.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
	})
	return s
}

// StoreReceipt uploads a receipt PDF under receipts/<tenant>/<payment>.pdf.
// Failures are logged, not returned; the receipt was already served.
func (s *ArchiveService) StoreReceipt(ctx context.Context, tenantID, paymentID int, pdf []byte) {
	if s.client == nil {
		return
	}

	key := fmt.Sprintf("receipts/%d/payment_%d.pdf", tenantID, paymentID)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Archive.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		log.Printf("[Archive] Failed to upload %s: %v", key, err)
		return
	}
	log.Printf("[Archive] Stored %s (%d bytes)", key, len(pdf))
}
