package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/recipeshelf/backend/config"
	"github.com/recipeshelf/backend/internal/types"
)

// ImageService stores recipe images in S3 and hands back public URLs. Uploads
// are retried a few times with a short backoff; the blob store gives no
// contract about transient failures, so a single attempt would be fragile.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Upload writes the image bytes under the destination hint (a key prefix) and
// returns the public URL. Fails with types.ErrUploadFailed after exhausting
// retries; the caller must not commit any record pointing at the missing
// object.
func (s *ImageService) Upload(ctx context.Context, data []byte, destinationHint string) (string, error) {
	const maxRetries = 3

	key := fmt.Sprintf("%s/%s.png", destinationHint, uuid.New().String())

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		url, err := s.putObject(ctx, data, key)
		if err == nil {
			return url, nil
		}
		lastErr = err
		log.Printf("[ImageService] Upload attempt %d/%d failed: %v", attempt, maxRetries, err)

		if attempt < maxRetries {
			select {
			case <-time.After(time.Duration(attempt) * time.Second):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", types.ErrUploadFailed, ctx.Err())
			}
		}
	}
	return "", fmt.Errorf("%w: %v", types.ErrUploadFailed, lastErr)
}

func (s *ImageService) putObject(ctx context.Context, data []byte, key string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[ImageService] Successfully uploaded image to S3: %s", publicURL)

	return publicURL, nil
}
