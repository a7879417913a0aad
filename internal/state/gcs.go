package state

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/priyanshujain/buildsource/internal/auth"
)

// GCSBackend publishes templates to Google Cloud Storage
type GCSBackend struct {
	client     *storage.Client
	bucketName string
}

func NewGCSBackend(ctx context.Context, opts auth.GoogleAuthOptions, bucketName string) (*GCSBackend, error) {
	clientOpts, err := auth.GoogleClientOptions(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load google credentials: %w", err)
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSBackend{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func (b *GCSBackend) Get(ctx context.Context, key string) ([]byte, error) {
	reader, err := b.client.Bucket(b.bucketName).Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read template from GCS: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read template data: %w", err)
	}
	return data, nil
}

func (b *GCSBackend) Put(ctx context.Context, key string, data []byte) error {
	w := b.client.Bucket(b.bucketName).Object(key).NewWriter(ctx)
	w.ContentType = contentType(key)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write template to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write template to GCS: %w", err)
	}
	return nil
}

// Close closes the GCS client
func (b *GCSBackend) Close() error {
	return b.client.Close()
}
