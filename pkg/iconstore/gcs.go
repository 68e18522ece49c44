package iconstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// GCSConfig holds configuration for the GCS-backed store.
type GCSConfig struct {
	BucketName string
	// ObjectPrefix is prepended to every object name, e.g. "icons/".
	ObjectPrefix string
}

// GCSStore keeps icon bytes as objects in a Google Cloud Storage bucket,
// named by the hashed URL under an optional prefix.
type GCSStore struct {
	client GCSClient
	cfg    GCSConfig
	logger zerolog.Logger
	closer io.Closer
}

// NewGCSStore creates a store backed by a new *storage.Client, which it owns
// and closes on Close. Client options are forwarded, which lets tests point
// the store at an emulator.
func NewGCSStore(ctx context.Context, cfg GCSConfig, logger zerolog.Logger, opts ...option.ClientOption) (*GCSStore, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	store := NewGCSStoreWithClient(NewGCSClientAdapter(client), cfg, logger)
	store.closer = client
	return store, nil
}

// NewGCSStoreWithClient creates a store over an injected client abstraction.
// The caller retains ownership of the underlying client's lifecycle.
func NewGCSStoreWithClient(client GCSClient, cfg GCSConfig, logger zerolog.Logger) *GCSStore {
	return &GCSStore{
		client: client,
		cfg:    cfg,
		logger: logger.With().Str("component", "GCSStore").Str("bucket", cfg.BucketName).Logger(),
	}
}

// Fetch reads the object for the URL. A missing object maps to ErrNotFound.
func (s *GCSStore) Fetch(ctx context.Context, url string) ([]byte, error) {
	reader, err := s.client.Bucket(s.cfg.BucketName).Object(s.objectName(url)).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open gcs object: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read gcs object: %w", err)
	}

	s.logger.Debug().Str("url", url).Msg("GCS store hit.")
	return data, nil
}

// Write uploads the entry, replacing any existing object for the URL.
func (s *GCSStore) Write(ctx context.Context, url string, data []byte) error {
	writer := s.client.Bucket(s.cfg.BucketName).Object(s.objectName(url)).NewWriter(ctx)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("write gcs object: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize gcs object: %w", err)
	}

	s.logger.Debug().Str("url", url).Int("bytes", len(data)).Msg("Stored icon in GCS.")
	return nil
}

// Close closes the owned storage client, if any.
func (s *GCSStore) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func (s *GCSStore) objectName(url string) string {
	return s.cfg.ObjectPrefix + objectKey(url) + ".svg"
}
