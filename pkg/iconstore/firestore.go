package iconstore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreConfig holds configuration for the Firestore-backed store.
type FirestoreConfig struct {
	CollectionName string
}

// firestoreEntry is the document stored per icon. Icon documents are tiny,
// well under the Firestore per-document limit.
type firestoreEntry struct {
	URL      string    `firestore:"url"`
	Data     []byte    `firestore:"data"`
	CachedAt time.Time `firestore:"cached_at"`
}

// FirestoreStore keeps icon bytes as Firestore documents keyed by the hashed
// URL. Suited to low-volume deployments that already run on Firestore;
// high-volume shared caches belong in Redis.
type FirestoreStore struct {
	client *firestore.Client
	cfg    FirestoreConfig
	logger zerolog.Logger
}

// NewFirestoreStore creates a store over an injected Firestore client. The
// client's lifecycle is managed by the caller.
func NewFirestoreStore(cfg FirestoreConfig, client *firestore.Client, logger zerolog.Logger) (*FirestoreStore, error) {
	if client == nil {
		return nil, fmt.Errorf("firestore client cannot be nil")
	}
	if cfg.CollectionName == "" {
		return nil, fmt.Errorf("firestore collection name cannot be empty")
	}

	return &FirestoreStore{
		client: client,
		cfg:    cfg,
		logger: logger.With().Str("component", "FirestoreStore").Logger(),
	}, nil
}

// Fetch retrieves a single icon document by URL.
func (s *FirestoreStore) Fetch(ctx context.Context, url string) ([]byte, error) {
	snap, err := s.client.Collection(s.cfg.CollectionName).Doc(objectKey(url)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("url", url).Msg("Failed to get icon document from Firestore.")
		return nil, fmt.Errorf("firestore get: %w", err)
	}

	var entry firestoreEntry
	if err := snap.DataTo(&entry); err != nil {
		s.logger.Error().Err(err).Str("url", url).Msg("Failed to map Firestore document data.")
		return nil, fmt.Errorf("firestore DataTo: %w", err)
	}

	s.logger.Debug().Str("url", url).Msg("Firestore store hit.")
	return entry.Data, nil
}

// Write stores the entry, overwriting any existing document for the URL.
func (s *FirestoreStore) Write(ctx context.Context, url string, data []byte) error {
	entry := firestoreEntry{URL: url, Data: data, CachedAt: time.Now().UTC()}
	if _, err := s.client.Collection(s.cfg.CollectionName).Doc(objectKey(url)).Set(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("url", url).Msg("Failed to write icon document to Firestore.")
		return fmt.Errorf("firestore set: %w", err)
	}
	return nil
}

// Close is a no-op; the injected Firestore client is managed externally.
func (s *FirestoreStore) Close() error {
	return nil
}
