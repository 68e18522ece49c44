package iconfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/illmade-knight/go-svgicon/pkg/icon"
	"github.com/rs/zerolog"
)

// Source is the network side of the pipeline: it fetches raw icon bytes for
// a resolved URL.
type Source interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPSource fetches icons over HTTP. It performs a single blocking GET per
// call: no retries, and no timeout beyond whatever the injected client
// carries.
type HTTPSource struct {
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPSource creates a source over the given client. A nil client falls
// back to http.DefaultClient.
func NewHTTPSource(client *http.Client, logger zerolog.Logger) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		client: client,
		logger: logger.With().Str("component", "HTTPSource").Logger(),
	}
}

// Fetch GETs the URL and returns the full response body. Transport errors
// and non-2xx statuses wrap icon.ErrFetchFailure.
func (s *HTTPSource) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", icon.ErrFetchFailure, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", icon.ErrFetchFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned status %d", icon.ErrFetchFailure, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", icon.ErrFetchFailure, err)
	}

	s.logger.Debug().Str("url", url).Int("bytes", len(body)).Msg("Fetched icon from source.")
	return body, nil
}
