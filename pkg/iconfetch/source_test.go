package iconfetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/illmade-knight/go-svgicon/pkg/icon"
	"github.com/illmade-knight/go-svgicon/pkg/iconfetch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the full response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(testSVG))
		}))
		t.Cleanup(server.Close)

		source := iconfetch.NewHTTPSource(server.Client(), zerolog.Nop())
		body, err := source.Fetch(ctx, server.URL)
		require.NoError(t, err)
		assert.Equal(t, []byte(testSVG), body)
	})

	t.Run("Non-success status wraps ErrFetchFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		t.Cleanup(server.Close)

		source := iconfetch.NewHTTPSource(server.Client(), zerolog.Nop())
		_, err := source.Fetch(ctx, server.URL)
		assert.ErrorIs(t, err, icon.ErrFetchFailure)
	})

	t.Run("Transport error wraps ErrFetchFailure", func(t *testing.T) {
		source := iconfetch.NewHTTPSource(nil, zerolog.Nop())
		_, err := source.Fetch(ctx, "http://127.0.0.1:1/unreachable.svg")
		assert.ErrorIs(t, err, icon.ErrFetchFailure)
	})
}
