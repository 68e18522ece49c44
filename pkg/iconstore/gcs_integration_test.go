//go:build integration

package iconstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/illmade-knight/go-svgicon/pkg/iconstore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestGCSStore_Integration(t *testing.T) {
	host := os.Getenv("STORAGE_EMULATOR_HOST")
	if host == "" {
		t.Skip("STORAGE_EMULATOR_HOST not set; skipping GCS integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	store, err := iconstore.NewGCSStore(ctx, iconstore.GCSConfig{
		BucketName:   "svgicon-test",
		ObjectPrefix: "icons/",
	}, zerolog.Nop(), option.WithoutAuthentication())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	const url = "https://icons.example.com/octicons/alert-24.svg"

	t.Run("Write and Fetch", func(t *testing.T) {
		data := []byte(`<svg viewBox="0 0 16 16"/>`)
		require.NoError(t, store.Write(ctx, url, data))

		got, err := store.Fetch(ctx, url)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("Fetch miss", func(t *testing.T) {
		_, err := store.Fetch(ctx, "https://icons.example.com/absent.svg")
		assert.ErrorIs(t, err, iconstore.ErrNotFound)
	})
}
