//go:build integration

package iconstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/illmade-knight/go-svgicon/pkg/iconstore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirestoreStore_Integration(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set; skipping Firestore integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	client, err := firestore.NewClient(ctx, "svgicon-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store, err := iconstore.NewFirestoreStore(iconstore.FirestoreConfig{
		CollectionName: "icon-cache",
	}, client, zerolog.Nop())
	require.NoError(t, err)

	const url = "https://icons.example.com/boxicons/bx-anchor.svg"

	t.Run("Write and Fetch", func(t *testing.T) {
		data := []byte(`<svg viewBox="0 0 24 24"/>`)
		require.NoError(t, store.Write(ctx, url, data))

		got, err := store.Fetch(ctx, url)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("Fetch miss", func(t *testing.T) {
		_, err := store.Fetch(ctx, "https://icons.example.com/absent.svg")
		assert.ErrorIs(t, err, iconstore.ErrNotFound)
	})

	t.Run("Overwrite replaces the document", func(t *testing.T) {
		updated := []byte(`<svg viewBox="0 0 48 48"/>`)
		require.NoError(t, store.Write(ctx, url, updated))

		got, err := store.Fetch(ctx, url)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})
}
