package iconfetch_test

import (
	"testing"

	"github.com/illmade-knight/go-svgicon/pkg/icon"
	"github.com/illmade-knight/go-svgicon/pkg/iconfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("Resolve is deterministic", func(t *testing.T) {
		registry := iconfetch.NewRegistry()

		first, err := registry.Resolve("material", "home")
		require.NoError(t, err)
		second, err := registry.Resolve("material", "home")
		require.NoError(t, err)

		assert.Equal(t, first, second, "identical inputs must address the same cache slot")
		assert.Contains(t, first, "home")
	})

	t.Run("Unknown collection", func(t *testing.T) {
		registry := iconfetch.NewRegistry()

		_, err := registry.Resolve("no-such-collection", "home")
		assert.ErrorIs(t, err, icon.ErrUnknownCollection)
	})

	t.Run("Register extends the defaults", func(t *testing.T) {
		registry := iconfetch.NewRegistry()
		require.NoError(t, registry.Register("corporate", "https://icons.corp.example/%s.svg"))

		url, err := registry.Resolve("corporate", "logo")
		require.NoError(t, err)
		assert.Equal(t, "https://icons.corp.example/logo.svg", url)
	})

	t.Run("Register replaces an existing template", func(t *testing.T) {
		registry := iconfetch.NewRegistry()
		require.NoError(t, registry.Register("material", "https://mirror.example/%s.svg"))

		url, err := registry.Resolve("material", "home")
		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example/home.svg", url)
	})

	t.Run("Template validation", func(t *testing.T) {
		registry := iconfetch.NewEmptyRegistry()

		assert.Error(t, registry.Register("bad", "https://example.com/icons/"), "no substitution site")
		assert.Error(t, registry.Register("bad", "https://example.com/%s/%s.svg"), "two substitution sites")
		assert.Error(t, registry.Register("bad", "https://example.com/%d/%s.svg"), "foreign directive")
		assert.Error(t, registry.Register("bad", "https://example.com/%%s.svg"), "escaped percent is not a substitution site")
		assert.Error(t, registry.Register("bad", "https://example.com/%%/%s.svg"), "stray escaped percent")
		assert.Error(t, registry.Register("", "https://example.com/%s.svg"), "empty name")
	})

	t.Run("Empty registry knows nothing", func(t *testing.T) {
		registry := iconfetch.NewEmptyRegistry()
		assert.Empty(t, registry.Collections())

		_, err := registry.Resolve("material", "home")
		assert.ErrorIs(t, err, icon.ErrUnknownCollection)
	})
}
