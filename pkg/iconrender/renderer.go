// Package iconrender turns fetched icon documents into fixed-footprint,
// recolored SVG images. Every icon is normalized to a 2×1 character-cell
// footprint before an optional integer zoom, so icons compose inline with
// text regardless of their native aspect ratio.
package iconrender

import (
	"context"
	"fmt"
	"math"

	"github.com/illmade-knight/go-svgicon/pkg/icon"
	"github.com/illmade-knight/go-svgicon/pkg/iconfetch"
	"github.com/rs/zerolog"
)

// GlyphMetrics is the host environment's character cell size in device
// pixels. The embedding environment supplies it; the renderer only reads it.
type GlyphMetrics struct {
	CellWidth  int
	CellHeight int
}

// Config holds the renderer's ambient settings.
type Config struct {
	Metrics GlyphMetrics
	// DefaultForeground is used when a render call requests no foreground.
	// Empty means black.
	DefaultForeground string
	// Theme supplies named foreground/background pairs for color
	// resolution. May be nil.
	Theme Theme
}

// Renderer renders icons obtained through a Fetcher.
type Renderer struct {
	cfg     Config
	fetcher *iconfetch.Fetcher
	logger  zerolog.Logger
}

// NewRenderer creates a renderer. Glyph metrics must be positive in both
// dimensions.
func NewRenderer(cfg Config, fetcher *iconfetch.Fetcher, logger zerolog.Logger) (*Renderer, error) {
	if cfg.Metrics.CellWidth <= 0 || cfg.Metrics.CellHeight <= 0 {
		return nil, fmt.Errorf("glyph metrics must be positive, got %dx%d", cfg.Metrics.CellWidth, cfg.Metrics.CellHeight)
	}
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher cannot be nil")
	}
	if cfg.DefaultForeground == "" {
		cfg.DefaultForeground = "black"
	}

	return &Renderer{
		cfg:     cfg,
		fetcher: fetcher,
		logger:  logger.With().Str("component", "Renderer").Logger(),
	}, nil
}

// Option adjusts a single render call.
type Option func(*renderOptions)

type renderOptions struct {
	foreground  string
	background  string
	zoom        float64
	forceReload bool
}

// WithForeground sets the foreground color: a direct value or a theme style
// name.
func WithForeground(color string) Option {
	return func(o *renderOptions) { o.foreground = color }
}

// WithBackground sets the background color: a direct value or a theme style
// name.
func WithBackground(color string) Option {
	return func(o *renderOptions) { o.background = color }
}

// WithZoom multiplies the pixel footprint by an integer factor. Non-integer
// values truncate; values below 1 floor to 1.
func WithZoom(zoom float64) Option {
	return func(o *renderOptions) { o.zoom = zoom }
}

// WithReload forces a network refetch, overwriting the stored entry.
func WithReload() Option {
	return func(o *renderOptions) { o.forceReload = true }
}

// Render fetches the icon, recenters its viewbox into the fixed 2×1
// character-cell footprint, applies zoom and colors, and returns the
// resulting SVG image. The whole pipeline is one synchronous pass; the only
// side effect is the fetcher's cache write.
func (r *Renderer) Render(ctx context.Context, key iconfetch.Key, opts ...Option) (Icon, error) {
	var options renderOptions
	for _, opt := range opts {
		opt(&options)
	}

	var fetchOpts []iconfetch.Option
	if options.forceReload {
		fetchOpts = append(fetchOpts, iconfetch.WithForceReload())
	}

	doc, err := r.fetcher.Fetch(ctx, key, fetchOpts...)
	if err != nil {
		return Icon{}, err
	}

	bounds, err := doc.Bounds()
	if err != nil {
		return Icon{}, fmt.Errorf("icon %s/%s: %w", key.Collection, key.Name, err)
	}

	targetWidth := 2 * r.cfg.Metrics.CellWidth
	targetHeight := r.cfg.Metrics.CellHeight
	adjusted := AdjustViewBox(bounds, targetWidth, targetHeight)

	zoom := NormalizeZoom(options.zoom)
	pixelWidth := targetWidth * zoom
	pixelHeight := targetHeight * zoom

	fg := r.resolveForeground(options.foreground)
	bg := r.resolveBackground(options.background)

	svg := buildSVG(adjusted, pixelWidth, pixelHeight, fg, bg, doc.Paths)

	r.logger.Debug().
		Str("collection", key.Collection).
		Str("icon", key.Name).
		Str("viewbox", adjusted.String()).
		Int("width", pixelWidth).
		Int("height", pixelHeight).
		Msg("Rendered icon.")

	return Icon{SVG: svg, Width: pixelWidth, Height: pixelHeight}, nil
}

// AdjustViewBox recenters a viewbox vertically for the fixed target
// footprint. The horizontal axis is the scale reference: ratio maps target
// pixels back into viewbox units, and the height difference is split evenly
// above and below, clipping or padding symmetrically rather than distorting.
func AdjustViewBox(vb icon.ViewBox, targetWidth, targetHeight int) icon.ViewBox {
	ratio := vb.Width / float64(targetWidth)
	delta := math.Ceil((vb.Height - float64(targetHeight)*ratio) / 2)

	vb.MinY -= delta
	vb.Height += 2 * delta
	return vb
}

// NormalizeZoom truncates zoom to an integer and floors it at 1. Zero,
// negative, fractional sub-1, and non-finite values all normalize to 1.
// Finite values beyond the int32 range clamp, keeping the float-to-int
// conversion defined.
func NormalizeZoom(zoom float64) int {
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return 1
	}
	truncated := math.Trunc(zoom)
	if truncated < 1 {
		return 1
	}
	if truncated > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(truncated)
}
