// Package iconservice exposes rendered icons over HTTP. It follows the
// shared microservice server shape: a mux with a health endpoint, background
// Serve, and context-aware graceful shutdown.
package iconservice

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/illmade-knight/go-svgicon/pkg/iconrender"
	"github.com/rs/zerolog"
)

// Config holds the service's configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`
	HTTPPort string `yaml:"http_port"`

	CacheDir          string `yaml:"cache_dir"`
	DefaultForeground string `yaml:"default_foreground"`
	// GlyphCellWidth/Height are the embedding host's character cell size in
	// device pixels; they define the 2×1 icon footprint.
	GlyphCellWidth  int `yaml:"glyph_cell_width"`
	GlyphCellHeight int `yaml:"glyph_cell_height"`

	// Collections extends or overrides the default collection registry.
	Collections map[string]string `yaml:"collections"`
}

// Server serves rendered icons over HTTP.
type Server struct {
	logger     zerolog.Logger
	renderer   *iconrender.Renderer
	httpPort   string
	httpServer *http.Server
	mux        *http.ServeMux
	actualAddr string
	mu         sync.RWMutex
}

// NewServer creates a server around a renderer.
func NewServer(httpPort string, renderer *iconrender.Renderer, logger zerolog.Logger) *Server {
	s := &Server{
		logger:   logger.With().Str("component", "IconServer").Logger(),
		renderer: renderer,
		httpPort: httpPort,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", HealthzHandler)
	mux.HandleFunc("GET /icons/{collection}/{name}", s.handleIcon)
	s.mux = mux
	s.httpServer = &http.Server{Addr: httpPort, Handler: mux}

	return s
}

// Start initiates the HTTP server in a background goroutine.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpPort)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", s.httpPort, err)
	}

	s.mu.Lock()
	s.actualAddr = listener.Addr().String()
	s.mu.Unlock()

	s.logger.Info().Str("address", s.actualAddr).Msg("HTTP server starting to listen")

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	return nil
}

// Shutdown gracefully stops the HTTP server, respecting the provided
// context's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Error during HTTP server shutdown.")
		return err
	}
	s.logger.Info().Msg("HTTP server stopped.")
	return nil
}

// GetHTTPPort returns the actual port the server is listening on.
func (s *Server) GetHTTPPort() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, port, err := net.SplitHostPort(s.actualAddr)
	if err != nil {
		return s.httpPort
	}
	return ":" + port
}

// Mux returns the underlying ServeMux, so embedders can attach additional
// handlers before Start.
func (s *Server) Mux() *http.ServeMux {
	return s.mux
}

// HealthzHandler responds to health check probes.
func HealthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
