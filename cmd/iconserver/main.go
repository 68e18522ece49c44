// iconserver serves recolored, footprint-normalized SVG icons over HTTP,
// caching fetched icon documents on disk.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/illmade-knight/go-svgicon/pkg/iconfetch"
	"github.com/illmade-knight/go-svgicon/pkg/iconrender"
	"github.com/illmade-knight/go-svgicon/pkg/iconservice"
	"github.com/illmade-knight/go-svgicon/pkg/iconstore"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := iconservice.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration.")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn().Str("log_level", cfg.LogLevel).Msg("Unknown log level, using info.")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	store, err := iconstore.NewDiskStore(cfg.CacheDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open icon store.")
	}

	registry := iconfetch.NewRegistry()
	for name, template := range cfg.Collections {
		if err := registry.Register(name, template); err != nil {
			logger.Fatal().Err(err).Str("collection", name).Msg("Invalid collection template.")
		}
	}

	source := iconfetch.NewHTTPSource(&http.Client{Timeout: 30 * time.Second}, logger)
	fetcher := iconfetch.NewFetcher(registry, store, source, logger)
	defer func() { _ = fetcher.Close() }()

	renderer, err := iconrender.NewRenderer(iconrender.Config{
		Metrics: iconrender.GlyphMetrics{
			CellWidth:  cfg.GlyphCellWidth,
			CellHeight: cfg.GlyphCellHeight,
		},
		DefaultForeground: cfg.DefaultForeground,
	}, fetcher, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create renderer.")
	}

	server := iconservice.NewServer(cfg.HTTPPort, renderer, logger)
	if err := server.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start HTTP server.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Shutdown did not complete cleanly.")
	}
}
