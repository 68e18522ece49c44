package iconservice

import (
	"errors"
	"image/png"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/illmade-knight/go-svgicon/pkg/icon"
	"github.com/illmade-knight/go-svgicon/pkg/iconfetch"
	"github.com/illmade-knight/go-svgicon/pkg/iconrender"
)

// handleIcon renders one icon. Query parameters: fg, bg (direct colors or
// theme style names), zoom (integer-ish, floored to 1), reload=true to force
// a refetch, format=png for a rasterized response.
func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := s.logger.With().Str("request_id", requestID).Logger()

	key := iconfetch.Key{
		Collection: r.PathValue("collection"),
		Name:       r.PathValue("name"),
	}

	opts := make([]iconrender.Option, 0, 4)
	query := r.URL.Query()
	if fg := query.Get("fg"); fg != "" {
		opts = append(opts, iconrender.WithForeground(fg))
	}
	if bg := query.Get("bg"); bg != "" {
		opts = append(opts, iconrender.WithBackground(bg))
	}
	if zoomParam := query.Get("zoom"); zoomParam != "" {
		// Unparseable zoom behaves like an unset one: it floors to 1.
		zoom, _ := strconv.ParseFloat(zoomParam, 64)
		opts = append(opts, iconrender.WithZoom(zoom))
	}
	if query.Get("reload") == "true" {
		opts = append(opts, iconrender.WithReload())
	}

	rendered, err := s.renderer.Render(r.Context(), key, opts...)
	if err != nil {
		status := statusForError(err)
		logger.Warn().Err(err).
			Str("collection", key.Collection).
			Str("icon", key.Name).
			Int("status", status).
			Msg("Icon render failed.")
		http.Error(w, err.Error(), status)
		return
	}

	if query.Get("format") == "png" {
		img, err := rendered.Rasterize()
		if err != nil {
			logger.Error().Err(err).Msg("Rasterization failed.")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			logger.Error().Err(err).Msg("PNG encode failed.")
		}
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write(rendered.SVG); err != nil {
		logger.Error().Err(err).Msg("Failed to write response.")
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, icon.ErrUnknownCollection):
		return http.StatusNotFound
	case errors.Is(err, icon.ErrFetchFailure):
		return http.StatusBadGateway
	case errors.Is(err, icon.ErrMalformedDocument), errors.Is(err, icon.ErrMissingViewBox):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
