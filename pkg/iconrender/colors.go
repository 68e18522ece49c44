package iconrender

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Style is a themed foreground/background color pair, analogous to a named
// face in an editor theme.
type Style struct {
	Foreground string
	Background string
}

// Theme maps style names to color pairs. When a requested color value names
// a style, the renderer substitutes the style's foreground or background
// depending on which slot is being resolved.
type Theme map[string]Style

// NormalizeColor resolves a CSS/X11 color name to #rrggbb form. Anything it
// cannot resolve, hex literals included, passes through unchanged: rejecting
// truly invalid colors is the drawing layer's job.
func NormalizeColor(value string) string {
	if rgba, ok := colornames.Map[strings.ToLower(value)]; ok {
		return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	}
	return value
}

// resolveForeground maps a requested foreground through the theme and color
// names. An empty value falls back to the ambient default.
func (r *Renderer) resolveForeground(value string) string {
	if value == "" {
		value = r.cfg.DefaultForeground
	}
	if style, ok := r.cfg.Theme[value]; ok {
		value = style.Foreground
	}
	return NormalizeColor(value)
}

// resolveBackground is resolveForeground's counterpart; the default is fully
// transparent.
func (r *Renderer) resolveBackground(value string) string {
	if value == "" {
		return "none"
	}
	if style, ok := r.cfg.Theme[value]; ok {
		value = style.Background
	}
	return NormalizeColor(value)
}
