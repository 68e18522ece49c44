package icon

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a single drawable path from an icon document: the raw path data
// plus an optional fill override. An empty Fill means the path carries no
// color of its own and takes whatever foreground the renderer applies.
type Path struct {
	Data string
	Fill string
}

// Document is a parsed icon: the root element's viewBox attribute (empty when
// absent) and the document-order sequence of paths. Documents are immutable
// once parsed.
type Document struct {
	ViewBox string
	Paths   []Path
}

// ViewBox is the rectangular coordinate region a vector graphic is defined
// in: origin x/y plus width and height.
type ViewBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// String renders the viewbox in SVG attribute form, e.g. "0 -11 24 46".
func (v ViewBox) String() string {
	return fmt.Sprintf("%s %s %s %s",
		formatCoord(v.MinX), formatCoord(v.MinY),
		formatCoord(v.Width), formatCoord(v.Height))
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseViewBox splits a viewBox attribute value into its four numeric
// components. Components may be separated by whitespace, commas, or both.
// An empty or non-numeric value returns ErrMissingViewBox.
func ParseViewBox(s string) (ViewBox, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return ViewBox{}, fmt.Errorf("%w: %q", ErrMissingViewBox, s)
	}

	var nums [4]float64
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return ViewBox{}, fmt.Errorf("%w: component %q is not numeric", ErrMissingViewBox, field)
		}
		nums[i] = f
	}

	return ViewBox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}, nil
}

// Bounds returns the parsed viewbox of the document, or ErrMissingViewBox
// when the attribute is absent or unparseable.
func (d *Document) Bounds() (ViewBox, error) {
	if d.ViewBox == "" {
		return ViewBox{}, fmt.Errorf("%w: attribute absent", ErrMissingViewBox)
	}
	return ParseViewBox(d.ViewBox)
}
