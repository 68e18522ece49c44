package iconrender

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/illmade-knight/go-svgicon/pkg/icon"
)

// buildSVG assembles the output document: a background rect spanning the
// adjusted viewbox, then every path in document order. A path keeps its own
// fill override when it has one; otherwise it takes the requested
// foreground. Later paths layer over earlier ones.
func buildSVG(vb icon.ViewBox, width, height int, fg, bg string, paths []icon.Path) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%s">`,
		width, height, vb.String())
	b.WriteByte('\n')

	if bg != "none" {
		fmt.Fprintf(&b, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			formatNum(vb.MinX), formatNum(vb.MinY), formatNum(vb.Width), formatNum(vb.Height),
			escapeAttr(bg))
		b.WriteByte('\n')
	}

	for _, path := range paths {
		fill := path.Fill
		if fill == "" {
			fill = fg
		}
		fmt.Fprintf(&b, `  <path d="%s" fill="%s"/>`, escapeAttr(path.Data), escapeAttr(fill))
		b.WriteByte('\n')
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escapeAttr(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
