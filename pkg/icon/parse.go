package icon

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Parse reads raw SVG bytes into a Document. Only the pieces the renderer
// needs are extracted: the root element's viewBox and every path element in
// document order with its optional fill attribute. Anything else in the
// markup is ignored rather than rejected.
//
// A document whose root element is not <svg>, or that is not well-formed
// XML, returns ErrMalformedDocument.
func Parse(data []byte) (*Document, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	// Remote icon sets occasionally declare legacy entities; resolve them
	// permissively instead of failing the parse.
	decoder.Strict = false

	doc := &Document{}
	sawRoot := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		if !sawRoot {
			if !strings.EqualFold(start.Name.Local, "svg") {
				return nil, fmt.Errorf("%w: root element is <%s>, not <svg>", ErrMalformedDocument, start.Name.Local)
			}
			sawRoot = true
			doc.ViewBox = attrValue(start, "viewBox")
			continue
		}

		if strings.EqualFold(start.Name.Local, "path") {
			path := Path{
				Data: attrValue(start, "d"),
				Fill: attrValue(start, "fill"),
			}
			if path.Data != "" {
				doc.Paths = append(doc.Paths, path)
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: no <svg> element found", ErrMalformedDocument)
	}

	return doc, nil
}

func attrValue(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if strings.EqualFold(attr.Name.Local, name) {
			return attr.Value
		}
	}
	return ""
}
