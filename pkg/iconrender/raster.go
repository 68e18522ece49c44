package iconrender

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Icon is a rendered icon: the rewritten SVG document plus its pixel
// footprint. Icons are constructed fresh per render call and hold no
// references back into the pipeline.
type Icon struct {
	SVG    []byte
	Width  int
	Height int
}

// Rasterize draws the SVG into an RGBA image at the icon's pixel
// dimensions, for hosts that want pixels rather than markup.
func (i Icon) Rasterize() (*image.RGBA, error) {
	parsed, err := oksvg.ReadIconStream(bytes.NewReader(i.SVG))
	if err != nil {
		return nil, fmt.Errorf("read rendered svg: %w", err)
	}
	parsed.SetTarget(0, 0, float64(i.Width), float64(i.Height))

	img := image.NewRGBA(image.Rect(0, 0, i.Width, i.Height))
	scanner := rasterx.NewScannerGV(i.Width, i.Height, img, img.Bounds())
	parsed.Draw(rasterx.NewDasher(i.Width, i.Height, scanner), 1)

	return img, nil
}
