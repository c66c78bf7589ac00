// Package raster turns the chart svg into a PNG for clients that cannot
// show svg. Text is not rasterized: bars and axis lines are.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	. "github.com/tinywasm/fmt"
)

// Image rasterizes svg at the size of its viewBox over a white background.
func Image(svg io.Reader) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(svg, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, Errf("raster: parse svg: %v", err)
	}

	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, Errf("raster: svg has no size (%dx%d)", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// PNG writes markup as a PNG image to w.
func PNG(w io.Writer, markup string) error {
	img, err := Image(strings.NewReader(markup))
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
