// Package render turns canvas-cell-indexed aggregate arrays into images.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user/canvas-replay/internal/domain"
)

// SizeError reports an aggregate array whose length does not match the
// canvas dimensions. It is surfaced before any pixels are written; the
// renderer never truncates or pads.
type SizeError struct {
	Got, Want int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("render: expected %d values for a %dx%d canvas, got %d",
		e.Want, domain.CanvasWidth, domain.CanvasHeight, e.Got)
}

// Raster maps a row-major aggregate array onto a canvas-sized image, one
// value per cell: index k covers row k/CanvasWidth, column k%CanvasWidth.
// Each value is mapped independently through colorOf.
func Raster[V any](values []V, colorOf func(V) color.NRGBA) (*image.NRGBA, error) {
	if len(values) != domain.CanvasCells {
		return nil, &SizeError{Got: len(values), Want: domain.CanvasCells}
	}

	img := image.NewNRGBA(image.Rect(0, 0, domain.CanvasWidth, domain.CanvasHeight))
	for k, v := range values {
		c := colorOf(v)
		i := k * 4
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img, nil
}
