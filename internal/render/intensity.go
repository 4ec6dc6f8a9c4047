package render

import (
	"image"
	"image/color"
)

const maxColorComponent = 255

// degenerateGray is the defined fallback when every intensity is identical
// and there is no range to rescale over.
const degenerateGray = 128

// Intensity renders a numeric aggregate array as a grayscale image,
// linearly rescaling the observed [min, max] range to [0, 255]. When the
// range is degenerate (all values equal) every cell maps to a constant
// mid-gray instead of dividing by zero.
func Intensity(values []float64) (*image.NRGBA, error) {
	if len(values) == 0 {
		return Raster(values, func(float64) color.NRGBA { return color.NRGBA{} })
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return Raster(values, func(float64) color.NRGBA {
			return gray(degenerateGray)
		})
	}

	scale := maxColorComponent / (max - min)
	return Raster(values, func(v float64) color.NRGBA {
		return gray(uint8(scale * (v - min)))
	})
}

func gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 0xff}
}
