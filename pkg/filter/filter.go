// Package filter implements the fixed normalize/denoise chain applied to
// every frame before annotation: display-window normalization, bright
// outlier removal, and median despeckling.
//
// All filters are pure: they return a new image and never modify the input.
package filter

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// DisplayWindow linearly remaps the intensity range [min, max] to the full
// [0, 255] range, per channel. Values at or below min become 0, values at
// or above max become 255. This mirrors a display min/max adjustment: the
// narrow window is what makes faint plant tissue visible in the export.
func DisplayWindow(img image.Image, min, max uint8) *image.NRGBA {
	out := imaging.Clone(img)
	if max <= min {
		return out
	}
	span := int(max) - int(min)
	var lut [256]uint8
	for v := 0; v < 256; v++ {
		switch {
		case v <= int(min):
			lut[v] = 0
		case v >= int(max):
			lut[v] = 255
		default:
			lut[v] = uint8((v - int(min)) * 255 / span)
		}
	}
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = lut[out.Pix[i]]
		out.Pix[i+1] = lut[out.Pix[i+1]]
		out.Pix[i+2] = lut[out.Pix[i+2]]
	}
	return out
}

// RemoveBrightOutliers replaces pixels that are brighter than their local
// median by more than threshold with that median. radius sets the
// neighborhood (radius 1 = 3x3 window). Dark pixels are left untouched;
// the target here is hot pixels and specular glints from the camera rig.
func RemoveBrightOutliers(img image.Image, radius int, threshold uint8) *image.NRGBA {
	if radius < 1 {
		radius = 1
	}
	med := effect.Median(img, float64(2*radius+1))
	out := imaging.Clone(img)
	medN := imaging.Clone(med)
	for i := 0; i < len(out.Pix); i += 4 {
		for ch := 0; ch < 3; ch++ {
			v := out.Pix[i+ch]
			m := medN.Pix[i+ch]
			if v > m && v-m > threshold {
				out.Pix[i+ch] = m
			}
		}
	}
	return out
}

// Despeckle applies a 3x3 median filter, removing single-pixel noise while
// preserving edges.
func Despeckle(img image.Image) *image.NRGBA {
	return imaging.Clone(effect.Median(img, 3))
}
