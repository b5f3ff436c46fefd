package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// MaxKernelSize is the largest Gaussian kernel accepted by GaussianBlur.
const MaxKernelSize = 99

// GaussianBlur smooths img with a square Gaussian kernel of kernelSize x kernelSize.
//
// kernelSize must be odd and within [1, MaxKernelSize]. A kernel of 1 leaves
// the image unchanged.
func GaussianBlur(img image.Image, kernelSize int) (*image.RGBA, error) {
	if kernelSize < 1 || kernelSize > MaxKernelSize || kernelSize%2 == 0 {
		return nil, fmt.Errorf("invalid kernel size %d: must be odd and in [1, %d]", kernelSize, MaxKernelSize)
	}
	// bild builds a (2*radius+1) wide kernel.
	radius := float64(kernelSize-1) / 2
	return blur.Gaussian(img, radius), nil
}

// Grayscale derives a single-channel luminance image (ITU-R BT.601 weights).
func Grayscale(img image.Image) *image.Gray {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		src := gray.Pix[y*gray.Stride : y*gray.Stride+bounds.Dx()*4]
		dst := out.Pix[y*out.Stride : y*out.Stride+bounds.Dx()]
		for x := range dst {
			dst[x] = src[x*4]
		}
	}
	return out
}

// Threshold applies a binary threshold to the grayscale derivation of img.
//
// Pixels with luminance >= value become maxValue; all others become 0.
// Both value and maxValue must be within [0, 255].
func Threshold(img image.Image, value, maxValue int) (*image.Gray, error) {
	if value < 0 || value > 255 {
		return nil, fmt.Errorf("invalid threshold value %d: must be in [0, 255]", value)
	}
	if maxValue < 0 || maxValue > 255 {
		return nil, fmt.Errorf("invalid max value %d: must be in [0, 255]", maxValue)
	}

	out := Grayscale(img)
	level, high := uint8(value), uint8(maxValue)
	for i, v := range out.Pix {
		if v >= level {
			out.Pix[i] = high
		} else {
			out.Pix[i] = 0
		}
	}
	return out, nil
}

// ToRGB expands a single-channel image into a 3-channel image for display.
func ToRGB(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}
