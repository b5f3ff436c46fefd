package imaging

import (
	"fmt"
	"image"
	"math"
)

// Canny performs Canny edge detection on the grayscale derivation of img.
//
// The output is a single-channel image where 255 marks an edge pixel and 0
// marks a non-edge pixel.
//
// Parameters:
//   - img: Source image (color or grayscale).
//   - lower: Lower hysteresis threshold (0-255). Gradients below this are discarded.
//   - upper: Upper hysteresis threshold (0-255). Gradients at or above this are
//     always kept. If lower > upper the two are swapped.
//
// # Algorithm
//
//  1. Grayscale conversion (ITU-R BT.601 luminance)
//
//  2. Gradient computation: 3x3 Sobel operators on 0-255 intensities,
//     magnitude = |Gx| + |Gy| (L1 norm), direction = atan2(Gy, Gx)
//
//  3. Non-maximum suppression: thin edges to 1-pixel width by keeping only
//     local maxima along the gradient direction
//
//  4. Hysteresis: pixels >= upper seed edges; pixels >= lower are kept when
//     they are 8-connected to a seed through other kept pixels
//
// No smoothing is applied before the gradient step; blur the input first
// for noisy photographs.
func Canny(img image.Image, lower, upper int) (*image.Gray, error) {
	if lower < 0 || lower > 255 || upper < 0 || upper > 255 {
		return nil, fmt.Errorf("invalid Canny thresholds (%d, %d): must be in [0, 255]", lower, upper)
	}
	if lower > upper {
		lower, upper = upper, lower
	}

	gray := Grayscale(img)
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()

	at := func(x, y int) float64 {
		x = clamp(x, 0, width-1)
		y = clamp(y, 0, height-1)
		return float64(gray.Pix[y*gray.Stride+x])
	}

	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	magnitude := make([]float64, width*height)
	direction := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := at(x+kx, y+ky)
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y*width+x] = math.Abs(gx) + math.Abs(gy)
			direction[y*width+x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression; the outermost ring is never an edge.
	suppressed := make([]float64, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			angle := direction[i]
			mag := magnitude[i]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1, n2 = magnitude[i-1], magnitude[i+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1, n2 = magnitude[i-width-1], magnitude[i+width+1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1, n2 = magnitude[i-width], magnitude[i+width]
			default:
				n1, n2 = magnitude[i-width+1], magnitude[i+width-1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[i] = mag
			}
		}
	}

	// Hysteresis: grow edges outward from strong seeds.
	result := image.NewGray(image.Rect(0, 0, width, height))
	low, high := float64(lower), float64(upper)
	stack := make([]int, 0, 64)
	for i, v := range suppressed {
		if v == 0 || v < high || result.Pix[i] != 0 {
			continue
		}
		result.Pix[i] = 255
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			px, py := p%width, p/width
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					nx, ny := px+kx, py+ky
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					n := ny*width + nx
					if result.Pix[n] == 0 && suppressed[n] > 0 && suppressed[n] >= low {
						result.Pix[n] = 255
						stack = append(stack, n)
					}
				}
			}
		}
	}

	return result, nil
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
