package thermal

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"
)

// #region grid

// Grid is a normalized grayscale intensity grid in row-major order.
// Values span [0, 255] after normalization.
type Grid struct {
	Width  int
	Height int
	Pixels []float64
}

// #endregion grid

// #region load

// LoadImage reads a thermal image file (PNG or JPEG), smooths it, and
// min-max normalizes intensities to [0, 255].
func LoadImage(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Grid{}, fmt.Errorf("decode image %s: %w", path, err)
	}

	grid := toGrayGrid(img)
	grid = boxBlur(grid, 2) // 5x5 window
	normalize(grid.Pixels)
	return grid, nil
}

// #endregion load

// #region gray

// toGrayGrid converts any decoded image to a grayscale float grid.
func toGrayGrid(img image.Image) Grid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]float64, 0, width*height)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// ITU-R BT.601 luma, scaled back from 16-bit channels
			luma := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0
			pixels = append(pixels, luma)
		}
	}

	return Grid{Width: width, Height: height, Pixels: pixels}
}

// #endregion gray

// #region blur

// boxBlur applies a (2r+1)x(2r+1) mean filter, clamping at the borders.
func boxBlur(grid Grid, radius int) Grid {
	if radius <= 0 || len(grid.Pixels) == 0 {
		return grid
	}

	out := make([]float64, len(grid.Pixels))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			var sum float64
			var n int
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= grid.Width || ny < 0 || ny >= grid.Height {
						continue
					}
					sum += grid.Pixels[ny*grid.Width+nx]
					n++
				}
			}
			out[y*grid.Width+x] = sum / float64(n)
		}
	}

	return Grid{Width: grid.Width, Height: grid.Height, Pixels: out}
}

// #endregion blur

// #region normalize

// normalize rescales values in place to span [0, 255].
func normalize(pixels []float64) {
	if len(pixels) == 0 {
		return
	}

	lo, hi := pixels[0], pixels[0]
	for _, v := range pixels {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo
	if span == 0 {
		// flat image; leave values as-is
		return
	}
	for i, v := range pixels {
		pixels[i] = (v - lo) / span * 255.0
	}
}

// #endregion normalize
