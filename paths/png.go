package paths

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/HellOwhatAs/ln/lnerr"
)

// WritePNG rasterizes ps (assumed already in pixel space) to path as a
// width x height PNG: a white background with each polyline drawn as a
// 1-pixel black line. No anti-aliasing;
// segments are rasterized with Bresenham's algorithm.
func WritePNG(ps Paths, path string, width, height int) error {
	img := image.NewGray(image.Rect(0, 0, width, height))
	white := color.Gray{Y: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, white)
		}
	}

	black := color.Gray{Y: 0}
	for _, p := range ps {
		for i := 0; i+1 < len(p); i++ {
			drawLine(img, p[i].X, p[i].Y, p[i+1].X, p[i+1].Y, black)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return lnerr.NewIoError("write_png", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return lnerr.NewIoError("write_png", err)
	}
	return lnerr.NewIoError("write_png", f.Close())
}

// drawLine rasterizes a single segment with Bresenham's integer line
// algorithm, skipping pixels that fall outside the image bounds.
func drawLine(img *image.Gray, x0, y0, x1, y1 float64, c color.Gray) {
	ix0, iy0 := int(x0), int(y0)
	ix1, iy1 := int(x1), int(y1)

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	err := dx + dy

	bounds := img.Bounds()
	for {
		if ix0 >= bounds.Min.X && ix0 < bounds.Max.X && iy0 >= bounds.Min.Y && iy0 < bounds.Max.Y {
			img.SetGray(ix0, iy0, c)
		}
		if ix0 == ix1 && iy0 == iy1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
