package bfformatter

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// RenderOptions control a single rendering pass.
type RenderOptions struct {
	// Invert places tokens on light cells instead of dark ones.
	Invert bool
	// WhitespaceFraction is the fraction of raster cells reserved for
	// whitespace, in [0, 1). It controls the output resolution: a larger
	// fraction spreads the same tokens over a bigger raster.
	WhitespaceFraction float64
	// Resize overrides the scaling implementation. Nil means NearestNeighbor.
	Resize Resizer
}

// DefaultRenderOptions matches the original tool: no inversion, whitespace
// fraction 0.5.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{WhitespaceFraction: 0.5}
}

// Render lays the token stream over img. The raster is sized from the
// token count and opts.WhitespaceFraction while approximating the image's
// aspect ratio, the image is resized to the raster, and tokens are placed
// on cells whose luminance passes the 0.5 threshold, walking rows top to
// bottom and cells left to right. Tokens left over after the full scan are
// appended verbatim with no trailing newline. An empty token stream
// renders to the empty string.
func (f *Formatter) Render(img image.Image, opts RenderOptions) (string, error) {
	if opts.WhitespaceFraction < 0 || opts.WhitespaceFraction >= 1 {
		return "", fmt.Errorf("%w: got %v", ErrFraction, opts.WhitespaceFraction)
	}
	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return "", fmt.Errorf("%w: zero dimension %dx%d", ErrImage, size.X, size.Y)
	}

	n := len(f.source)
	cells := int(float64(n) / (1 - opts.WhitespaceFraction))
	if cells == 0 {
		return "", nil
	}
	width, height := rasterSize(cells, size.X, size.Y)

	scale := opts.Resize
	if scale == nil {
		scale = NearestNeighbor
	}
	lum := luminances(scale(img, width, height))

	var out strings.Builder
	out.Grow(height*(width+1) + n)
	c := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if c < n && placeToken(lum[y*width+x], opts.Invert) {
				out.WriteByte(f.source[c])
				c++
			} else {
				out.WriteByte(' ')
			}
		}
		out.WriteByte('\n')
	}
	if c < n {
		out.WriteString(f.source[c:])
	}
	return out.String(), nil
}

// rasterSize picks dimensions whose product covers at least cells while
// approximating the srcW:srcH aspect ratio. Both are rounded up, never
// down, so the raster never has fewer cells than requested.
func rasterSize(cells, srcW, srcH int) (width, height int) {
	width = int(math.Ceil(math.Sqrt(float64(cells) * float64(srcW) / float64(srcH))))
	height = (cells + width - 1) / width
	return width, height
}

// luminances flattens img row-major into Rec. 709 luma values in [0, 1].
func luminances(img image.Image) []float64 {
	bounds := img.Bounds()
	out := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			red := float64(r) / math.MaxUint16
			green := float64(g) / math.MaxUint16
			blue := float64(b) / math.MaxUint16
			out = append(out, 0.2126*red+0.7152*green+0.0722*blue)
		}
	}
	return out
}

// placeToken reports whether a cell with the given luminance receives a
// token. A luminance of exactly 0.5 is whitespace, inverted or not.
func placeToken(lum float64, invert bool) bool {
	if invert {
		return lum > 0.5
	}
	return lum < 0.5
}
