package bfformatter

import (
	"fmt"
	"image"
	"os"

	// Codec registration for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Resizer scales an image to exactly width×height. Implementations must
// return an image with those bounds; the interpolation used is up to them.
type Resizer func(img image.Image, width, height int) image.Image

// NearestNeighbor is the default Resizer.
func NearestNeighbor(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.NearestNeighbor)
}

// DecodeFile reads and decodes the image at path. PNG, JPEG, GIF, BMP,
// TIFF and WebP decoders are registered; further formats can be added by
// blank-importing their decoder packages.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bfformatter: open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrImage, path, err)
	}
	return img, nil
}
