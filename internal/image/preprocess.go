// Package image decodes uploaded images and prepares them for colour
// analysis: orientation correction, capped downsizing and conversion to a
// flat RGB pixel buffer.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/afalcongonzalez/chromaviews/internal/colour"
)

// MaxDimension caps the analysed image size. Images whose larger side
// exceeds it are downsized preserving aspect ratio; smaller images are never
// upsized.
const MaxDimension = 1280

// ErrDecode reports that the supplied bytes could not be decoded as a
// supported image format.
var ErrDecode = errors.New("image decode failed")

// Frame is a decoded, oriented and possibly downsized image as a row-major
// RGB pixel buffer. Width and Height are the analysed dimensions, not the
// original upload's.
type Frame struct {
	Pixels []colour.RGB
	Width  int
	Height int
}

// Preprocess decodes raw image bytes (JPEG, PNG or WebP), corrects EXIF
// orientation, downsizes so the larger dimension is at most MaxDimension and
// flattens the result to an RGB buffer. Malformed or unsupported bytes
// return an error wrapping ErrDecode.
func Preprocess(data []byte) (*Frame, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w (format: %s): %v", ErrDecode, format, err)
	}

	rgba := toRGBA(img)
	rgba = applyOrientation(rgba, orientationOf(data))
	rgba = downsize(rgba, MaxDimension)

	return flatten(rgba), nil
}

// toRGBA normalises any decoded image to RGBA with a zero-origin bounds.
func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// downsize scales the image so its larger dimension equals maxDim,
// preserving aspect ratio. A Catmull-Rom resampling kernel smooths the
// result; nearest-neighbour aliasing would bias the clustering. Images
// already within the cap are returned unchanged.
func downsize(img *image.RGBA, maxDim int) *image.RGBA {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	larger := max(width, height)
	if larger <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(larger)
	newWidth := max(1, int(float64(width)*scale))
	newHeight := max(1, int(float64(height)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// flatten converts an RGBA image to a row-major RGB buffer.
func flatten(img *image.RGBA) *Frame {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	pixels := make([]colour.RGB, 0, width*height)
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			pixels = append(pixels, colour.RGB{
				R: row[x*4],
				G: row[x*4+1],
				B: row[x*4+2],
			})
		}
	}

	return &Frame{Pixels: pixels, Width: width, Height: height}
}
