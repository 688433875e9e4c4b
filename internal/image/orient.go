package image

import (
	"bytes"
	"image"

	"github.com/rwcarlsen/goexif/exif"
)

// orientationOf reads the EXIF orientation tag from the raw image bytes.
// Images without EXIF data (PNGs, stripped JPEGs) report the identity
// orientation 1.
func orientationOf(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil || orientation < 1 || orientation > 8 {
		return 1
	}
	return orientation
}

// applyOrientation maps the pixels of img so the result displays upright for
// the given EXIF orientation (1-8).
func applyOrientation(img *image.RGBA, orientation int) *image.RGBA {
	switch orientation {
	case 2:
		return remap(img, false, func(w, h, x, y int) (int, int) { return w - 1 - x, y })
	case 3:
		return remap(img, false, func(w, h, x, y int) (int, int) { return w - 1 - x, h - 1 - y })
	case 4:
		return remap(img, false, func(w, h, x, y int) (int, int) { return x, h - 1 - y })
	case 5:
		return remap(img, true, func(w, h, x, y int) (int, int) { return y, x })
	case 6:
		return remap(img, true, func(w, h, x, y int) (int, int) { return h - 1 - y, x })
	case 7:
		return remap(img, true, func(w, h, x, y int) (int, int) { return h - 1 - y, w - 1 - x })
	case 8:
		return remap(img, true, func(w, h, x, y int) (int, int) { return y, w - 1 - x })
	default:
		return img
	}
}

// remap copies img into a new image, sending each source pixel (x, y) to the
// destination coordinates produced by move. transpose swaps the output
// dimensions (rotations by 90 or 270 degrees).
func remap(img *image.RGBA, transpose bool, move func(w, h, x, y int) (int, int)) *image.RGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	dw, dh := w, h
	if transpose {
		dw, dh = h, w
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := move(w, h, x, y)
			si := y*img.Stride + x*4
			di := dy*dst.Stride + dx*4
			copy(dst.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return dst
}
