// Package trim removes excess horizontal white margin from rasterized
// barcode images.
//
// This is the only layer that touches image handles. It resolves the
// handle to a raw 4-byte-per-pixel buffer through an explicit capability
// check, hands the buffer to package raster for the actual scanning and
// cropping math, and rebuilds a handle over the result. Every "nothing to
// do" outcome returns the original handle unchanged and is never an error.
package trim

import (
	"image"
	"image/draw"

	"github.com/labelkit/labelkit/raster"
)

// Kind classifies an image for the trim trigger.
type Kind int

const (
	// KindUnknown marks images of unknown content; they are left alone.
	KindUnknown Kind = iota

	// KindCode128 marks images known to contain a Code 128 symbol.
	KindCode128
)

// Info carries externally supplied metadata about an image handle. The
// handle itself stays opaque; callers describe what they know about it.
type Info struct {
	// Kind is the content classification. Only KindCode128 triggers
	// trimming.
	Kind Kind

	// PixelFormat names the declared channel order of the underlying
	// buffer ("RGBA", "BGRA", "ARGB"). Unrecognized or empty values are
	// treated as RGBA.
	PixelFormat string

	// Width and Height are the declared dimensions. Zero means
	// "unknown"; a non-zero value that disagrees with the handle's actual
	// bounds disables trimming for that image.
	Width, Height int
}

// Horizontal returns img with its horizontal white margins removed. The
// original handle is returned unchanged when the classification is not
// KindCode128, the declared metadata disagrees with the handle, no inked
// region is found, or cropping would be a no-op.
func Horizontal(img image.Image, info Info, opts *raster.ScanOptions) image.Image {
	if img == nil || info.Kind != KindCode128 {
		return img
	}
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return img
	}
	if (info.Width != 0 && info.Width != width) || (info.Height != 0 && info.Height != height) {
		return img
	}

	pix, premultiplied := pixels(img)
	layout := raster.LayoutFor(info.PixelFormat)

	bounds := raster.ComputeHorizontalBounds(pix, width, height, layout, opts)
	cropped, cropWidth, _ := raster.CropHorizontalBuffer(pix, width, height,
		bounds.Left, bounds.Right, raster.BytesPerPixel)
	if cropWidth == width {
		return img
	}

	rect := image.Rect(0, 0, cropWidth, height)
	stride := cropWidth * raster.BytesPerPixel
	if premultiplied {
		return &image.RGBA{Pix: cropped, Stride: stride, Rect: rect}
	}
	return &image.NRGBA{Pix: cropped, Stride: stride, Rect: rect}
}

// pixels resolves an image handle to a zero-origin, compact-stride 4-byte
// pixel buffer. Handles that already expose such a buffer are used
// directly; everything else is converted with a manual copy. The second
// result reports whether the buffer holds premultiplied alpha, so the
// cropped handle can be rebuilt with the same semantics.
func pixels(img image.Image) ([]byte, bool) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.RGBA:
		if compact(src.Stride, width, b) {
			return src.Pix, true
		}
	case *image.NRGBA:
		if compact(src.Stride, width, b) {
			return src.Pix, false
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix, false
}

func compact(stride, width int, b image.Rectangle) bool {
	return stride == width*raster.BytesPerPixel && b.Min == (image.Point{})
}
