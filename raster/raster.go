// Package raster implements pixel-buffer analysis for trimming horizontal
// white margins from rasterized barcodes.
//
// All functions operate on contiguous 4-byte-per-pixel buffers and never
// mutate their input; the image-handle plumbing lives in package trim.
package raster

import "strings"

// BytesPerPixel is the only pixel size the scanner and cropper support.
const BytesPerPixel = 4

// ChannelLayout gives the byte offset of each color channel within a
// 4-byte pixel.
type ChannelLayout struct {
	R, G, B, A int
}

// Supported channel layouts.
var (
	RGBA = ChannelLayout{R: 0, G: 1, B: 2, A: 3}
	BGRA = ChannelLayout{R: 2, G: 1, B: 0, A: 3}
	ARGB = ChannelLayout{R: 1, G: 2, B: 3, A: 0}
)

// LayoutFor maps a pixel-format name to its channel layout. Unrecognized
// names fall back to RGBA.
func LayoutFor(format string) ChannelLayout {
	switch strings.ToUpper(format) {
	case "BGRA":
		return BGRA
	case "ARGB":
		return ARGB
	default:
		return RGBA
	}
}
