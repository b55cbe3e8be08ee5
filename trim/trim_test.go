package trim

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelkit/labelkit/raster"
)

// barImage draws opaque black columns [left, right] on a white w*h image.
func barImage(w, h, left, right int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	black := image.NewUniform(color.Black)
	draw.Draw(img, image.Rect(left, 0, right+1, h), black, image.Point{}, draw.Src)
	return img
}

func TestHorizontalTrimsBarcode(t *testing.T) {
	src := barImage(400, 120, 40, 339)
	out := Horizontal(src, Info{Kind: KindCode128}, nil)

	require.NotEqual(t, image.Image(src), out)
	assert.Equal(t, 300, out.Bounds().Dx())
	assert.Equal(t, 120, out.Bounds().Dy())

	// The result keeps the source's premultiplied representation and the
	// expected content: ink edge to edge.
	rgba, ok := out.(*image.RGBA)
	require.True(t, ok, "RGBA input should produce an RGBA result")
	b := raster.ComputeHorizontalBounds(rgba.Pix, 300, 120, raster.RGBA, nil)
	assert.Equal(t, raster.Bounds{Left: 0, Right: 299}, b)
}

func TestHorizontalLeavesUnclassifiedImages(t *testing.T) {
	src := barImage(100, 40, 30, 60)
	out := Horizontal(src, Info{Kind: KindUnknown}, nil)
	assert.Equal(t, image.Image(src), out, "non-barcode images must pass through untouched")
}

func TestHorizontalAllWhiteNoop(t *testing.T) {
	src := barImage(100, 40, 0, -1) // nothing drawn black
	out := Horizontal(src, Info{Kind: KindCode128}, nil)
	assert.Equal(t, image.Image(src), out)
}

func TestHorizontalFullWidthNoop(t *testing.T) {
	src := barImage(100, 40, 0, 99)
	out := Horizontal(src, Info{Kind: KindCode128}, nil)
	assert.Equal(t, image.Image(src), out)
}

func TestHorizontalMetadataMismatch(t *testing.T) {
	src := barImage(100, 40, 30, 60)
	out := Horizontal(src, Info{Kind: KindCode128, Width: 640, Height: 480}, nil)
	assert.Equal(t, image.Image(src), out, "declared dimensions disagree with the handle")

	out = Horizontal(src, Info{Kind: KindCode128, Width: 100, Height: 40}, nil)
	assert.Equal(t, 31, out.Bounds().Dx(), "matching declared dimensions must not block trimming")
}

func TestHorizontalNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 80, 20))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(src, image.Rect(10, 0, 70, 20), image.NewUniform(color.Black), image.Point{}, draw.Src)

	out := Horizontal(src, Info{Kind: KindCode128}, nil)
	require.Equal(t, 60, out.Bounds().Dx())
	_, ok := out.(*image.NRGBA)
	assert.True(t, ok, "NRGBA input should produce an NRGBA result")
}

func TestHorizontalFallbackCopy(t *testing.T) {
	// Gray images have no 4-byte buffer to borrow; the adapter must fall
	// back to a manual conversion copy.
	src := image.NewGray(image.Rect(0, 0, 80, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			v := uint8(0xff)
			if x >= 10 && x < 70 {
				v = 0
			}
			src.SetGray(x, y, color.Gray{Y: v})
		}
	}
	out := Horizontal(src, Info{Kind: KindCode128}, nil)
	assert.Equal(t, 60, out.Bounds().Dx())
}

func TestHorizontalSubImageHandle(t *testing.T) {
	// A sub-image has a non-zero origin and a wide stride, so the direct
	// buffer path is not usable and the adapter must normalize it first.
	full := barImage(200, 60, 80, 140)
	sub := full.SubImage(image.Rect(50, 0, 180, 60)).(*image.RGBA)

	out := Horizontal(sub, Info{Kind: KindCode128}, nil)
	assert.Equal(t, 61, out.Bounds().Dx(), "columns 80-140 of the parent are 30-90 in the sub-image")
}

func TestHorizontalDoesNotMutateSource(t *testing.T) {
	src := barImage(100, 40, 30, 60)
	orig := make([]byte, len(src.Pix))
	copy(orig, src.Pix)

	Horizontal(src, Info{Kind: KindCode128}, nil)
	assert.Equal(t, orig, src.Pix)
}

func TestHorizontalScanOptionsPassThrough(t *testing.T) {
	// Gray bars above the default threshold: trimmed only when the caller
	// loosens it.
	src := image.NewRGBA(image.Rect(0, 0, 100, 40))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	gray := image.NewUniform(color.RGBA{R: 100, G: 100, B: 100, A: 255})
	draw.Draw(src, image.Rect(30, 0, 61, 40), gray, image.Point{}, draw.Src)

	out := Horizontal(src, Info{Kind: KindCode128}, nil)
	assert.Equal(t, image.Image(src), out)

	out = Horizontal(src, Info{Kind: KindCode128}, &raster.ScanOptions{BlackThreshold: 128})
	assert.Equal(t, 31, out.Bounds().Dx())
}
