package raster

// CropHorizontalBuffer copies the inclusive column span [left, right] of
// every row of buf into a freshly allocated, tightly packed buffer and
// returns it with the new width and unchanged height. Degenerate requests
// (empty span, out-of-range span, or a span covering the full width)
// return the original buffer unchanged, so a no-op crop costs nothing.
// The input buffer is never mutated.
func CropHorizontalBuffer(buf []byte, width, height, left, right, bytesPerPixel int) ([]byte, int, int) {
	cropWidth := right - left + 1
	if left < 0 || right >= width || cropWidth <= 0 || cropWidth >= width {
		return buf, width, height
	}

	srcStride := width * bytesPerPixel
	dstStride := cropWidth * bytesPerPixel
	out := make([]byte, dstStride*height)
	for y := 0; y < height; y++ {
		src := y*srcStride + left*bytesPerPixel
		copy(out[y*dstStride:(y+1)*dstStride], buf[src:src+dstStride])
	}
	return out, cropWidth, height
}
