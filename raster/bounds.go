package raster

// Bounds holds the inclusive left/right column indices of the inked region
// of a buffer.
type Bounds struct {
	Left, Right int
}

// ScanOptions tunes ink detection. The zero value of any field means "use
// the default".
type ScanOptions struct {
	// BlackThreshold is the maximum luminance of an inked pixel.
	BlackThreshold int

	// MinCoverageRatio is the fraction of a column's sampled pixels that
	// must be inked before the column counts as part of the symbol. Stray
	// dark pixels from anti-aliasing or compression noise stay below it.
	MinCoverageRatio float64

	// SampleStep is the vertical stride between sampled pixels.
	SampleStep int
}

const (
	defaultBlackThreshold   = 64
	defaultMinCoverageRatio = 0.02
	defaultSampleStep       = 1

	// minVisibleAlpha is the alpha floor below which a pixel never counts
	// as ink, whatever its color.
	minVisibleAlpha = 16
)

// Luminance weights, an integer approximation of the 0.2126/0.7152/0.0722
// luma coefficients scaled by 256.
const (
	lumaR     = 54
	lumaG     = 183
	lumaB     = 19
	lumaShift = 8
)

func (o *ScanOptions) withDefaults() ScanOptions {
	var v ScanOptions
	if o != nil {
		v = *o
	}
	if v.BlackThreshold == 0 {
		v.BlackThreshold = defaultBlackThreshold
	}
	if v.MinCoverageRatio == 0 {
		v.MinCoverageRatio = defaultMinCoverageRatio
	}
	if v.SampleStep <= 0 {
		v.SampleStep = defaultSampleStep
	}
	return v
}

// ComputeHorizontalBounds scans buf column by column from both edges and
// returns the inclusive bounds of the inked region. When no inked column
// exists, or the buffer is too small for the declared dimensions, it
// returns the full-width sentinel {0, width-1}; callers must treat that as
// "do not trim", not as an error.
func ComputeHorizontalBounds(buf []byte, width, height int, layout ChannelLayout, opts *ScanOptions) Bounds {
	full := Bounds{Left: 0, Right: width - 1}
	if width <= 0 || height <= 0 || len(buf) < width*height*BytesPerPixel {
		return full
	}
	o := opts.withDefaults()

	minHits := int(float64(height) * o.MinCoverageRatio)
	if minHits < 1 {
		minHits = 1
	}
	rowStride := width * BytesPerPixel

	// columnInked short-circuits as soon as the column reaches minHits.
	columnInked := func(x int) bool {
		hits := 0
		for y := 0; y < height; y += o.SampleStep {
			p := y*rowStride + x*BytesPerPixel
			if buf[p+layout.A] < minVisibleAlpha {
				continue
			}
			lum := (lumaR*int(buf[p+layout.R]) + lumaG*int(buf[p+layout.G]) + lumaB*int(buf[p+layout.B])) >> lumaShift
			if lum <= o.BlackThreshold {
				hits++
				if hits >= minHits {
					return true
				}
			}
		}
		return false
	}

	left := -1
	for x := 0; x < width; x++ {
		if columnInked(x) {
			left = x
			break
		}
	}
	if left < 0 {
		return full
	}

	right := left
	for x := width - 1; x > left; x-- {
		if columnInked(x) {
			right = x
			break
		}
	}
	return Bounds{Left: left, Right: right}
}
