// Package svg renders Code 128 module sequences as SVG documents.
package svg

import (
	"fmt"
	"strings"

	"github.com/labelkit/labelkit/code128"
)

// Options configures barcode rendering. The zero value of any field means
// "use the default".
type Options struct {
	// ModuleWidth is the width of one module unit in pixels.
	ModuleWidth int

	// Height is the total image height in pixels, caption included.
	Height int

	// QuietZone is the blank margin on each side, in module units.
	QuietZone int

	// Background is the fill of the background rectangle.
	Background string

	// BarColor is the fill of the bar rectangles and the caption.
	BarColor string

	// DisplayValue draws the encoded text centered under the bars.
	DisplayValue bool

	// FontFamily is the caption font family.
	FontFamily string

	// FontSize is the caption font size in pixels.
	FontSize int

	// TextMargin is the gap between the bars and the caption in pixels.
	TextMargin int
}

const (
	defaultModuleWidth = 2
	defaultHeight      = 60
	defaultQuietZone   = 10
	defaultBackground  = "#ffffff"
	defaultBarColor    = "#000000"
	defaultFontFamily  = "monospace"
	defaultFontSize    = 14
	defaultTextMargin  = 2
)

// captionBaselineFactor approximates the distance from the top of the text
// box to the font baseline as a fraction of the font size. It is an
// empirical constant, not derived from font metrics.
const captionBaselineFactor = 0.8

func withDefaults(opts *Options) Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.ModuleWidth == 0 {
		o.ModuleWidth = defaultModuleWidth
	}
	if o.Height == 0 {
		o.Height = defaultHeight
	}
	if o.QuietZone == 0 {
		o.QuietZone = defaultQuietZone
	}
	if o.Background == "" {
		o.Background = defaultBackground
	}
	if o.BarColor == "" {
		o.BarColor = defaultBarColor
	}
	if o.FontFamily == "" {
		o.FontFamily = defaultFontFamily
	}
	if o.FontSize == 0 {
		o.FontSize = defaultFontSize
	}
	if o.TextMargin == 0 {
		o.TextMargin = defaultTextMargin
	}
	return o
}

// xmlEscaper escapes the five XML special characters, so any Subset B
// payload embeds safely in attribute values and text content.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Render encodes text as Code 128 Subset B and returns a self-contained
// SVG document. A nil opts renders with all defaults.
func Render(text string, opts *Options) (string, error) {
	modules, err := code128.EncodeToModules(text)
	if err != nil {
		return "", err
	}
	o := withDefaults(opts)

	units := 2 * o.QuietZone
	for _, m := range modules {
		units += m
	}
	width := units * o.ModuleWidth

	barHeight := o.Height
	if o.DisplayValue {
		barHeight = o.Height - (o.FontSize + o.TextMargin)
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, o.Height, width, o.Height)
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="%s"/>`+"\n",
		width, o.Height, xmlEscaper.Replace(o.Background))

	// The first module of every symbol table pattern is a bar, so the walk
	// starts with a bar and alternates from there. Spaces advance the
	// cursor without emitting anything.
	x := o.QuietZone * o.ModuleWidth
	bar := true
	for _, m := range modules {
		w := m * o.ModuleWidth
		if bar {
			fmt.Fprintf(&b, `  <rect x="%d" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
				x, w, barHeight, xmlEscaper.Replace(o.BarColor))
		}
		x += w
		bar = !bar
	}

	if o.DisplayValue {
		baseline := float64(barHeight+o.TextMargin) + captionBaselineFactor*float64(o.FontSize)
		fmt.Fprintf(&b, `  <text x="%g" y="%g" text-anchor="middle" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
			float64(width)/2, baseline,
			xmlEscaper.Replace(o.FontFamily), o.FontSize,
			xmlEscaper.Replace(o.BarColor), xmlEscaper.Replace(text))
	}
	b.WriteString("</svg>\n")
	return b.String(), nil
}
