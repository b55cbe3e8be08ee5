package main

import (
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/image/bmp"
	log "unknwon.dev/clog/v2"

	"github.com/labelkit/labelkit/raster"
	"github.com/labelkit/labelkit/trim"
)

var cmdTrim = cli.Command{
	Name:      "trim",
	Usage:     "Trim horizontal white margins from a rasterized barcode",
	ArgsUsage: "<input> <output>",
	Description: `Trim scans the input image (PNG, JPEG, GIF or BMP) for the columns that
actually contain ink and writes a copy with the excess margin removed.
Images with no detectable ink are written through unchanged. The output
format is chosen by the output file extension (.png, .jpg, .bmp).`,
	Action: runTrim,
	Flags: []cli.Flag{
		cli.IntFlag{Name: "threshold", Value: 64, Usage: "Maximum luminance of an inked pixel"},
		cli.Float64Flag{Name: "coverage", Value: 0.02, Usage: "Minimum inked fraction for a column to count"},
		cli.IntFlag{Name: "step", Value: 1, Usage: "Vertical sampling stride"},
	},
}

func runTrim(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("expected exactly two arguments: input and output paths")
	}
	inPath, outPath := c.Args().Get(0), c.Args().Get(1)

	f, err := os.Open(inPath)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return errors.Wrap(err, "decode input image")
	}

	opts := &raster.ScanOptions{
		BlackThreshold:   c.Int("threshold"),
		MinCoverageRatio: c.Float64("coverage"),
		SampleStep:       c.Int("step"),
	}
	out := trim.Horizontal(img, trim.Info{Kind: trim.KindCode128}, opts)
	if out == img {
		log.Info("%s: no trim needed (%dx%d %s)", inPath,
			img.Bounds().Dx(), img.Bounds().Dy(), format)
	} else {
		log.Info("%s: trimmed %dx%d -> %dx%d", inPath,
			img.Bounds().Dx(), img.Bounds().Dy(),
			out.Bounds().Dx(), out.Bounds().Dy())
	}

	return writeImage(outPath, out)
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return errors.Wrap(err, "encode output image")
	}
	return errors.Wrap(f.Close(), "close output")
}
