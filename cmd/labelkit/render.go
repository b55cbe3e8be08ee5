package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/labelkit/labelkit/svg"
)

var cmdRender = cli.Command{
	Name:      "render",
	Usage:     "Render text as a Code 128 (Subset B) SVG barcode",
	ArgsUsage: "<text>",
	Action:    runRender,
	Flags: []cli.Flag{
		cli.IntFlag{Name: "module-width", Value: 2, Usage: "Width of one module in pixels"},
		cli.IntFlag{Name: "height", Value: 60, Usage: "Total image height in pixels"},
		cli.IntFlag{Name: "quiet-zone", Value: 10, Usage: "Blank margin on each side in modules"},
		cli.BoolFlag{Name: "text", Usage: "Draw the encoded text under the bars"},
		cli.IntFlag{Name: "font-size", Value: 14, Usage: "Caption font size in pixels"},
		cli.StringFlag{Name: "out, o", Usage: "Output file (default stdout)"},
	},
}

func runRender(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one argument: the text to encode")
	}

	markup, err := svg.Render(c.Args().First(), &svg.Options{
		ModuleWidth:  c.Int("module-width"),
		Height:       c.Int("height"),
		QuietZone:    c.Int("quiet-zone"),
		DisplayValue: c.Bool("text"),
		FontSize:     c.Int("font-size"),
	})
	if err != nil {
		return errors.Wrap(err, "render barcode")
	}

	if out := c.String("out"); out != "" {
		if err = os.WriteFile(out, []byte(markup), 0644); err != nil {
			return errors.Wrap(err, "write output file")
		}
		return nil
	}
	_, err = os.Stdout.WriteString(markup)
	return err
}
