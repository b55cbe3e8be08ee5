// labelkit renders Code 128 barcodes as SVG and trims the white margins
// of rasterized barcode images.
package main

import (
	"os"

	"github.com/urfave/cli"
	log "unknwon.dev/clog/v2"
)

const version = "0.1.0"

func main() {
	if err := log.NewConsole(); err != nil {
		panic("init console logger: " + err.Error())
	}
	defer log.Stop()

	app := cli.NewApp()
	app.Name = "labelkit"
	app.Usage = "Render Code 128 barcodes and trim scanned margins"
	app.Version = version
	app.Commands = []cli.Command{
		cmdRender,
		cmdTrim,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal("Failed to run command: %v", err)
	}
}
