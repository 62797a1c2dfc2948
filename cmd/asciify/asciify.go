// Command asciify converts an image to ASCII art with the long ramp and
// writes it to a file.
//
//	asciify IMAGE [WIDTH [BRIGHTNESS [OUTPUT]]]
//
// WIDTH defaults to 100, BRIGHTNESS to 1.0 and OUTPUT to output.txt. An
// OUTPUT of "-" prints to stdout. Any other OUTPUT receives the text as is;
// --render-png PATH additionally draws the art as an image.
package main

import (
	"io"
	"os"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/internal/cli"
)

type options struct {
	cli.Common

	Args struct {
		Image      string  `positional-arg-name:"IMAGE" required:"yes" description:"Path to the image"`
		Width      int     `positional-arg-name:"WIDTH" description:"Characters per line (default 100)"`
		Brightness float64 `positional-arg-name:"BRIGHTNESS" description:"Brightness divisor (default 1.0)"`
		Output     string  `positional-arg-name:"OUTPUT" description:"Output file, - for stdout (default output.txt)"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	opts.Args.Width = 100
	opts.Args.Brightness = 1.0
	opts.Args.Output = "output.txt"

	if _, done, code := cli.Parse(&opts, "asciify", args, stdout, stderr); done {
		return code
	}

	logger := cli.NewLogger(stderr, opts.Verbose)

	convOpts, err := opts.ConverterOptions(logger)
	if err != nil {
		return cli.ExitCode(logger, err, opts.LegacyExit)
	}

	conv := img2ascii.NewBrightnessConverter(opts.Args.Width, opts.Args.Brightness, convOpts...)
	res, err := conv.ConvertFile(opts.Args.Image)
	if err == nil {
		err = cli.Emit(stdout, opts.Args.Output, res.Document, logger)
	}
	if err == nil {
		err = cli.EmitPNG(opts.RenderPNG, res.Document, logger)
	}
	return cli.ExitCode(logger, err, opts.LegacyExit)
}
