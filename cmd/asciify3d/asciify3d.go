// Command asciify3d converts an image to ASCII art with the short ramp.
// Shading is on unless --no-shading is given; the shaded buffer can be
// previewed as sixel graphics or saved as a PNG, the text is unaffected.
package main

import (
	"io"
	"os"

	"github.com/mattn/go-sixel"
	"golang.org/x/exp/slog"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/internal/cli"
)

type options struct {
	cli.Common

	Width      int    `long:"width" description:"Width for ASCII art" default:"100"`
	Shading    bool   `long:"shading" description:"Add 3D shading to ASCII art (on by default, overrides --no-shading)"`
	NoShading  bool   `long:"no-shading" description:"Skip the shading overlay"`
	Output     string `long:"output" description:"Output file path, - for stdout" default:"output.txt"`
	Preview    bool   `long:"preview" description:"Print the shading overlay to stderr as sixel graphics"`
	ShadingOut string `long:"shading-out" description:"Save the shading overlay as a PNG"`

	Args struct {
		Image string `positional-arg-name:"IMAGE" required:"yes" description:"Path to the image file"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	if _, done, code := cli.Parse(&opts, "asciify3d", args, stdout, stderr); done {
		return code
	}

	logger := cli.NewLogger(stderr, opts.Verbose)

	convOpts, err := opts.ConverterOptions(logger)
	if err != nil {
		return cli.ExitCode(logger, err, opts.LegacyExit)
	}

	shading := opts.Shading || !opts.NoShading
	conv := img2ascii.NewShadingConverter(opts.Width, shading, convOpts...)
	res, err := conv.ConvertFile(opts.Args.Image)
	if err == nil {
		err = emitOverlay(res.Overlay, opts, stderr, logger)
	}
	if err == nil {
		err = cli.Emit(stdout, opts.Output, res.Document, logger)
	}
	if err == nil {
		err = cli.EmitPNG(opts.RenderPNG, res.Document, logger)
	}
	return cli.ExitCode(logger, err, opts.LegacyExit)
}

func emitOverlay(overlay *imageutil.GrayImage, opts options, stderr io.Writer, logger *slog.Logger) error {
	if overlay == nil {
		return nil
	}
	if opts.ShadingOut != "" {
		if err := imageutil.SavePNG(overlay.Gray, opts.ShadingOut); err != nil {
			return &img2ascii.Error{Kind: img2ascii.KindWrite, Path: opts.ShadingOut, Err: err}
		}
		logger.Info("wrote shading overlay", "path", opts.ShadingOut)
	}
	if opts.Preview {
		if err := sixel.NewEncoder(stderr).Encode(imageutil.GrayscaleToRGBA(overlay)); err != nil {
			return &img2ascii.Error{Kind: img2ascii.KindWrite, Err: err}
		}
	}
	return nil
}
