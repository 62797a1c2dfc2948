// Package cli holds the plumbing shared by the asciify commands: option
// groups, logging setup, output routing and exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

// Common are the options both commands accept.
type Common struct {
	Resample   string `long:"resample" description:"Resampling method: catmullrom, bilinear, nearest or lanczos" default:"catmullrom"`
	Filter     string `long:"filter" description:"Luminance pre-filter: none, sharpen or blur" default:"none"`
	RangeWidth int    `long:"range-width" description:"Luminance bucket width used to pick a ramp character" default:"25"`
	RenderPNG  string `long:"render-png" value-name:"PATH" description:"Also render the art as a PNG image"`
	Strict     bool   `long:"strict" description:"Fail when a pixel maps past the end of the ramp instead of clamping"`
	LegacyExit bool   `long:"legacy-exit" description:"Exit with status 0 when the image cannot be loaded"`
	Verbose    bool   `short:"v" long:"verbose" description:"Log pipeline details"`
}

// ConverterOptions translates the shared options into converter options.
func (c Common) ConverterOptions(logger *slog.Logger) ([]img2ascii.ConverterOption, error) {
	interp, err := imageutil.ParseInterpolation(c.Resample)
	if err != nil {
		return nil, &img2ascii.Error{Kind: img2ascii.KindConfig, Err: err}
	}
	filter, err := imageutil.ParseFilter(c.Filter)
	if err != nil {
		return nil, &img2ascii.Error{Kind: img2ascii.KindConfig, Err: err}
	}
	return []img2ascii.ConverterOption{
		img2ascii.WithInterpolation(interp),
		img2ascii.WithFilter(filter),
		img2ascii.WithRangeWidth(c.RangeWidth),
		img2ascii.WithStrict(c.Strict),
		img2ascii.WithLogger(logger),
	}, nil
}

// NewLogger returns a tint logger on w. Verbose enables debug output.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))
}

// Parse parses args into opts. done is true when the caller should exit
// straight away with the returned code: help goes to stdout with 0, a
// usage error goes to stderr with 2.
func Parse(opts any, name string, args []string, stdout, stderr io.Writer) (rest []string, done bool, code int) {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = name
	rest, err := parser.ParseArgs(args)
	if err == nil {
		return rest, false, 0
	}

	var ferr *flags.Error
	if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
		fmt.Fprintln(stdout, err)
		return nil, true, 0
	}
	fmt.Fprintln(stderr, err)
	return nil, true, 2
}

// Emit sends doc to path. "-" prints to out and warns when the art is
// wider than the terminal behind out.
func Emit(out io.Writer, path string, doc *img2ascii.Document, logger *slog.Logger) error {
	if path != "-" {
		if err := img2ascii.Save(path, doc); err != nil {
			return err
		}
		logger.Info("wrote ascii art", "path", path, "lines", doc.Height(), "width", doc.Width)
		return nil
	}

	if f, ok := out.(*os.File); ok {
		fit := img2ascii.CheckTerminalFit(f, doc)
		if !fit.Fits {
			logger.Warn("ascii art is wider than the terminal",
				"width", doc.DisplayWidth(), "columns", fit.Columns)
		}
	}
	return img2ascii.WriteTo(out, doc)
}

// EmitPNG renders doc as an image at path. An empty path does nothing.
func EmitPNG(path string, doc *img2ascii.Document, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	if err := img2ascii.WritePNG(path, doc, img2ascii.PNGOptions{}); err != nil {
		return err
	}
	logger.Info("rendered ascii art image", "path", path)
	return nil
}

// ExitCode reports err and maps it to a process status. Load failures
// exit 0 when legacy is set.
func ExitCode(logger *slog.Logger, err error, legacy bool) int {
	if err == nil {
		return 0
	}

	var e *img2ascii.Error
	if errors.As(err, &e) && e.Kind == img2ascii.KindLoad {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Error("image file does not exist", "path", e.Path)
		} else {
			logger.Error("unable to open image file", "path", e.Path, "err", e.Err)
		}
		if legacy {
			return 0
		}
		return 1
	}

	logger.Error("conversion failed", "err", err)
	return 1
}
