package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amterp/ra"
	"github.com/jitterbugs/jitterkit/internal/centroid"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/plot"
	"github.com/jitterbugs/jitterkit/internal/util"
	"github.com/schollz/progressbar/v3"
)

// plotOutputSuffix is appended to the input file slug for default output names.
const plotOutputSuffix = "-centroid-plot"

type plotArgs struct {
	file       string
	output     string
	format     string
	style      string
	xHeader    string
	yHeader    string
	positional bool
	skip       int
	xCol       int
	yCol       int
}

func registerPlot(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("plot")
	cmd.SetDescription("Render a Centroid X/Y scatter plot from a CSV file")

	defaults := centroid.DefaultPositionalOptions()

	ctx.PlotFile, _ = ra.NewString("file").
		SetUsage("CSV file to plot").
		Register(cmd)

	ctx.PlotOutput, _ = ra.NewString("output").
		SetShort("o").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output image path (default: <input>-centroid-plot.<format>)").
		Register(cmd)

	ctx.PlotFormat, _ = ra.NewString("format").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Image format: png or svg (default from settings)").
		Register(cmd)

	ctx.PlotStyle, _ = ra.NewString("style").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Point style: scatter or polyline (default from settings)").
		Register(cmd)

	ctx.PlotXHeader, _ = ra.NewString("x-header").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(centroid.HeaderX).
		SetUsage("Header of the X column").
		Register(cmd)

	ctx.PlotYHeader, _ = ra.NewString("y-header").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(centroid.HeaderY).
		SetUsage("Header of the Y column").
		Register(cmd)

	ctx.PlotPositional, _ = ra.NewBool("positional").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Select columns by position instead of header (tracker export layout)").
		Register(cmd)

	ctx.PlotSkip, _ = ra.NewInt("skip").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(defaults.SkipRows).
		SetUsage("Rows to skip with --positional").
		Register(cmd)

	ctx.PlotXCol, _ = ra.NewInt("x-col").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(defaults.XCol).
		SetUsage("Zero-based X column with --positional").
		Register(cmd)

	ctx.PlotYCol, _ = ra.NewInt("y-col").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(defaults.YCol).
		SetUsage("Zero-based Y column with --positional").
		Register(cmd)

	ctx.PlotUsed, _ = parent.RegisterCmd(cmd)
}

// plotResult is the JSON output of the plot command.
type plotResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Format string `json:"format"`
	Points int    `json:"points"`
}

func runPlot(args plotArgs, jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	opts, err := resolvePlotOptions(app.Services.PlotService.Options(), args.format, args.style)
	if err != nil {
		Fatal(err)
	}

	if err := centroid.CheckFileName(args.file); err != nil {
		Fatal(err)
	}

	f, err := os.Open(args.file)
	if err != nil {
		Fatal(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		Fatal(err)
	}

	barOut := io.Writer(os.Stderr)
	if jsonOutput {
		barOut = io.Discard
	}
	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetDescription("reading "+filepath.Base(args.file)),
		progressbar.OptionSetWriter(barOut),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	series, err := readSeries(io.TeeReader(f, bar), args)
	_ = bar.Finish()
	if err != nil {
		Fatal(err)
	}

	output := args.output
	if output == "" {
		output = defaultPlotOutput(args.file, opts.Format)
	}

	var buf bytes.Buffer
	if err := plot.NewChartRenderer().Render(&buf, series, opts); err != nil {
		Fatal(err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		Fatal(fmt.Errorf("failed to write plot: %w", err))
	}

	if jsonOutput {
		if err := printJson(plotResult{
			Input:  args.file,
			Output: output,
			Format: opts.Format,
			Points: series.Len(),
		}); err != nil {
			Fatal(err)
		}
		return
	}

	PrintSuccess("Plotted %d points from %s", series.Len(), filepath.Base(args.file))
	PrintInfo("Wrote %s", RenderURL(output))
}

// resolvePlotOptions applies command line overrides to the configured options.
func resolvePlotOptions(opts plot.Options, format, style string) (plot.Options, error) {
	if format != "" {
		opts = opts.WithFormat(format)
	}
	if style != "" {
		opts.Style = strings.ToLower(style)
	}
	if err := opts.Validate(); err != nil {
		return plot.Options{}, err
	}
	return opts, nil
}

func readSeries(r io.Reader, args plotArgs) (*model.SeriesPair, error) {
	if args.positional {
		return centroid.ParsePositional(r, centroid.PositionalOptions{
			SkipRows: args.skip,
			XCol:     args.xCol,
			YCol:     args.yCol,
		})
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return centroid.ParseColumns(string(data), args.xHeader, args.yHeader)
}

// defaultPlotOutput derives an image name from the input file,
// e.g. "Run 3.csv" -> "run-3-centroid-plot.png". Inputs whose name has no
// usable characters fall back to the default export name.
func defaultPlotOutput(input, format string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	slug := util.Slugify(stem)
	if slug == "" {
		return plot.ExportFileName("", format)
	}
	return plot.ExportFileName(slug+plotOutputSuffix, format)
}
