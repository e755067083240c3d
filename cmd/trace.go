package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-optical-raytracer/pkg/optics"
	"github.com/df07/go-optical-raytracer/pkg/plot"
	"github.com/df07/go-optical-raytracer/pkg/scene"
	"github.com/df07/go-optical-raytracer/pkg/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Viewport padding around the scene (mm)
const plotMargin = 10

// traceOptions holds the trace command inputs. Nil overrides keep the
// scene's own configuration.
type traceOptions struct {
	Scene      string
	PNG        string
	PDF        string
	Width      int
	Height     int
	Sequential bool
	Workers    *int
	Threshold  *float64
	MaxEvents  *int
	MaxLength  *float64
}

// apply returns config with the command line overrides applied
func (o traceOptions) apply(config tracer.Config) tracer.Config {
	if o.Sequential {
		config.Parallel = false
	}
	if o.Workers != nil {
		config.NumWorkers = *o.Workers
	}
	if o.Threshold != nil {
		config.EmissionThreshold = *o.Threshold
	}
	if o.MaxEvents != nil {
		config.MaxEvents = *o.MaxEvents
	}
	if o.MaxLength != nil {
		config.MaxPathLength = *o.MaxLength
	}
	return config
}

// Trace runs a built-in scene and prints trace statistics.
func Trace(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts := traceOptions{
		Scene:      ctx.String("scene"),
		PNG:        ctx.String("png"),
		PDF:        ctx.String("pdf"),
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		Sequential: ctx.Bool("sequential"),
	}
	if ctx.IsSet("workers") {
		v := ctx.Int("workers")
		opts.Workers = &v
	}
	if ctx.IsSet("threshold") {
		v := ctx.Float64("threshold")
		opts.Threshold = &v
	}
	if ctx.IsSet("max-events") {
		v := ctx.Int("max-events")
		opts.MaxEvents = &v
	}
	if ctx.IsSet("max-length") {
		v := ctx.Float64("max-length")
		opts.MaxLength = &v
	}

	return runTrace(os.Stdout, opts)
}

func runTrace(w io.Writer, opts traceOptions) error {
	if opts.Scene == "" {
		return errors.New("missing --scene argument")
	}

	sc, err := scene.ByName(opts.Scene)
	if err != nil {
		return err
	}
	sc.Config = opts.apply(sc.Config)

	tr, err := sc.NewTracer(tracerLogger)
	if err != nil {
		return err
	}

	rays := sc.Rays()
	logger.Infof("tracing %d source rays through %d elements in scene %q", len(rays), len(sc.Elements), sc.Info.ID)
	paths, stats := tr.Trace(rays)
	logger.Infof("traced %d paths in %s", len(paths), stats.Duration)

	writeTraceStats(w, stats)

	if opts.PNG != "" || opts.PDF != "" {
		vp := plot.FitViewport(paths, sc.Elements, plotMargin)
		if opts.PNG != "" {
			img := plot.RenderPNG(paths, sc.Elements, vp, opts.Width, opts.Height)
			if err := plot.WritePNG(opts.PNG, img); err != nil {
				return err
			}
			logger.Noticef("wrote %s", opts.PNG)
		}
		if opts.PDF != "" {
			if err := plot.WritePDF(opts.PDF, paths, sc.Elements, vp, float64(opts.Width), float64(opts.Height)); err != nil {
				return fmt.Errorf("failed to write %s: %w", opts.PDF, err)
			}
			logger.Noticef("wrote %s", opts.PDF)
		}
	}

	return nil
}

func writeTraceStats(w io.Writer, stats tracer.TraceStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Mode", fmt.Sprintf("%s (%d workers)", stats.Mode, stats.Workers)})
	table.Append([]string{"Source rays", fmt.Sprintf("%d", stats.Lineages)})
	table.Append([]string{"Degenerate sources", fmt.Sprintf("%d", stats.DegenerateLineages)})
	table.Append([]string{"Rays created", fmt.Sprintf("%d", stats.RaysCreated)})
	table.Append([]string{"Paths", fmt.Sprintf("%d", stats.Paths)})
	for k := 0; k < optics.NumKinds; k++ {
		if n := stats.Interactions[k]; n > 0 {
			table.Append([]string{fmt.Sprintf("Hits: %s", optics.Kind(k)), fmt.Sprintf("%d", n)})
		}
	}
	for t := tracer.Escaped; t <= tracer.Invalid; t++ {
		if n := stats.Terminated(t); n > 0 {
			table.Append([]string{fmt.Sprintf("Ended: %s", t), fmt.Sprintf("%d", n)})
		}
	}
	table.SetFooter([]string{"Trace time", stats.Duration.String()})
	table.Render()
}
