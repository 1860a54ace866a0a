package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/midbel/linecharts"
	"github.com/midbel/linecharts/rastercanvas"
	"github.com/midbel/linecharts/svgcanvas"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type renderOptions struct {
	mode    string
	interp  string
	theme   string
	font    string
	outputs []string
	points  int
	series  int
	fill    bool
	watch   bool
}

func renderCommand() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a demo chart to svg and/or png files",
		Long: `render draws generated sine series with the given value mode and
theme. Each output is rendered independently; the format is chosen from the
file extension (.svg or .png).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Value mode: ordinal, numeric or temporal (default from theme)")
	cmd.Flags().StringVarP(&opts.interp, "interp", "i", "", "Interpolation: linear, stepped or cubic (default from theme)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file")
	cmd.Flags().StringVar(&opts.font, "font", "", "TTF font used for text in png outputs")
	cmd.Flags().StringSliceVarP(&opts.outputs, "out", "o", []string{"chart.svg"}, "Output files")
	cmd.Flags().IntVarP(&opts.points, "points", "n", 30, "Number of points per series")
	cmd.Flags().IntVar(&opts.series, "series", 1, "Number of series")
	cmd.Flags().BoolVar(&opts.fill, "fill", false, "Fill the area below the lines")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Render again each time the theme file changes")
	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	if err := renderAll(cmd.Context(), opts); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	if opts.theme == "" {
		return fmt.Errorf("--watch requires a theme file")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchTheme(ctx, opts)
}

func watchTheme(ctx context.Context, opts renderOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file: watch the directory and filter on name.
	file := filepath.Clean(opts.theme)
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("watch %s: %w", file, err)
	}
	logger := linecharts.Logger()
	logger.Info("watching theme", "file", file)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != file || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := renderAll(ctx, opts); err != nil {
				logger.Error("render failed", "err", err)
				continue
			}
			logger.Info("chart rendered", "outputs", strings.Join(opts.outputs, ","))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "err", err)
		}
	}
}

// renderAll draws every output concurrently. Each output gets its own chart
// since a chart and its path buffers can not be shared.
func renderAll(ctx context.Context, opts renderOptions) error {
	theme := linecharts.DefaultTheme()
	if opts.theme != "" {
		t, err := linecharts.LoadThemeFile(opts.theme)
		if err != nil {
			return err
		}
		theme = t
	}
	if opts.mode != "" {
		theme.Chart.Mode = opts.mode
	}
	if opts.interp != "" {
		theme.Line.Interpolation = opts.interp
	}
	if opts.fill {
		theme.Line.Fill.Enabled = true
	}
	grp, ctx := errgroup.WithContext(ctx)
	for _, out := range opts.outputs {
		out := out
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chart, err := buildChart(theme, opts)
			if err != nil {
				return err
			}
			if err := writeChart(chart, out, opts.font); err != nil {
				return fmt.Errorf("%s: %w", out, err)
			}
			return nil
		})
	}
	return grp.Wait()
}

func buildChart(theme *linecharts.Theme, opts renderOptions) (*linecharts.LineChart, error) {
	chartOpts, err := theme.Options()
	if err != nil {
		return nil, err
	}
	sets := demoSets(chartOpts, opts)
	if err := theme.Apply(sets...); err != nil {
		return nil, err
	}
	list := make([]linecharts.Series, 0, len(sets))
	for _, ds := range sets {
		list = append(list, ds)
	}
	chart := linecharts.NewLineChart(chartOpts)
	chart.SetData(list...)
	if len(sets) > 0 {
		chart.Highlight(linecharts.Highlight{DataSet: 0, Index: sets[0].Len() / 2})
	}
	return chart, nil
}

func demoSets(chartOpts linecharts.Options, opts renderOptions) []*linecharts.DataSet {
	var (
		count = max(opts.series, 1)
		sets  = make([]*linecharts.DataSet, 0, count)
	)
	for i := 0; i < count; i++ {
		entries := demoEntries(chartOpts, opts.points, float64(i))
		sets = append(sets, linecharts.NewDataSet(fmt.Sprintf("serie-%d", i), entries))
	}
	return sets
}

// demoEntries generates a sine wave whose keys match the value mode of the
// chart.
func demoEntries(opts linecharts.Options, n int, shift float64) []linecharts.Entry {
	var (
		date  = opts.Strategy.Date
		start = 19723.0
		es    = make([]linecharts.Entry, 0, max(n, 0))
	)
	if date.Unit == linecharts.Second {
		start *= 86400
	}
	for i := 0; i < n; i++ {
		e := linecharts.Entry{
			Index: i,
			Value: 10 + 5*math.Sin(float64(i)/3+shift),
		}
		switch opts.Mode {
		case linecharts.Numeric:
			e.Key = strconv.FormatFloat(float64(i)*0.5, 'f', -1, 64)
		case linecharts.Temporal:
			step := 1.0
			if date.Unit == linecharts.Second {
				step = 86400
			}
			e.Key = date.Format(start + float64(i)*step)
		default:
			e.Key = fmt.Sprintf("P%d", i)
		}
		es = append(es, e)
	}
	return es
}

func writeChart(chart *linecharts.LineChart, file, font string) error {
	vp := chart.Viewport()
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".svg":
		cv := svgcanvas.New(vp.Width, vp.Height)
		if err := chart.Draw(cv); err != nil {
			return err
		}
		w, err := os.Create(file)
		if err != nil {
			return err
		}
		if _, err := cv.WriteTo(w); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	case ".png":
		var options []rastercanvas.Option
		if font != "" {
			options = append(options, rastercanvas.WithFont(font))
		}
		cv, err := rastercanvas.New(int(vp.Width), int(vp.Height), options...)
		if err != nil {
			return err
		}
		defer cv.Close()
		if err := chart.Draw(cv); err != nil {
			return err
		}
		return cv.SavePNG(file)
	default:
		return errors.New("unsupported output format " + ext)
	}
}
