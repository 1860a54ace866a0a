package linecharts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
)

var (
	ErrUnknownKey = errors.New("unknown key")
	ErrColor      = errors.New("invalid color")
)

// ThemeError reports the key of a theme that could not be used.
type ThemeError struct {
	Key string
	Err error
}

func (e *ThemeError) Error() string {
	return fmt.Sprintf("theme: %s: %v", e.Key, e.Err)
}

func (e *ThemeError) Unwrap() error {
	return e.Err
}

func themeError(key string, err error) error {
	return &ThemeError{Key: key, Err: err}
}

// Color is a colour written as a hex string: #rgb, #rgba, #rrggbb or
// #rrggbbaa.
type Color struct {
	gg.RGBA
}

func Hex(str string) Color {
	return Color{RGBA: gg.Hex(str)}
}

func (c *Color) UnmarshalText(text []byte) error {
	str := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	switch len(str) {
	case 3, 4, 6, 8:
	default:
		return fmt.Errorf("%w %q", ErrColor, text)
	}
	for _, r := range str {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("%w %q", ErrColor, text)
		}
	}
	c.RGBA = gg.Hex(str)
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	var (
		r = uint8(c.R*255 + 0.5)
		g = uint8(c.G*255 + 0.5)
		b = uint8(c.B*255 + 0.5)
		a = uint8(c.A*255 + 0.5)
	)
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)), nil
}

func toPalette(cs []Color) Palette {
	p := make(Palette, 0, len(cs))
	for _, c := range cs {
		p = append(p, c.RGBA)
	}
	return p
}

func fromPalette(p Palette) []Color {
	cs := make([]Color, 0, len(p))
	for _, c := range p {
		cs = append(cs, Color{RGBA: c})
	}
	return cs
}

type ChartTheme struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Padding     float64 `toml:"padding"`
	Background  Color   `toml:"background"`
	Mode        string  `toml:"mode"`
	DateFormat  string  `toml:"date_format"`
	Timezone    string  `toml:"timezone"`
	EpochDays   bool    `toml:"epoch_days"`
	StartAtZero bool    `toml:"start_at_zero"`
	MaxValues   int     `toml:"max_visible_values"`
	Center      bool    `toml:"center_categories"`
	Modulus     int     `toml:"modulus"`
	Inverted    bool    `toml:"inverted"`
}

type FillTheme struct {
	Enabled bool    `toml:"enabled"`
	Color   Color   `toml:"color"`
	Alpha   float64 `toml:"alpha"`
}

type CircleTheme struct {
	Enabled   bool    `toml:"enabled"`
	Radius    float64 `toml:"radius"`
	Colors    []Color `toml:"colors"`
	Hole      bool    `toml:"hole"`
	HoleColor Color   `toml:"hole_color"`
}

type ValueTheme struct {
	Enabled bool    `toml:"enabled"`
	Size    float64 `toml:"size"`
	Digits  int     `toml:"digits"`
	Colors  []Color `toml:"colors"`
}

type HighlightTheme struct {
	Enabled    bool      `toml:"enabled"`
	Color      Color     `toml:"color"`
	Width      float64   `toml:"width"`
	Dash       []float64 `toml:"dash"`
	Vertical   bool      `toml:"vertical"`
	Horizontal bool      `toml:"horizontal"`
}

type LineTheme struct {
	Width         float64        `toml:"width"`
	Colors        []Color        `toml:"colors"`
	Dash          []float64      `toml:"dash"`
	Interpolation string         `toml:"interpolation"`
	Intensity     float64        `toml:"intensity"`
	Fill          FillTheme      `toml:"fill"`
	Circle        CircleTheme    `toml:"circle"`
	Values        ValueTheme     `toml:"values"`
	Highlight     HighlightTheme `toml:"highlight"`
}

type AxisTheme struct {
	Enabled       bool    `toml:"enabled"`
	Position      string  `toml:"position"`
	Line          bool    `toml:"line"`
	LineColor     Color   `toml:"line_color"`
	Grid          bool    `toml:"grid"`
	GridColor     Color   `toml:"grid_color"`
	Labels        bool    `toml:"labels"`
	LabelColor    Color   `toml:"label_color"`
	FontSize      float64 `toml:"font_size"`
	Rotation      float64 `toml:"rotation"`
	Spacing       int     `toml:"spacing"`
	AvoidClipping bool    `toml:"avoid_clipping"`
	TargetLabels  int     `toml:"target_labels"`
}

// Theme is the TOML representation of the look of a chart.
type Theme struct {
	Chart ChartTheme `toml:"chart"`
	Line  LineTheme  `toml:"line"`
	XAxis AxisTheme  `toml:"xaxis"`
}

func DefaultTheme() *Theme {
	var (
		opts  = DefaultOptions(800, 400)
		style = DefaultLineStyle()
		axis  = opts.XAxis
	)
	return &Theme{
		Chart: ChartTheme{
			Width:      opts.Width,
			Height:     opts.Height,
			Padding:    opts.Padding.Top,
			Background: Color{RGBA: opts.Background},
			Mode:       opts.Mode.String(),
			DateFormat: DefaultDateFormat,
			Timezone:   "UTC",
			MaxValues:  opts.MaxVisibleValueCount,
		},
		Line: LineTheme{
			Width:         style.Width,
			Colors:        fromPalette(style.Colors),
			Interpolation: style.Mode.String(),
			Intensity:     style.Intensity,
			Fill: FillTheme{
				Enabled: style.Fill.Enabled,
				Color:   Color{RGBA: style.Fill.Color},
				Alpha:   style.Fill.Alpha,
			},
			Circle: CircleTheme{
				Enabled:   style.Circle.Enabled,
				Radius:    style.Circle.Radius,
				Colors:    fromPalette(style.Circle.Colors),
				Hole:      style.Circle.Hole,
				HoleColor: Color{RGBA: style.Circle.HoleColor},
			},
			Values: ValueTheme{
				Enabled: style.Value.Enabled,
				Size:    style.Value.Size,
				Digits:  defaultValueFormatter.Digits,
				Colors:  fromPalette(style.Value.Colors),
			},
			Highlight: HighlightTheme{
				Enabled:    style.Highlight.Enabled,
				Color:      Color{RGBA: style.Highlight.Color},
				Width:      style.Highlight.Width,
				Vertical:   style.Highlight.Vertical,
				Horizontal: style.Highlight.Horizontal,
			},
		},
		XAxis: AxisTheme{
			Enabled:      axis.Enabled,
			Position:     "bottom",
			Line:         axis.DrawAxisLine,
			LineColor:    Color{RGBA: axis.AxisColor},
			Grid:         axis.DrawGridLines,
			GridColor:    Color{RGBA: axis.GridColor},
			Labels:       axis.DrawLabels,
			LabelColor:   Color{RGBA: axis.LabelColor},
			FontSize:     axis.FontSize,
			Spacing:      axis.SpaceBetweenLabels,
			TargetLabels: DefaultTargetLabels,
		},
	}
}

// LoadTheme decodes a theme on top of DefaultTheme. Keys that are not part of
// a theme are rejected.
func LoadTheme(r io.Reader) (*Theme, error) {
	t := DefaultTheme()
	md, err := toml.NewDecoder(r).Decode(t)
	if err != nil {
		return nil, err
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, themeError(und[0].String(), ErrUnknownKey)
	}
	if _, err := t.Options(); err != nil {
		return nil, err
	}
	if _, err := t.LineStyle(); err != nil {
		return nil, err
	}
	return t, nil
}

func LoadThemeFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTheme(f)
}

// Options returns the chart options described by the theme.
func (t *Theme) Options() (Options, error) {
	opts := DefaultOptions(t.Chart.Width, t.Chart.Height)
	mode, err := ParseMode(t.Chart.Mode)
	if err != nil {
		return opts, themeError("chart.mode", err)
	}
	loc := time.UTC
	if t.Chart.Timezone != "" {
		loc, err = time.LoadLocation(t.Chart.Timezone)
		if err != nil {
			return opts, themeError("chart.timezone", err)
		}
	}
	unit := Second
	if t.Chart.EpochDays {
		unit = Day
	}
	date, err := NewDateFormat(t.Chart.DateFormat, loc, unit)
	if err != nil {
		return opts, themeError("chart.date_format", err)
	}
	pos, err := ParseLabelPosition(t.XAxis.Position)
	if err != nil {
		return opts, themeError("xaxis.position", err)
	}
	if t.Chart.Padding > 0 {
		opts.Padding = Padding{
			Top:    t.Chart.Padding,
			Right:  t.Chart.Padding,
			Bottom: t.Chart.Padding + t.XAxis.FontSize,
			Left:   t.Chart.Padding,
		}
	}
	opts.Mode = mode
	opts.Background = t.Chart.Background.RGBA
	opts.StartAtZero = t.Chart.StartAtZero
	opts.MaxVisibleValueCount = t.Chart.MaxValues
	opts.Inverted = t.Chart.Inverted
	opts.Strategy = StrategyOptions{
		Date:             date,
		CenterCategories: t.Chart.Center,
		Modulus:          t.Chart.Modulus,
		TargetLabels:     t.XAxis.TargetLabels,
	}

	axis := &opts.XAxis
	axis.Enabled = t.XAxis.Enabled
	axis.Position = pos
	axis.DrawAxisLine = t.XAxis.Line
	axis.AxisColor = t.XAxis.LineColor.RGBA
	axis.DrawGridLines = t.XAxis.Grid
	axis.GridColor = t.XAxis.GridColor.RGBA
	axis.DrawLabels = t.XAxis.Labels
	axis.LabelColor = t.XAxis.LabelColor.RGBA
	axis.FontSize = t.XAxis.FontSize
	axis.LabelRotation = t.XAxis.Rotation
	axis.SpaceBetweenLabels = t.XAxis.Spacing
	axis.AvoidFirstLastClipping = t.XAxis.AvoidClipping
	return opts, nil
}

// LineStyle returns the style of the lines described by the theme.
func (t *Theme) LineStyle() (LineStyle, error) {
	style := DefaultLineStyle()
	mode, err := parseInterpolation(t.Line.Interpolation)
	if err != nil {
		return style, themeError("line.interpolation", err)
	}
	style.Mode = mode
	style.Width = t.Line.Width
	style.Dash = t.Line.Dash
	style.Intensity = t.Line.Intensity
	if len(t.Line.Colors) > 0 {
		style.Colors = toPalette(t.Line.Colors)
	}

	style.Fill.Enabled = t.Line.Fill.Enabled
	style.Fill.Color = t.Line.Fill.Color.RGBA
	style.Fill.Alpha = t.Line.Fill.Alpha

	style.Circle.Enabled = t.Line.Circle.Enabled
	style.Circle.Radius = t.Line.Circle.Radius
	style.Circle.Hole = t.Line.Circle.Hole
	style.Circle.HoleColor = t.Line.Circle.HoleColor.RGBA
	if len(t.Line.Circle.Colors) > 0 {
		style.Circle.Colors = toPalette(t.Line.Circle.Colors)
	}

	style.Value.Enabled = t.Line.Values.Enabled
	style.Value.Size = t.Line.Values.Size
	style.Value.Formatter = DecimalFormatter{Digits: t.Line.Values.Digits}
	if len(t.Line.Values.Colors) > 0 {
		style.Value.Colors = toPalette(t.Line.Values.Colors)
	}

	style.Highlight.Enabled = t.Line.Highlight.Enabled
	style.Highlight.Color = t.Line.Highlight.Color.RGBA
	style.Highlight.Width = t.Line.Highlight.Width
	style.Highlight.Dash = t.Line.Highlight.Dash
	style.Highlight.Vertical = t.Line.Highlight.Vertical
	style.Highlight.Horizontal = t.Line.Highlight.Horizontal
	return style, nil
}

// Apply sets the line style of the theme on each data set. The palette of the
// theme is distributed over the data sets when each of them is drawn with a
// single colour.
func (t *Theme) Apply(sets ...*DataSet) error {
	style, err := t.LineStyle()
	if err != nil {
		return err
	}
	palette := style.Colors
	for i, ds := range sets {
		ds.Style = style
		if len(palette) > 1 && len(sets) > 1 {
			c := palette.At(i)
			ds.Style.Colors = Palette{c}
			ds.Style.Fill.Color = c
			ds.Style.Circle.Colors = Palette{c}
		}
	}
	return nil
}

func parseInterpolation(str string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "linear":
		return Linear, nil
	case "stepped", "step":
		return Stepped, nil
	case "cubic", "smooth":
		return Cubic, nil
	default:
		return Linear, fmt.Errorf("%s: unknown interpolation", str)
	}
}
