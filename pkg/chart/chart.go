package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"crisprCutting/pkg/summary"
)

var (
	Palette = []string{
		"#b30000", "#4421af", "#0d88e6",
		"#00b7c7", "#5ad45a", "#8be04e", "#ebdc78",
	}
	DPI = 600

	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch

	// share of the figure right of the plot, for the legend
	LegendFraction = 0.2

	YMax = 100.0 + 5
)

var segmentNames = []string{"WT", "In-Frame", "FS"}

// Options configures StackedBar; zero fields take the package defaults.
type Options struct {
	Palette []string
	DPI     int
}

func (o Options) withDefaults() Options {
	if len(o.Palette) == 0 {
		o.Palette = Palette
	}
	if o.DPI <= 0 {
		o.DPI = DPI
	}
	return o
}

// New builds the stacked bar plot and its legend, one bar per breakdown.
func New(breakdowns []summary.Breakdown, palette []string) (*plot.Plot, plot.Legend, error) {
	var legend = plot.NewLegend()
	if len(breakdowns) == 0 {
		return nil, legend, errors.New("no samples to plot")
	}
	if len(palette) < len(segmentNames) {
		return nil, legend, fmt.Errorf("palette has %d colors, need %d", len(palette), len(segmentNames))
	}

	p := plot.New()
	p.X.Label.Text = "Sample Number"
	p.Y.Label.Text = "Percent of Reads"

	var (
		width  = barWidth(len(breakdowns))
		values = make([]plotter.Values, len(segmentNames))
		labels = make([]string, len(breakdowns))
		multi  = multiGuide(breakdowns)
	)
	for i, b := range breakdowns {
		v := b.Values()
		for j := range segmentNames {
			values[j] = append(values[j], v[j])
		}
		labels[i] = b.Sample
		if multi {
			labels[i] += " " + string(b.Guide)
		}
	}

	var below *plotter.BarChart
	for j, name := range segmentNames {
		bars, err := plotter.NewBarChart(values[j], width)
		if err != nil {
			return nil, legend, err
		}
		c, err := ParseHexColor(palette[j])
		if err != nil {
			return nil, legend, err
		}
		bars.Color = c
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}
		below = bars
		p.Add(bars)
		legend.Add(name, bars)
	}
	p.NominalX(labels...)
	p.Y.Min = 0
	p.Y.Max = YMax

	legend.Top = true
	legend.Left = true
	return p, legend, nil
}

// StackedBar renders breakdowns to a PNG at path.
func StackedBar(path string, breakdowns []summary.Breakdown, opts Options) error {
	opts = opts.withDefaults()
	p, legend, err := New(breakdowns, opts.Palette)
	if err != nil {
		return err
	}

	var (
		img    = vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(opts.DPI))
		dc     = draw.New(img)
		split  = vg.Length(LegendFraction) * Width
		canvas = draw.Crop(dc, 0, -split, 0, 0)
		side   = draw.Crop(dc, Width-split, 0, 0, 0)
	)
	p.Draw(canvas)
	legend.Draw(side)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = (vgimg.PngCanvas{Canvas: img}).WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ParseHexColor parses "#rrggbb".
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func barWidth(n int) vg.Length {
	plotWidth := vg.Length(1-LegendFraction) * Width
	return min(vg.Points(40), plotWidth*0.6/vg.Length(n))
}

func multiGuide(breakdowns []summary.Breakdown) bool {
	for _, b := range breakdowns[1:] {
		if b.Guide != breakdowns[0].Guide {
			return true
		}
	}
	return false
}
