// Package plots draws sweep results as bar, line and scatter charts and
// dumps the underlying numbers as CSV.
//
// Every chart takes a Table: x-axis labels in insertion order, each with a
// series of named values. Charts are drawn onto the given *plot.Plot, or
// onto a new one that is saved to Options.Path.
package plots

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Scale is a y-axis scale.
type Scale string

const (
	Linear Scale = "linear"
	Log    Scale = "log"
)

const (
	defaultWidth  = 8 * vg.Inch
	defaultHeight = 5 * vg.Inch
	groupWidth    = 60 // points shared by the bars of one label
)

// Options control labelling, scaling and side outputs of a chart.
type Options struct {
	XLabel, YLabel, Title string

	// MissingOK lets rows lack keys other rows have; missing values draw as 0.
	MissingOK bool
	LegendOff bool
	LabelBars bool
	YScale    Scale

	PrintCSV    bool
	PrintErrors bool
	Out         io.Writer // CSV and error dumps, os.Stdout when nil

	Path          string // where a newly created plot is saved
	Width, Height vg.Length
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o Options) report(t *Table, keys []string) error {
	if o.PrintErrors {
		if err := PrintErrors(o.out(), t, keys); err != nil {
			return err
		}
	}
	if o.PrintCSV {
		if _, err := fmt.Fprintf(o.out(), "\n%s vs. %s\n", o.XLabel, o.YLabel); err != nil {
			return err
		}
		return OutputCSV(o.out(), t)
	}
	return nil
}

func (o Options) begin(p *plot.Plot) (*plot.Plot, bool) {
	created := p == nil
	if created {
		p = plot.New()
	}
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Legend.Top = true
	return p, created
}

// finish applies the y scale and saves plots created by this package.
// minPositive is the smallest positive value drawn, used as the floor of a
// log axis.
func (o Options) finish(p *plot.Plot, created bool, minPositive float64) error {
	switch o.YScale {
	case Log:
		if minPositive <= 0 || math.IsInf(minPositive, 1) {
			slog.Warn("no positive values, keeping linear y axis", "title", o.Title)
			p.Y.Min = 0
			break
		}
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Min = minPositive / 2
	default:
		p.Y.Min = 0
	}

	if !created || o.Path == "" {
		return nil
	}
	w, h := o.Width, o.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	if err := p.Save(w, h, o.Path); err != nil {
		return fmt.Errorf("plots: save %s: %w", o.Path, err)
	}
	slog.Info("plot saved", "path", o.Path)
	return nil
}

func (o Options) legend(p *plot.Plot, legendKeys []string, name string, thumb plot.Thumbnailer) {
	if len(legendKeys) > 1 && !o.LegendOff {
		p.Legend.Add(name, thumb)
	}
}

func column(t *Table, key string) plotter.Values {
	vs := make(plotter.Values, t.Len())
	for i, l := range t.Labels() {
		vs[i] = t.Value(l, key)
	}
	return vs
}

func minPositive(t *Table) float64 {
	m := math.Inf(1)
	for _, r := range t.Rows() {
		for _, k := range r.keys {
			if v := r.vals[k]; v > 0 {
				m = min(m, v)
			}
		}
	}
	return m
}

// keys returns every key in the table and the keys that must be present
// in every row unless o.MissingOK.
func (o Options) keys(t *Table) (all, legend []string, err error) {
	all, _ = ConsolidateKeys(t.Rows(), true)
	legend, err = ConsolidateKeys(t.Rows(), o.MissingOK)
	return all, legend, err
}

// BarSideBySide draws one bar per key next to each other for every label.
// With LabelBars each bar carries its value and each group its total.
func BarSideBySide(p *plot.Plot, t *Table, o Options) (*plot.Plot, error) {
	keys, legendKeys, err := o.keys(t)
	if err != nil {
		return nil, err
	}
	if err := o.report(t, keys); err != nil {
		return nil, err
	}
	p, created := o.begin(p)

	w := vg.Points(groupWidth / float64(len(keys)+1))
	for i, k := range keys {
		vs := column(t, k)
		bars, err := plotter.NewBarChart(vs, w)
		if err != nil {
			return nil, fmt.Errorf("plots: %s: %w", k, err)
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		bars.Offset = w * vg.Length(float64(i)-float64(len(keys)-1)/2)
		p.Add(bars)
		o.legend(p, legendKeys, k, bars)

		if o.LabelBars {
			xys := make(plotter.XYs, len(vs))
			text := make([]string, len(vs))
			for j, v := range vs {
				xys[j] = plotter.XY{X: float64(j), Y: v / 2}
				text[j] = fmt.Sprintf("%0.1e", v)
			}
			l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
			if err != nil {
				return nil, err
			}
			l.Offset = vg.Point{X: bars.Offset}
			for j := range l.TextStyle {
				l.TextStyle[j].Rotation = math.Pi / 2
				l.TextStyle[j].XAlign = draw.XCenter
				l.TextStyle[j].YAlign = draw.YCenter
			}
			p.Add(l)
		}
	}

	if o.LabelBars && t.Len() > 0 {
		xys := make(plotter.XYs, t.Len())
		text := make([]string, t.Len())
		for j, r := range t.Rows() {
			xys[j] = plotter.XY{X: float64(j), Y: r.Max() * 1.5}
			text[j] = fmt.Sprintf("%0.2e", r.Sum())
		}
		totals, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
		if err != nil {
			return nil, err
		}
		for j := range totals.TextStyle {
			totals.TextStyle[j].XAlign = draw.XCenter
		}
		p.Add(totals)
	}

	p.NominalX(t.Labels()...)
	return p, o.finish(p, created, minPositive(t))
}

// BarStacked stacks the keys of each label into one bar.
func BarStacked(p *plot.Plot, t *Table, o Options) (*plot.Plot, error) {
	keys, legendKeys, err := o.keys(t)
	if err != nil {
		return nil, err
	}
	if err := o.report(t, keys); err != nil {
		return nil, err
	}
	p, created := o.begin(p)

	var below *plotter.BarChart
	for i, k := range keys {
		bars, err := plotter.NewBarChart(column(t, k), vg.Points(groupWidth/2))
		if err != nil {
			return nil, fmt.Errorf("plots: %s: %w", k, err)
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}
		below = bars
		p.Add(bars)
		o.legend(p, legendKeys, k, bars)
	}

	p.NominalX(t.Labels()...)
	return p, o.finish(p, created, minPositive(t))
}

// Line draws one line per key across the labels. Labels that all parse as
// numbers are placed on a numeric x axis, others are spaced evenly. Rows
// missing a key leave a gap in that key's line.
func Line(p *plot.Plot, t *Table, o Options) (*plot.Plot, error) {
	return xy(p, t, o, func(i int, xys plotter.XYs) (plot.Plotter, plot.Thumbnailer, error) {
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, nil, err
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Dashes = plotutil.Dashes(i)
		return l, l, nil
	})
}

// Scatter draws one marker per label and key.
func Scatter(p *plot.Plot, t *Table, o Options) (*plot.Plot, error) {
	return xy(p, t, o, func(i int, xys plotter.XYs) (plot.Plotter, plot.Thumbnailer, error) {
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, nil, err
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		return s, s, nil
	})
}

type xyPlotter func(i int, xys plotter.XYs) (plot.Plotter, plot.Thumbnailer, error)

func xy(p *plot.Plot, t *Table, o Options, mk xyPlotter) (*plot.Plot, error) {
	keys, err := ConsolidateKeys(t.Rows(), o.MissingOK)
	if err != nil {
		return nil, err
	}
	if err := o.report(t, keys); err != nil {
		return nil, err
	}
	p, created := o.begin(p)

	xs, numeric := numericLabels(t.Labels())
	for i, k := range keys {
		var pts plotter.XYs
		for j, r := range t.Rows() {
			if v, ok := r.Get(k); ok {
				pts = append(pts, plotter.XY{X: xs[j], Y: v})
			}
		}
		if len(pts) == 0 {
			continue
		}
		pl, thumb, err := mk(i, pts)
		if err != nil {
			return nil, fmt.Errorf("plots: %s: %w", k, err)
		}
		p.Add(pl)
		o.legend(p, keys, k, thumb)
	}
	if !numeric {
		p.NominalX(t.Labels()...)
	}
	return p, o.finish(p, created, minPositive(t))
}

// numericLabels returns the x position of every label and whether they
// were all numbers. Non-numeric labels are placed at their index.
func numericLabels(labels []string) ([]float64, bool) {
	xs := make([]float64, len(labels))
	for i, l := range labels {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			for j := range xs {
				xs[j] = float64(j)
			}
			return xs, false
		}
		xs[i] = v
	}
	return xs, true
}
