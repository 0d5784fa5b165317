// Package plot draws report figures into images with go-chart. It needs no
// display, so every panel can be rendered and inspected headlessly.
package plot

import (
	"bytes"
	"fmt"
	"image"
	png "image/png"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/viniciuspjr/grupo8-RA3/src/report"
)

// palette maps the color names used by report panels.
var palette = map[string]drawing.Color{
	"blue":   {R: 31, G: 119, B: 180, A: 255},
	"orange": {R: 255, G: 127, B: 14, A: 255},
	"green":  {R: 44, G: 160, B: 44, A: 255},
	"red":    {R: 214, G: 39, B: 40, A: 255},
	"purple": {R: 148, G: 103, B: 189, A: 255},
}

// cycle is used for series without an explicit color.
var cycle = []string{"blue", "orange", "green", "red", "purple"}

var gridStyle = chart.Style{
	StrokeColor: drawing.Color{R: 220, G: 220, B: 220, A: 255},
	StrokeWidth: 1,
}

func seriesColor(name string, i int) drawing.Color {
	if c, ok := palette[name]; ok {
		return c
	}
	return palette[cycle[i%len(cycle)]]
}

// lineStyle returns a solid line style.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
}

// RenderFigure renders every panel of fig at the size derived from windowW.
func RenderFigure(fig *report.Figure, windowW int) ([]image.Image, error) {
	w, h := ComputePanelDimensions(windowW, fig.Grid)
	out := make([]image.Image, 0, len(fig.Panels))
	for i, p := range fig.Panels {
		img, err := RenderPanel(fig, p, w, h)
		if err != nil {
			return nil, fmt.Errorf("panel %d %q: %w", i, p.Title, err)
		}
		out = append(out, img)
	}
	report.Debugf("rendered %d panels at %dx%d", len(out), w, h)
	return out, nil
}

// RenderPanel renders one panel of fig to a w×h image.
func RenderPanel(fig *report.Figure, p report.Panel, w, h int) (image.Image, error) {
	switch {
	case p.IsText():
		return textPanel(p.Text, w, h), nil
	case p.IsBar():
		return barPanel(p, w, h)
	default:
		return linePanel(fig, p, w, h)
	}
}

func linePanel(fig *report.Figure, p report.Panel, w, h int) (image.Image, error) {
	timeMode := fig.Times != nil && len(fig.Times) == fig.Rows
	series := []chart.Series{}
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	for i, s := range p.Series {
		st := lineStyle(seriesColor(s.Color, i))
		var xs []float64
		var ts []time.Time
		var ys []float64
		for r, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if timeMode {
				if fig.Times[r].IsZero() {
					continue
				}
				ts = append(ts, fig.Times[r])
			} else {
				xs = append(xs, float64(r))
			}
			ys = append(ys, v)
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
		if len(ys) == 0 {
			continue
		}
		if len(ys) == 1 {
			// go-chart needs two points per series; repeat the only one and mark it
			st.DotWidth = 4
			st.DotColor = st.StrokeColor
			ys = append(ys, ys[0])
			ts = append(ts, ts...)
			xs = append(xs, xs...)
		}
		if timeMode {
			series = append(series, chart.TimeSeries{Name: s.Name, XValues: ts, YValues: ys, Style: st})
		} else {
			series = append(series, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
		}
	}
	if len(series) == 0 {
		return textPanel([]string{p.Title, "", "no numeric values to plot"}, w, h), nil
	}

	var xAxis chart.XAxis
	if timeMode {
		xAxis = timeAxis(p.XLabel, fig.Times)
	} else {
		xAxis = indexAxis(fig.Rows)
	}
	xAxis.GridMajorStyle = gridStyle
	yRange, yTicks := valueAxis(minY, maxY, 6)

	ch := chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontSize: 12},
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 36, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      xAxis,
		YAxis:      chart.YAxis{Name: p.YLabel, Range: yRange, Ticks: yTicks, GridMajorStyle: gridStyle},
		Series:     series,
	}
	if p.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func barPanel(p report.Panel, w, h int) (image.Image, error) {
	col := palette["blue"]
	bars := make([]chart.Value, len(p.Bars))
	minY, maxY := 0.0, 0.0
	for i, b := range p.Bars {
		v := b.Value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
		bars[i] = chart.Value{Label: b.Label, Value: v, Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1}}
	}
	yRange, yTicks := valueAxis(minY, maxY, 6)
	barW, spacing := barLayout(len(bars), w)
	bc := chart.BarChart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontSize: 12},
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 36, Left: 16, Right: 16, Bottom: 30}},
		BarWidth:   barW,
		BarSpacing: spacing,
		YAxis:      chart.YAxis{Name: p.YLabel, Range: yRange, Ticks: yTicks, GridMajorStyle: gridStyle},
		Bars:       bars,
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, err
	}
	return drawCaption(img, p.XLabel), nil
}

// barLayout spreads n bars over the plot width, keeping gaps at ~40% of a slot.
func barLayout(n, w int) (int, int) {
	const yAxisSpace = 80
	if n < 1 {
		n = 1
	}
	slot := (w - yAxisSpace) / n
	barW := slot * 6 / 10
	if barW < 1 {
		barW = 1
	}
	spacing := slot - barW
	if spacing < 1 {
		spacing = 1
	}
	return barW, spacing
}
