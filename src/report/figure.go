// Package report decides which metric schema a monitor CSV follows and turns
// it into a Figure: a display-agnostic description of the chart panels to draw.
package report

import (
	"time"
)

// Kind names a recognized metric schema.
type Kind string

const (
	KindNone      Kind = ""
	KindCPU       Kind = "cpu"
	KindMemory    Kind = "memory"
	KindIO        Kind = "io"
	KindNamespace Kind = "namespace"
)

// Series is one named line on a panel. Color is a plain color name
// ("red", "orange", ...) or empty for the renderer's default cycle.
type Series struct {
	Name   string
	Values []float64
	Color  string
}

// Bar is one labelled bar.
type Bar struct {
	Label string
	Value float64
}

// Panel is a single chart area. Exactly one of Series, Bars or Text is set.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
	Legend bool
	Bars   []Bar
	Text   []string
}

// IsText reports whether the panel only carries text.
func (p Panel) IsText() bool { return len(p.Text) > 0 }

// IsBar reports whether the panel is a bar chart.
func (p Panel) IsBar() bool { return len(p.Bars) > 0 }

// Figure is everything needed to draw one chart window.
type Figure struct {
	Kind  Kind
	Title string
	// Times holds the x value of every row when the dataset has a timestamp
	// column; otherwise rows are plotted by index.
	Times  []time.Time
	Rows   int
	Grid   bool
	Panels []Panel
}
