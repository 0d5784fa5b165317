package report

import (
	"fmt"
	"io"

	"github.com/viniciuspjr/grupo8-RA3/src/dataset"
)

// Notices printed instead of a chart.
const (
	NoBackendNotice    = "Chart backend not found, showing table only."
	UnrecognizedNotice = "No recognized chart format for this CSV."
)

// Display shows a figure and blocks until the viewer is closed.
type Display interface {
	Show(fig *Figure) error
}

// Renderer dispatches a loaded dataset to the matching chart. BackendAvailable
// is decided once by the caller; when false no detection or drawing happens.
type Renderer struct {
	Out              io.Writer
	Display          Display
	BackendAvailable bool
}

// Render returns the kind that was shown, or KindNone when only a notice was
// printed. Errors from building or showing the figure are returned as-is.
func (r Renderer) Render(ds *dataset.Dataset) (Kind, error) {
	if !r.BackendAvailable || r.Display == nil {
		fmt.Fprintf(r.Out, "\n%s\n", NoBackendNotice)
		return KindNone, nil
	}
	fig, err := Build(ds)
	if err != nil {
		return KindNone, err
	}
	if fig == nil {
		Debugf("no signature matched columns %v", ds.Names())
		fmt.Fprintf(r.Out, "\n%s\n", UnrecognizedNotice)
		return KindNone, nil
	}
	Infof("rendering %s figure: %d panels, %d rows", fig.Kind, len(fig.Panels), fig.Rows)
	if err := r.Display.Show(fig); err != nil {
		return fig.Kind, fmt.Errorf("show %s figure: %w", fig.Kind, err)
	}
	return fig.Kind, nil
}
