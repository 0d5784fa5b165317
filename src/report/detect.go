package report

import (
	"errors"
	"fmt"

	"github.com/viniciuspjr/grupo8-RA3/src/dataset"
)

var (
	// ErrMissingColumn means a schema matched but a column its charts need is absent.
	ErrMissingColumn = errors.New("missing column")
	// ErrNoRows means a schema matched but there is nothing to plot.
	ErrNoRows = errors.New("dataset has no rows to plot")
)

type signature struct {
	kind     Kind
	required []string
	build    func(*dataset.Dataset) (*Figure, error)
}

// signatures is evaluated in order and the first match wins, so a file that
// carries both cpu_percent and rss_bytes is a CPU report.
var signatures = []signature{
	{KindCPU, []string{"cpu_percent"}, buildCPU},
	{KindMemory, []string{"rss_bytes"}, buildMemory},
	{KindIO, []string{"read_bytes"}, buildIO},
	{KindNamespace, []string{"inode", "pid_count"}, buildNamespace},
}

// Detect returns the first schema whose required columns are all present,
// or KindNone.
func Detect(ds *dataset.Dataset) Kind {
	if s := match(ds); s != nil {
		return s.kind
	}
	return KindNone
}

func match(ds *dataset.Dataset) *signature {
	for i := range signatures {
		if ds.Has(signatures[i].required...) {
			return &signatures[i]
		}
	}
	return nil
}

// Build detects the schema and builds its figure. It returns (nil, nil) when
// no schema matches.
func Build(ds *dataset.Dataset) (*Figure, error) {
	s := match(ds)
	if s == nil {
		return nil, nil
	}
	if ds.Rows == 0 {
		return nil, fmt.Errorf("%s report: %w", s.kind, ErrNoRows)
	}
	fig, err := s.build(ds)
	if err != nil {
		return nil, fmt.Errorf("%s report: %w", s.kind, err)
	}
	fig.Kind = s.kind
	fig.Rows = ds.Rows
	return fig, nil
}

// numeric returns the values of a plottable column.
func numeric(ds *dataset.Dataset, name string) ([]float64, error) {
	c := ds.Column(name)
	if c == nil {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}
	if !c.Numeric() {
		return nil, fmt.Errorf("column %q has no numeric data to plot", name)
	}
	return c.Values, nil
}

// scaled returns a new slice with every value divided by div.
func scaled(vs []float64, div float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v / div
	}
	return out
}
