package dataset

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

// DefaultPreviewRows is how many rows WritePreview shows when asked for n <= 0.
const DefaultPreviewRows = 5

const (
	timeLayout      = "2006-01-02 15:04:05"
	timeLayoutMicro = "2006-01-02 15:04:05.000000"
)

// WritePreview prints the first n rows as a right-aligned table with a
// leading row index, the way the console fallback shows a CSV.
func WritePreview(w io.Writer, d *Dataset, n int) error {
	if n <= 0 {
		n = DefaultPreviewRows
	}
	if _, err := fmt.Fprint(w, "\nFirst rows of the CSV:\n\n"); err != nil {
		return err
	}
	if d.Rows == 0 {
		_, err := fmt.Fprintf(w, "Empty dataset\nColumns: [%s]\nIndex: []\n", strings.Join(d.Names(), ", "))
		return err
	}
	if n > d.Rows {
		n = d.Rows
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	var b strings.Builder
	b.WriteString("\t")
	for _, c := range d.Columns {
		b.WriteString(c.Name)
		b.WriteString("\t")
	}
	b.WriteString("\n")
	formatters := make([]func(int) string, len(d.Columns))
	for i, c := range d.Columns {
		formatters[i] = cellFormatter(c)
	}
	for r := 0; r < n; r++ {
		b.WriteString(strconv.Itoa(r))
		b.WriteString("\t")
		for _, f := range formatters {
			b.WriteString(f(r))
			b.WriteString("\t")
		}
		b.WriteString("\n")
	}
	if _, err := io.WriteString(tw, b.String()); err != nil {
		return err
	}
	return tw.Flush()
}

// FormatCell renders row r of c the same way the preview does.
func FormatCell(c *Column, r int) string { return cellFormatter(c)(r) }

func cellFormatter(c *Column) func(int) string {
	switch c.Kind {
	case Time:
		layout := timeLayout
		for _, t := range c.Times {
			if t.Nanosecond() != 0 {
				layout = timeLayoutMicro
				break
			}
		}
		return func(r int) string {
			t := c.Times[r]
			if t.IsZero() {
				return "NaT"
			}
			return t.Format(layout)
		}
	case Int:
		return func(r int) string {
			n, err := strconv.ParseInt(strings.TrimSpace(c.Raw[r]), 10, 64)
			if err != nil {
				return c.Raw[r]
			}
			return strconv.FormatInt(n, 10)
		}
	case Float:
		return func(r int) string { return formatFloat(c.Values[r]) }
	default:
		return func(r int) string {
			if strings.TrimSpace(c.Raw[r]) == "" {
				return "NaN"
			}
			return c.Raw[r]
		}
	}
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 0) || math.Abs(v) >= 1e15 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
