// Package dataset loads the CSV files written by the resource monitor into an
// in-memory, column-oriented table.
//
// Columns are not declared up front. Every column gets a kind inferred from
// the shape of its values, and a column named "timestamp" is decoded from Unix
// epoch seconds into UTC instants. Row order is exactly the file order.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// TimestampColumn is decoded from epoch seconds when present.
const TimestampColumn = "timestamp"

// ErrEmpty is returned when the input has no header row.
var ErrEmpty = errors.New("no columns to parse from file")

// Kind is the inferred value type of a column.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Time
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Time:
		return "time"
	}
	return "unknown"
}

// Column holds one named column. Raw always carries the cell text as read;
// Values is populated for Int, Float and Time (epoch seconds) columns, with NaN
// for empty cells; Times is populated only for Time columns.
type Column struct {
	Name   string
	Kind   Kind
	Raw    []string
	Values []float64
	Times  []time.Time
}

// Numeric reports whether the column can be plotted as numbers.
func (c *Column) Numeric() bool { return c.Kind == Int || c.Kind == Float }

// Dataset is an ordered set of uniquely named columns of equal length.
type Dataset struct {
	Columns []*Column
	Rows    int
	index   map[string]int
}

// Names returns column names in file order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = c.Name
	}
	return out
}

// Has reports whether every named column is present.
func (d *Dataset) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := d.index[n]; !ok {
			return false
		}
	}
	return true
}

// Column returns the named column or nil.
func (d *Dataset) Column(name string) *Column {
	i, ok := d.index[name]
	if !ok {
		return nil
	}
	return d.Columns[i]
}

// Timestamps returns the decoded timestamp column, or nil when the dataset has none.
func (d *Dataset) Timestamps() []time.Time {
	c := d.Column(TimestampColumn)
	if c == nil || c.Kind != Time {
		return nil
	}
	return c.Times
}

// Load opens path and parses it as CSV.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV with a header row from r.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}
	names := uniqueNames(header)
	raw := make([][]string, len(names))
	rows := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(names) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", len(names), line, len(rec))
		}
		for i := range names {
			cell := ""
			if i < len(rec) {
				cell = rec[i]
			}
			raw[i] = append(raw[i], cell)
		}
		rows++
	}
	ds := &Dataset{Rows: rows, index: make(map[string]int, len(names))}
	for i, name := range names {
		col := inferColumn(name, raw[i], rows)
		if name == TimestampColumn {
			if err := decodeTimestamps(col); err != nil {
				return nil, err
			}
		}
		ds.index[name] = len(ds.Columns)
		ds.Columns = append(ds.Columns, col)
	}
	return ds, nil
}

// uniqueNames trims header cells and renames repeats to name.1, name.2, ...
func uniqueNames(header []string) []string {
	out := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		name := h
		for taken[name] {
			counts[h]++
			name = h + "." + strconv.Itoa(counts[h])
		}
		taken[name] = true
		out[i] = name
	}
	return out
}

func inferColumn(name string, raw []string, rows int) *Column {
	if raw == nil {
		raw = make([]string, 0)
	}
	col := &Column{Name: name, Kind: Int, Raw: raw}
	hasEmpty := false
	nonEmpty := 0
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			hasEmpty = true
			continue
		}
		nonEmpty++
		if col.Kind == Int {
			if _, err := strconv.ParseInt(s, 10, 64); err == nil {
				continue
			}
			col.Kind = Float
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			col.Kind = String
			break
		}
	}
	if col.Kind == String {
		return col
	}
	if col.Kind == Int && (hasEmpty || nonEmpty == 0) {
		col.Kind = Float
	}
	col.Values = make([]float64, rows)
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			col.Values[i] = math.NaN()
			continue
		}
		v, _ := strconv.ParseFloat(s, 64)
		col.Values[i] = v
	}
	return col
}

// decodeTimestamps reinterprets numeric epoch seconds as UTC instants.
func decodeTimestamps(col *Column) error {
	if !col.Numeric() {
		return fmt.Errorf("column %q: values are not epoch seconds", col.Name)
	}
	col.Times = make([]time.Time, len(col.Values))
	for i, v := range col.Values {
		col.Times[i] = EpochToTime(v)
	}
	col.Kind = Time
	return nil
}

// EpochToTime converts fractional Unix seconds to a UTC time. NaN maps to the zero time.
func EpochToTime(sec float64) time.Time {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return time.Time{}
	}
	whole, frac := math.Modf(sec)
	nsec := int64(math.Round(frac * 1e9))
	return time.Unix(int64(whole), nsec).UTC()
}
