package report

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/viniciuspjr/grupo8-RA3/src/dataset"
)

const (
	bytesPerMB = 1024 * 1024
	bytesPerKB = 1024
)

// line is a one-series panel.
func line(ds *dataset.Dataset, col, title, ylabel, color string) (Panel, error) {
	vs, err := numeric(ds, col)
	if err != nil {
		return Panel{}, err
	}
	return Panel{
		Title:  title,
		XLabel: dataset.TimestampColumn,
		YLabel: ylabel,
		Series: []Series{{Name: col, Values: vs, Color: color}},
	}, nil
}

func gridFigure(ds *dataset.Dataset, title string, panels ...Panel) *Figure {
	return &Figure{Title: title, Times: ds.Timestamps(), Grid: true, Panels: panels}
}

func buildCPU(ds *dataset.Dataset) (*Figure, error) {
	usage, err := line(ds, "cpu_percent", "CPU Usage (%)", "CPU %", "red")
	if err != nil {
		return nil, err
	}
	user, err := numeric(ds, "user_time_ticks")
	if err != nil {
		return nil, err
	}
	sys, err := numeric(ds, "system_time_ticks")
	if err != nil {
		return nil, err
	}
	ticks := Panel{
		Title:  "CPU Time (ticks)",
		XLabel: dataset.TimestampColumn,
		YLabel: "Ticks",
		Series: []Series{
			{Name: "user_time_ticks", Values: user},
			{Name: "system_time_ticks", Values: sys},
		},
		Legend: true,
	}
	ctx, err := line(ds, "context_switches", "Context Switches", "Count", "orange")
	if err != nil {
		return nil, err
	}
	threads, err := line(ds, "threads", "Threads", "Count", "green")
	if err != nil {
		return nil, err
	}
	return gridFigure(ds, "CPU Monitor - Metrics", usage, ticks, ctx, threads), nil
}

func buildMemory(ds *dataset.Dataset) (*Figure, error) {
	rss, err := numeric(ds, "rss_bytes")
	if err != nil {
		return nil, err
	}
	vsize, err := numeric(ds, "vsize_bytes")
	if err != nil {
		return nil, err
	}
	swap, err := numeric(ds, "swap_bytes")
	if err != nil {
		return nil, err
	}
	faults, err := line(ds, "page_faults", "Page Faults", "Count", "red")
	if err != nil {
		return nil, err
	}
	rssMB := scaled(rss, bytesPerMB)
	vsizeMB := scaled(vsize, bytesPerMB)
	swapMB := scaled(swap, bytesPerMB)

	usage := Panel{
		Title:  "Memory Usage",
		XLabel: dataset.TimestampColumn,
		YLabel: "MB",
		Series: []Series{
			{Name: "rss_mb", Values: rssMB},
			{Name: "vsize_mb", Values: vsizeMB},
		},
		Legend: true,
	}
	swapPanel := Panel{
		Title:  "Swap Usage",
		XLabel: dataset.TimestampColumn,
		YLabel: "MB",
		Series: []Series{{Name: "swap_mb", Values: swapMB, Color: "purple"}},
	}
	sum := Summarize(rssMB, vsizeMB, swapMB, dataset.FormatCell(ds.Column("page_faults"), ds.Rows-1))
	return gridFigure(ds, "Memory Monitor - Metrics", usage, faults, swapPanel, Panel{Text: sum.Lines()}), nil
}

func buildIO(ds *dataset.Dataset) (*Figure, error) {
	read, err := numeric(ds, "read_rate_bytes_per_sec")
	if err != nil {
		return nil, err
	}
	write, err := numeric(ds, "write_rate_bytes_per_sec")
	if err != nil {
		return nil, err
	}
	rate := Panel{
		Title:  "Disk I/O Rate",
		XLabel: dataset.TimestampColumn,
		YLabel: "KB/s",
		Series: []Series{
			{Name: "read_kb_s", Values: scaled(read, bytesPerKB)},
			{Name: "write_kb_s", Values: scaled(write, bytesPerKB)},
		},
		Legend: true,
	}
	ops, err := line(ds, "disk_ops_per_sec", "Disk Operations per Second", "Ops/s", "orange")
	if err != nil {
		return nil, err
	}
	sc, err := line(ds, "io_syscalls", "I/O System Calls", "Count", "green")
	if err != nil {
		return nil, err
	}
	conns, err := line(ds, "connections", "Network Connections", "Count", "blue")
	if err != nil {
		return nil, err
	}
	return gridFigure(ds, "I/O Monitor - Metrics", rate, ops, sc, conns), nil
}

func buildNamespace(ds *dataset.Dataset) (*Figure, error) {
	counts, err := numeric(ds, "pid_count")
	if err != nil {
		return nil, err
	}
	inode := ds.Column("inode")
	bars := make([]Bar, ds.Rows)
	for i := range bars {
		bars[i] = Bar{Label: dataset.FormatCell(inode, i), Value: counts[i]}
	}
	return &Figure{
		Title: "Processes per namespace (inode)",
		Panels: []Panel{{
			Title:  "Processes per namespace (inode)",
			XLabel: "inode",
			YLabel: "pid_count",
			Bars:   bars,
		}},
	}, nil
}

// MemorySummary is the text shown next to the memory charts.
type MemorySummary struct {
	MeanRSSMB       float64
	MeanVSZMB       float64
	PageFaultsTotal string
	MaxSwapMB       float64
}

// Summarize computes the memory summary from MB-converted columns. NaN cells
// are skipped; a column with no finite values yields NaN. pageFaults is the
// last row's page_faults cell, shown as-is.
func Summarize(rssMB, vsizeMB, swapMB []float64, pageFaults string) MemorySummary {
	return MemorySummary{
		MeanRSSMB:       mean(rssMB),
		MeanVSZMB:       mean(vsizeMB),
		PageFaultsTotal: pageFaults,
		MaxSwapMB:       maxOf(swapMB),
	}
}

// Lines renders the summary, two decimals per value.
func (s MemorySummary) Lines() []string {
	return []string{
		fmt.Sprintf("Mean RSS: %.2f MB", s.MeanRSSMB),
		fmt.Sprintf("Mean VSZ: %.2f MB", s.MeanVSZMB),
		fmt.Sprintf("Page Faults Total: %s", s.PageFaultsTotal),
		fmt.Sprintf("Max Swap: %.2f MB", s.MaxSwapMB),
	}
}

func finite(vs []float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func mean(vs []float64) float64 {
	f := finite(vs)
	if len(f) == 0 {
		return math.NaN()
	}
	return stat.Mean(f, nil)
}

func maxOf(vs []float64) float64 {
	f := finite(vs)
	if len(f) == 0 {
		return math.NaN()
	}
	return floats.Max(f)
}
