// visualize renders the CSV reports written by the resource monitor.
//
// Usage: visualize [flags] <file.csv>
//
// The first rows of the file are always printed. When a display is available
// and the columns match a known report (cpu, memory, io, namespace), the
// matching charts open in a window; otherwise a notice explains why only the
// table was shown.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/viniciuspjr/grupo8-RA3/src/dataset"
	"github.com/viniciuspjr/grupo8-RA3/src/report"
)

const usageLine = "Usage: visualize [flags] <file.csv>"

type config struct {
	path      string
	rows      int
	logLevel  string
	tableOnly bool
	width     int
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("visualize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.rows, "rows", dataset.DefaultPreviewRows, "Number of rows to print in the table preview")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	fs.BoolVar(&cfg.tableOnly, "table-only", false, "Print the table preview only, never open a chart window")
	fs.IntVar(&cfg.width, "width", 1200, "Chart window width in pixels")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.path = fs.Arg(0)
	return cfg, nil
}

func main() {
	backend := func() bool { return backendAvailable(runtime.GOOS, os.Getenv) }
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, backend, nil))
}

// run is the whole program; it returns the process exit status.
// A nil display opens a fyne window.
func run(args []string, stdout, stderr io.Writer, backend func() bool, display report.Display) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stdout, usageLine)
		return 1
	}
	if cfg.path == "" {
		fmt.Fprintln(stdout, usageLine)
		return 1
	}
	report.SetLogLevel(cfg.logLevel)

	haveBackend := !cfg.tableOnly && backend()
	report.Debugf("chart backend available: %v", haveBackend)

	ds, err := dataset.Load(cfg.path)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	report.Infof("loaded %s: %d rows, columns %v", cfg.path, ds.Rows, ds.Names())
	if err := dataset.WritePreview(stdout, ds, cfg.rows); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if display == nil {
		display = windowDisplay{width: cfg.width}
	}
	r := report.Renderer{Out: stdout, Display: display, BackendAvailable: haveBackend}
	if _, err := r.Render(ds); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
