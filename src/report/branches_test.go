package report

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildCPU_FourPanels(t *testing.T) {
	fig, err := Build(load(t, cpuCSV))
	require.NoError(t, err)
	require.Equal(t, KindCPU, fig.Kind)
	require.True(t, fig.Grid)
	require.Equal(t, 5, fig.Rows)
	require.Len(t, fig.Panels, 4)

	titles := []string{"CPU Usage (%)", "CPU Time (ticks)", "Context Switches", "Threads"}
	for i, p := range fig.Panels {
		require.Equal(t, titles[i], p.Title)
		require.False(t, p.IsText())
		require.False(t, p.IsBar())
	}
	require.Len(t, fig.Panels[1].Series, 2)
	require.True(t, fig.Panels[1].Legend)
	require.Equal(t, []float64{10.5, 12, 55.25, 80, 20}, fig.Panels[0].Series[0].Values)

	require.Len(t, fig.Times, 5)
	require.Equal(t, time.Unix(1700000000, 0).UTC(), fig.Times[0])
	for i := 1; i < len(fig.Times); i++ {
		require.True(t, fig.Times[i].After(fig.Times[i-1]))
	}
}

func TestBuildMemory_ConversionsAndSummary(t *testing.T) {
	ds := load(t, memoryCSV)
	fig, err := Build(ds)
	require.NoError(t, err)
	require.Equal(t, KindMemory, fig.Kind)
	require.Len(t, fig.Panels, 4)

	usage := fig.Panels[0]
	require.Equal(t, "rss_mb", usage.Series[0].Name)
	rss := ds.Column("rss_bytes").Values
	for i, v := range usage.Series[0].Values {
		require.Equal(t, rss[i]/1_048_576, v)
	}
	require.Equal(t, []float64{4, 4, 6}, usage.Series[1].Values)
	require.Equal(t, []float64{0, 0.5, 1}, fig.Panels[2].Series[0].Values)

	summary := fig.Panels[3]
	require.True(t, summary.IsText())
	require.Equal(t, []string{
		"Mean RSS: 2.00 MB",
		"Mean VSZ: 4.67 MB",
		"Page Faults Total: 27",
		"Max Swap: 1.00 MB",
	}, summary.Text)
}

func TestSummarize_LastPageFaultsNotSum(t *testing.T) {
	ds := load(t, "rss_bytes,vsize_bytes,page_faults,swap_bytes\n1,1,5,1\n1,1,3,1\n")
	fig, err := Build(ds)
	require.NoError(t, err)
	require.Contains(t, fig.Panels[3].Text, "Page Faults Total: 3")
}

func TestSummarize_SkipsNaN(t *testing.T) {
	s := Summarize([]float64{1, math.NaN(), 3}, []float64{math.NaN()}, []float64{0.25, math.NaN(), 2.126}, "9")
	require.Equal(t, 2.0, s.MeanRSSMB)
	require.True(t, math.IsNaN(s.MeanVSZMB))
	require.Equal(t, 2.126, s.MaxSwapMB)
	require.Equal(t, "Max Swap: 2.13 MB", s.Lines()[3])
}

func TestBuildIO_KilobyteRates(t *testing.T) {
	ds := load(t, ioCSV)
	fig, err := Build(ds)
	require.NoError(t, err)
	require.Equal(t, KindIO, fig.Kind)
	require.Len(t, fig.Panels, 4)
	rate := fig.Panels[0]
	require.Equal(t, "KB/s", rate.YLabel)
	require.Equal(t, "read_kb_s", rate.Series[0].Name)
	src := ds.Column("read_rate_bytes_per_sec").Values
	for i, v := range rate.Series[0].Values {
		require.Equal(t, src[i]/1024, v)
	}
	require.Equal(t, []float64{0, 2, 0}, rate.Series[1].Values)
	require.Equal(t, "Network Connections", fig.Panels[3].Title)
}

func TestBuildNamespace_SingleBarPanel(t *testing.T) {
	fig, err := Build(load(t, namespaceCSV))
	require.NoError(t, err)
	require.Equal(t, KindNamespace, fig.Kind)
	require.False(t, fig.Grid)
	require.Len(t, fig.Panels, 1)
	p := fig.Panels[0]
	require.True(t, p.IsBar())
	require.Equal(t, "inode", p.XLabel)
	require.Equal(t, "pid_count", p.YLabel)
	require.Equal(t, []Bar{
		{Label: "4026531840", Value: 12},
		{Label: "4026531841", Value: 3},
		{Label: "4026532200", Value: 1},
	}, p.Bars)
}

func TestBuild_NoTimestampPlotsByIndex(t *testing.T) {
	fig, err := Build(load(t, "cpu_percent,user_time_ticks,system_time_ticks,context_switches,threads\n1,2,3,4,5\n"))
	require.NoError(t, err)
	require.Nil(t, fig.Times)
	require.Equal(t, 1, fig.Rows)
}
