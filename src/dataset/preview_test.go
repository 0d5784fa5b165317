package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePreview_FirstRowsOnly(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("timestamp,cpu_percent,threads\n")
	for i := 0; i < 8; i++ {
		sb.WriteString("170000000")
		sb.WriteByte(byte('0' + i))
		sb.WriteString(",12.5,4\n")
	}
	ds := mustRead(t, sb.String())

	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, ds, 0))
	out := buf.String()
	require.Contains(t, out, "First rows of the CSV:")
	require.Contains(t, out, "2023-11-14 22:13:20")
	require.Contains(t, out, "2023-11-14 22:13:24")
	require.NotContains(t, out, "2023-11-14 22:13:25")
	require.Contains(t, out, "12.5")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// heading, blank, header row, 5 rows
	require.Len(t, lines, 1+1+1+DefaultPreviewRows)
	require.True(t, strings.HasPrefix(strings.TrimSpace(lines[3]), "0"))
}

func TestWritePreview_RowCountCappedByDataset(t *testing.T) {
	ds := mustRead(t, "foo,bar\n1,a\n2,b\n")
	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, ds, 10))
	out := buf.String()
	require.Contains(t, out, "foo")
	require.Contains(t, out, "bar")
	require.Contains(t, out, "b")
	require.Equal(t, 2+1+2, strings.Count(strings.TrimLeft(out, "\n"), "\n"))
}

func TestWritePreview_Empty(t *testing.T) {
	ds := mustRead(t, "inode,pid_count\n")
	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, ds, 5))
	require.Contains(t, buf.String(), "Empty dataset\nColumns: [inode, pid_count]")
}

func TestFormatCell(t *testing.T) {
	ds := mustRead(t, "timestamp,f,i,s\n1700000000.5,2,007,\n,2.25,8,x\n")
	require.Equal(t, "2023-11-14 22:13:20.500000", FormatCell(ds.Column("timestamp"), 0))
	require.Equal(t, "NaT", FormatCell(ds.Column("timestamp"), 1))
	require.Equal(t, "2.0", FormatCell(ds.Column("f"), 0))
	require.Equal(t, "2.25", FormatCell(ds.Column("f"), 1))
	require.Equal(t, "7", FormatCell(ds.Column("i"), 0))
	require.Equal(t, "NaN", FormatCell(ds.Column("s"), 0))
	require.Equal(t, "x", FormatCell(ds.Column("s"), 1))
}
