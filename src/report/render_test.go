package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingDisplay struct {
	shown []*Figure
	err   error
}

func (d *recordingDisplay) Show(fig *Figure) error {
	d.shown = append(d.shown, fig)
	return d.err
}

func TestRender_NoBackendSkipsDetection(t *testing.T) {
	var out bytes.Buffer
	disp := &recordingDisplay{}
	r := Renderer{Out: &out, Display: disp, BackendAvailable: false}
	kind, err := r.Render(load(t, memoryCSV))
	require.NoError(t, err)
	require.Equal(t, KindNone, kind)
	require.Empty(t, disp.shown)
	require.Contains(t, out.String(), NoBackendNotice)
	require.NotContains(t, out.String(), UnrecognizedNotice)
}

func TestRender_NoBackendIgnoresBrokenSchema(t *testing.T) {
	// a matching but unplottable file is never inspected without a backend
	var out bytes.Buffer
	r := Renderer{Out: &out, Display: &recordingDisplay{}}
	_, err := r.Render(load(t, "cpu_percent\n"))
	require.NoError(t, err)
}

func TestRender_Unrecognized(t *testing.T) {
	var out bytes.Buffer
	disp := &recordingDisplay{}
	r := Renderer{Out: &out, Display: disp, BackendAvailable: true}
	kind, err := r.Render(load(t, "foo,bar\n1,x\n"))
	require.NoError(t, err)
	require.Equal(t, KindNone, kind)
	require.Empty(t, disp.shown)
	require.Contains(t, out.String(), "No recognized chart format for this CSV")
}

func TestRender_ShowsMatchedFigure(t *testing.T) {
	var out bytes.Buffer
	disp := &recordingDisplay{}
	r := Renderer{Out: &out, Display: disp, BackendAvailable: true}
	kind, err := r.Render(load(t, namespaceCSV))
	require.NoError(t, err)
	require.Equal(t, KindNamespace, kind)
	require.Len(t, disp.shown, 1)
	require.Equal(t, KindNamespace, disp.shown[0].Kind)
	require.Empty(t, out.String())
}

func TestRender_DisplayErrorPropagates(t *testing.T) {
	boom := errors.New("window failed")
	r := Renderer{Out: &bytes.Buffer{}, Display: &recordingDisplay{err: boom}, BackendAvailable: true}
	_, err := r.Render(load(t, cpuCSV))
	require.ErrorIs(t, err, boom)
}
