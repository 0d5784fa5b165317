package main

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/viniciuspjr/grupo8-RA3/src/plot"
	"github.com/viniciuspjr/grupo8-RA3/src/report"
)

// windowDisplay shows a figure in a fyne window and blocks until it is closed.
type windowDisplay struct {
	width int
}

func (d windowDisplay) Show(fig *report.Figure) error {
	// render first so a chart error never leaves an empty window behind
	imgs, err := plot.RenderFigure(fig, d.width)
	if err != nil {
		return err
	}
	pw, ph := plot.ComputePanelDimensions(d.width, fig.Grid)

	a := app.NewWithID("io.github.viniciuspjr.visualize")
	w := a.NewWindow(fig.Title)

	objs := make([]fyne.CanvasObject, len(imgs))
	for i, img := range imgs {
		c := canvas.NewImageFromImage(img)
		c.FillMode = canvas.ImageFillContain
		// allow shrinking to half size; contain-fit keeps the aspect ratio
		c.SetMinSize(fyne.NewSize(float32(pw)/2, float32(ph)/2))
		objs[i] = c
	}

	if fig.Grid {
		title := widget.NewLabelWithStyle(fig.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		w.SetContent(container.NewBorder(title, nil, nil, nil, container.NewGridWithColumns(2, objs...)))
		rows := (len(objs) + 1) / 2
		w.Resize(fyne.NewSize(float32(2*pw+24), float32(rows*ph+40)))
	} else {
		w.SetContent(container.NewStack(objs...))
		w.Resize(fyne.NewSize(float32(pw), float32(ph)))
	}
	report.Debugf("showing %q in a %d-panel window", fig.Title, len(objs))
	w.ShowAndRun()
	return nil
}
