package plot

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textScale enlarges the 7x13 bitmap font so summary text reads at panel size.
const textScale = 2

// textPanel draws lines of text on a white w×h canvas, left-aligned at 10%
// of the width and vertically centered.
func textPanel(lines []string, w, h int) image.Image {
	sw, sh := w/textScale, h/textScale
	small := image.NewRGBA(image.Rect(0, 0, sw, sh))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil() + 4
	ascent := face.Metrics().Ascent.Ceil()
	x := sw / 10
	y := sh/2 - len(lines)*lineH/2 + ascent
	dr := &font.Drawer{Dst: small, Src: image.NewUniform(color.Black), Face: face}
	for i, l := range lines {
		dr.Dot = fixed.P(x, y+i*lineH)
		dr.DrawString(l)
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), draw.Src, nil)
	return out
}

// drawCaption writes text centered near the bottom edge of img.
func drawCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.Black), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + (b.Dx()-tw)/2
	y := b.Max.Y - 6
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
