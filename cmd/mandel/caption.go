package main

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/message"

	"github.com/gogpu/mandel"
)

const captionPadding = 4

// captionText summarizes a frame on one line.
func captionText(p *message.Printer, f *mandel.Frame, elapsed time.Duration) string {
	c := f.Viewport.Center()
	return p.Sprintf("center %.6g%+.6gi  width %.3g  %d iterations  %v",
		c.Real, c.Imag, f.Viewport.RealRange(), f.MaxIterations, elapsed.Round(time.Millisecond))
}

// drawCaption writes text in the bottom-left corner on a translucent band.
func drawCaption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	b := img.Bounds()
	band := image.Rect(b.Min.X, b.Max.Y-lineHeight-2*captionPadding, b.Max.X, b.Max.Y)
	draw.Draw(img, band, image.NewUniform(color.RGBA{A: 160}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 230, G: 230, B: 230, A: 255}),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Min.X + captionPadding),
			Y: fixed.I(b.Max.Y-captionPadding) - metrics.Descent,
		},
	}
	d.DrawString(text)
}
