// hud.go - a one-line caption rendered with golang.org/x/image's basic
// bitmap font, composited over the cabinet's own video output.
//
// Grounded on the domain-stack entry for golang.org/x/image in
// SPEC_FULL.md: the teacher's go.mod carries it for font/image
// decoding support; this host exercises it for the one text overlay
// the cabinet's own ROM can't draw itself.

package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// renderCaption rasterizes text onto a transparent RGBA image sized to
// fit, using the stock 7x13 bitmap face so the host needs no font file.
func renderCaption(text string) *ebiten.Image {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil() + 4
	height := face.Height + 4

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{G: 255, A: 255}),
		Face: face,
		Dot:  fixed.P(2, face.Ascent+2),
	}
	d.DrawString(text)

	return ebiten.NewImageFromImage(img)
}
