// video.go - an ebiten.Game that decodes the cabinet's 1bpp, 90-degree
// rotated frame buffer out of CPU RAM and polls the keyboard into the
// cabinet's input ports.
//
// Grounded on the teacher's EbitenOutput (video_backend_ebiten.go):
// window sizing, SetWindowTitle/SetVsyncEnabled, and an ebiten.Image
// rebuilt from a raw pixel buffer each Draw, generalized here from an
// RGBA frame buffer copy to a 1bpp-to-RGBA video-RAM decode.

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	videoBase   = 0x0400 // offset within RAM (address 0x2400 behind the 8 KiB ROM), not the full address space
	videoWidth  = 256
	videoHeight = 224
)

type game struct {
	ram []byte // borrowed from cpu8080.CPU.RAM(); read-only from this side
	io  *cabinetIO

	screen  *ebiten.Image
	caption *ebiten.Image
}

func newGame(ram []byte, io *cabinetIO) *game {
	return &game{
		ram:     ram,
		io:      io,
		screen:  ebiten.NewImage(videoHeight, videoWidth),
		caption: renderCaption("go8080"),
	}
}

func (g *game) Update() error {
	g.pollInput()
	return nil
}

func (g *game) pollInput() {
	var in0, in1 uint32
	if ebiten.IsKeyPressed(ebiten.KeyC) {
		in1 |= 1 << 0 // coin
	}
	if ebiten.IsKeyPressed(ebiten.Key1) {
		in1 |= 1 << 2 // 1P start
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		in1 |= 1 << 4 // 1P fire
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in1 |= 1 << 5
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in1 |= 1 << 6
	}
	g.io.in0.Store(0x0E | in0)
	g.io.in1.Store(0x08 | in1)
}

// Draw unpacks the 256x224 1bpp bitmap (columns stored bottom-to-top,
// eight rows per byte) into the 90-degree-rotated orientation a
// cocktail cabinet's CRT actually used.
func (g *game) Draw(screen *ebiten.Image) {
	g.screen.Fill(color.Black)
	for col := 0; col < videoWidth; col++ {
		base := videoBase + col*(videoHeight/8)
		for byteIdx := 0; byteIdx < videoHeight/8; byteIdx++ {
			if base+byteIdx >= len(g.ram) {
				continue
			}
			b := g.ram[base+byteIdx]
			for bit := 0; bit < 8; bit++ {
				if b&(1<<bit) == 0 {
					continue
				}
				row := byteIdx*8 + bit
				g.screen.Set(row, videoWidth-1-col, color.White)
			}
		}
	}
	op := &ebiten.DrawImageOptions{}
	screen.DrawImage(g.screen, op)

	capOp := &ebiten.DrawImageOptions{}
	capOp.GeoM.Translate(2, 2)
	screen.DrawImage(g.caption, capOp)
}

func (g *game) Layout(_, _ int) (int, int) { return videoHeight, videoWidth }
