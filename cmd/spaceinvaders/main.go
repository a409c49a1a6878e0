// main.go - Space Invaders host: loads a ROM image, wires cabinet I/O
// and an ebiten window to a cpu8080.CPU, and drives the two
// mid-screen/vblank RST interrupts the game expects at 60Hz.
//
// Grounded on the teacher's cobra-free main.go entry point shape for
// flow, and on oisee-z80-optimizer's cmd/z80opt/main.go for the cobra
// command/flag wiring this CLI surface actually uses.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	cpu8080 "github.com/intuitionamiga/go8080"
)

func main() {
	var romPath string
	var ramSize int
	var scale int
	var silent bool

	root := &cobra.Command{
		Use:   "spaceinvaders",
		Short: "Run a Space Invaders ROM on the go8080 emulator core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(romPath, ramSize, scale, silent)
		},
	}
	root.Flags().StringVar(&romPath, "rom", "roms/invaders", "path to the ROM image")
	root.Flags().IntVar(&ramSize, "ram", 0x2000, "RAM size in bytes")
	root.Flags().IntVar(&scale, "scale", 2, "integer window scale factor")
	root.Flags().BoolVar(&silent, "silent", false, "disable the sound-bank beeper")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(romPath string, ramSize, scale int, silent bool) error {
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return &cpu8080.RomError{Op: "read", Err: err}
	}

	var sound *beeper
	if !silent {
		sound, err = newBeeper()
		if err != nil {
			return fmt.Errorf("audio init: %w", err)
		}
		defer sound.Close()
	} else {
		sound = &beeper{}
	}

	io := newCabinetIO(sound)
	cpu := cpu8080.NewCPU(rom, ramSize, io, cpu8080.Config{})

	go driveVBlank(cpu)
	go func() {
		if err := cpu.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "cpu halted: %v\n", err)
			os.Exit(1)
		}
	}()

	g := newGame(cpu.RAM(), io)
	ebiten.SetWindowSize(videoHeight*scale, videoWidth*scale)
	ebiten.SetWindowTitle("Space Invaders (go8080)")
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(g)
}

// driveVBlank sends the two interrupts Space Invaders' ROM expects each
// 60Hz frame: RST 1 at mid-screen, RST 2 at vblank. Both carry
// allow_nested=true so the handler's own EI takes effect immediately,
// matching the original arcade board's interrupt wiring.
func driveVBlank(cpu *cpu8080.CPU) {
	ticker := time.NewTicker(time.Second / 120)
	defer ticker.Stop()
	rst := byte(1)
	for range ticker.C {
		cpu.Send(cpu8080.InterruptMessage(rst, true))
		if rst == 1 {
			rst = 2
		} else {
			rst = 1
		}
	}
}
