// beeper.go - a sine-tone beeper for the cabinet's two sound banks.
//
// The real board plays sampled effects off discrete sound boards; this
// demo host only needs something audible per bit transition, so each
// newly-set bit queues a short tone at a bank-specific pitch instead of
// decoding the original ROM's sample set. Grounded on the teacher's
// OtoPlayer (audio_backend_oto.go): an oto.Context feeding an
// io.Reader that synthesizes samples on the fly, generalized here from
// chip-register playback to tone synthesis.

package main

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const sampleRate = 44100

type beeper struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	phase   float64
	freq    atomic.Uint64 // math.Float64bits, 0 = silent
	samples int           // remaining samples of the current tone
}

func newBeeper() (*beeper, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	b := &beeper{ctx: ctx}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// Read synthesizes a plain sine tone until the current tone's sample
// count runs out, and silence after that, satisfying io.Reader for
// oto's pull-based player.
func (b *beeper) Read(p []byte) (int, error) {
	n := len(p) / 4
	b.mu.Lock()
	freq := math.Float64frombits(b.freq.Load())
	for i := 0; i < n; i++ {
		var sample float32
		if freq > 0 && b.samples > 0 {
			sample = float32(0.2 * math.Sin(b.phase))
			b.phase += 2 * math.Pi * freq / sampleRate
			b.samples--
		}
		putFloat32LE(p[i*4:], sample)
	}
	b.mu.Unlock()
	return len(p), nil
}

func (b *beeper) tone(freq float64, durationSamples int) {
	b.mu.Lock()
	b.freq.Store(math.Float64bits(freq))
	b.samples = durationSamples
	b.mu.Unlock()
}

// playBank3 and playBank5 fire one short tone for the lowest bit that
// transitions 0->1 in the given port-3/port-5 sound write (other bits
// rising in the same write get no tone of their own), at a pitch that
// climbs with the bit index so different effects are at least
// distinguishable.
func (b *beeper) playBank3(value, prev byte) { b.playBank(value, prev, 220) }
func (b *beeper) playBank5(value, prev byte) { b.playBank(value, prev, 440) }

func (b *beeper) playBank(value, prev byte, base float64) {
	rising := value &^ prev
	if rising == 0 {
		return
	}
	for bit := 0; bit < 8; bit++ {
		if rising&(1<<bit) != 0 {
			b.tone(base*math.Pow(1.25, float64(bit)), sampleRate/10)
			return
		}
	}
}

func (b *beeper) Close() error {
	return b.player.Close()
}

func putFloat32LE(p []byte, f float32) {
	bits := math.Float32bits(f)
	p[0] = byte(bits)
	p[1] = byte(bits >> 8)
	p[2] = byte(bits >> 16)
	p[3] = byte(bits >> 24)
}
