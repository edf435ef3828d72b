package assets

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process wide audio context, creating it on first
// use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Sound names a synthesized effect.
type Sound int

const (
	SoundToggle Sound = iota
	SoundPickup
	SoundSpecial
	SoundDeath
	SoundNewBest
)

type toneSpec struct {
	from, to float64
	ms       int
	volume   float64
}

var soundSpecs = map[Sound][]toneSpec{
	SoundToggle:  {{from: 440, to: 660, ms: 50, volume: 0.25}},
	SoundPickup:  {{from: 880, to: 1320, ms: 60, volume: 0.3}},
	SoundSpecial: {{from: 330, to: 330, ms: 40, volume: 0.2}, {from: 495, to: 495, ms: 60, volume: 0.2}},
	SoundDeath:   {{from: 220, to: 90, ms: 320, volume: 0.4}},
	SoundNewBest: {{from: 523, to: 523, ms: 90, volume: 0.3}, {from: 659, to: 659, ms: 90, volume: 0.3}, {from: 784, to: 784, ms: 160, volume: 0.3}},
}

// Tone renders a sine sweep from one frequency to another as 16-bit stereo
// little-endian PCM. The ends are faded to avoid clicks.
func Tone(from, to float64, ms int, volume float64) []byte {
	n := SampleRate * ms / 1000
	out := make([]byte, n*4)
	fade := SampleRate / 200
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(max(n-1, 1))
		freq := from + (to-from)*t
		phase += 2 * math.Pi * freq / SampleRate

		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if n-1-i < fade {
			env = float64(n-1-i) / float64(fade)
		}
		v := int16(math.Sin(phase) * env * volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

// Render concatenates the tones of s.
func Render(s Sound) []byte {
	var out []byte
	for _, t := range soundSpecs[s] {
		out = append(out, Tone(t.from, t.to, t.ms, t.volume)...)
	}
	return out
}

// Bank holds one player per effect.
type Bank struct {
	players map[Sound]*audio.Player
	muted   bool
}

func NewBank(muted bool) *Bank {
	b := &Bank{players: make(map[Sound]*audio.Player), muted: muted}
	if muted {
		return b
	}
	ctx := AudioContext()
	for s := range soundSpecs {
		b.players[s] = ctx.NewPlayerFromBytes(Render(s))
	}
	return b
}

func (b *Bank) SetMuted(m bool) {
	if b == nil {
		return
	}
	if !m && len(b.players) == 0 {
		ctx := AudioContext()
		for s := range soundSpecs {
			b.players[s] = ctx.NewPlayerFromBytes(Render(s))
		}
	}
	b.muted = m
}

func (b *Bank) Play(s Sound) {
	if b == nil || b.muted {
		return
	}
	p := b.players[s]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
