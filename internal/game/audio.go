package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

type soundID int

const (
	soundEat soundID = iota
	soundGameOver
	soundCount
)

// soundBank holds pre-rendered tones. A nil or muted bank is silent.
type soundBank struct {
	ctx     *audio.Context
	players [soundCount]*audio.Player
	mute    bool
}

func newSoundBank(enabled bool) *soundBank {
	sb := &soundBank{mute: !enabled}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	sb.ctx = ctx
	sb.players[soundEat] = newBeepPlayer(ctx, 880, 0.08)
	sb.players[soundGameOver] = newBeepPlayer(ctx, 220, 0.45)
	return sb
}

// newBeepPlayer renders a decaying sine tone as 16-bit stereo PCM.
func newBeepPlayer(ctx *audio.Context, freq float64, durSec float64) *audio.Player {
	n := int(float64(sampleRate) * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-4 * t / durSec)
		v := int16(math.Sin(2*math.Pi*freq*t) * 5000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return ctx.NewPlayerFromBytes(buf)
}

func (sb *soundBank) play(id soundID) {
	if sb == nil || sb.mute || sb.ctx == nil {
		return
	}
	p := sb.players[id]
	if p == nil {
		return
	}
	if err := p.SetPosition(0); err != nil {
		log.Printf("audio: %v", err)
		return
	}
	p.Play()
}

func (sb *soundBank) toggle() {
	if sb != nil {
		sb.mute = !sb.mute
	}
}

func (sb *soundBank) muted() bool {
	return sb == nil || sb.mute
}
