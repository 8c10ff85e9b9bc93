package game

import (
	"bytes"
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// beepCue is one synthesized cue: a sine sweep from freq to endFreq.
type beepCue struct {
	freq, endFreq float64
	durSec        float64
}

var castBeeps = [spellKindCount]beepCue{
	SpellLightning: {freq: 1400, endFreq: 900, durSec: 0.09},
	SpellFireball:  {freq: 300, endFreq: 180, durSec: 0.18},
	SpellFreeze:    {freq: 700, endFreq: 1100, durSec: 0.22},
}

var levelUpBeep = beepCue{freq: 520, endFreq: 1040, durSec: 0.25}

// Sounds holds the cue players. A nil *Sounds is valid and silent.
type Sounds struct {
	ctx     *audio.Context
	cast    [spellKindCount]*audio.Player
	levelUp *audio.Player
}

// NewSounds synthesizes every cue on a fresh audio context. Only one audio
// context may exist per process.
func NewSounds() (*Sounds, error) {
	s := &Sounds{ctx: audio.NewContext(sampleRate)}
	for _, k := range AllSpells {
		p, err := newBeep(s.ctx, castBeeps[k])
		if err != nil {
			return nil, fmt.Errorf("%s cue: %w", k, err)
		}
		s.cast[k] = p
	}
	p, err := newBeep(s.ctx, levelUpBeep)
	if err != nil {
		return nil, fmt.Errorf("level-up cue: %w", err)
	}
	s.levelUp = p
	return s, nil
}

// readSeekNopCloser lets an in-memory PCM buffer feed an audio player.
type readSeekNopCloser struct{ *bytes.Reader }

func (r *readSeekNopCloser) Close() error { return nil }

// beepPCM renders cue as 16-bit little-endian stereo PCM.
func beepPCM(cue beepCue) []byte {
	n := int(float64(sampleRate) * cue.durSec)
	pcm := make([]byte, n*4)
	amp := 0.3
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := cue.freq + (cue.endFreq-cue.freq)*t
		phase += 2 * math.Pi * freq / sampleRate
		env := 1.0 - t // linear fade out
		s := int16(math.Sin(phase) * amp * env * 32767)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}

func newBeep(ctx *audio.Context, cue beepCue) (*audio.Player, error) {
	r := &readSeekNopCloser{bytes.NewReader(beepPCM(cue))}
	return audio.NewPlayer(ctx, r)
}

func play(p *audio.Player) {
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("rewind cue: %v", err)
		return
	}
	p.Play()
}

// PlayTick plays the cues for what happened in one tick.
func (s *Sounds) PlayTick(rep TickReport) {
	if s == nil {
		return
	}
	for _, k := range rep.Casts {
		if k >= 0 && k < spellKindCount {
			play(s.cast[k])
		}
	}
	if len(rep.LevelUps) > 0 {
		play(s.levelUp)
	}
}
