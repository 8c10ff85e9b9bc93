package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeepPCM_StereoFrames(t *testing.T) {
	cue := castBeeps[SpellFireball]
	pcm := beepPCM(cue)
	frames := int(float64(sampleRate) * cue.durSec)
	assert.Len(t, pcm, frames*4)

	// Both channels carry the same sample.
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channel mismatch at frame %d", i/4)
		}
	}
}

func TestSounds_NilIsSilent(t *testing.T) {
	var s *Sounds
	assert.NotPanics(t, func() {
		s.PlayTick(TickReport{Casts: []SpellKind{SpellLightning}, LevelUps: []LevelUp{{NewLevel: 2}}})
	})
}

func TestPlay_NilPlayerIsSkipped(t *testing.T) {
	assert.NotPanics(t, func() { play(nil) })
}
