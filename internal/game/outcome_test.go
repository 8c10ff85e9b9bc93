package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineSessionOutcome(t *testing.T) {
	ts := NewTestSim()
	ts.RunTicks(10)

	out := DetermineSessionOutcome(ts.World, 100)
	assert.Equal(t, OutcomeInProgress, out.Outcome)
	assert.Equal(t, "in_progress", out.Outcome.String())

	out = DetermineSessionOutcome(ts.World, 10)
	assert.Equal(t, OutcomeSurvived, out.Outcome)
	assert.Equal(t, "survived_comfortably", out.Description)

	ts.World.State.PlayerHealth = 10
	out = DetermineSessionOutcome(ts.World, 10)
	assert.Equal(t, "survived_barely", out.Description)

	out = DetermineSessionOutcome(ts.World, 0)
	assert.Equal(t, OutcomeInProgress, out.Outcome, "no target means still running")

	ts.World.State.Hurt(100)
	out = DetermineSessionOutcome(ts.World, 10)
	assert.Equal(t, OutcomeDied, out.Outcome)
	assert.Equal(t, "overrun_at_level_1", out.Description)
}
