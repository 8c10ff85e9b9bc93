package game

import "fmt"

type SessionOutcome int

const (
	OutcomeInProgress SessionOutcome = iota
	OutcomeSurvived
	OutcomeDied
)

func (o SessionOutcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeSurvived:
		return "survived"
	case OutcomeDied:
		return "died"
	default:
		return "unknown"
	}
}

type SessionOutcomeReason struct {
	Outcome     SessionOutcome
	Ticks       int
	Level       int
	Kills       int
	Casts       int
	Health      float64
	Description string
}

// DetermineSessionOutcome classifies a session. A run that reached
// targetTicks with the player alive survived; a dead player died; anything
// else is still in progress. targetTicks <= 0 means there is no target.
func DetermineSessionOutcome(w *World, targetTicks int) SessionOutcomeReason {
	gs := w.State
	casts := 0
	for _, n := range gs.Casts {
		casts += n
	}
	r := SessionOutcomeReason{
		Ticks:  w.Ticks(),
		Level:  gs.Level,
		Kills:  gs.TotalKills(),
		Casts:  casts,
		Health: gs.PlayerHealth,
	}

	switch {
	case gs.GameOver:
		r.Outcome = OutcomeDied
		r.Description = fmt.Sprintf("overrun_at_level_%d", gs.Level)
	case targetTicks > 0 && w.Ticks() >= targetTicks:
		r.Outcome = OutcomeSurvived
		switch {
		case gs.PlayerHealth >= playerMaxHealth*0.75:
			r.Description = "survived_comfortably"
		case gs.PlayerHealth >= playerMaxHealth*0.25:
			r.Description = "survived_bloodied"
		default:
			r.Description = "survived_barely"
		}
	default:
		r.Outcome = OutcomeInProgress
		r.Description = "session_running"
	}
	return r
}
