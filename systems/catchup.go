package systems

import (
	"math"
	"time"

	"github.com/pthm-cable/kennel/components"
	"github.com/pthm-cable/kennel/config"
)

// Away classifies how long the player was gone between sessions.
type Away uint8

const (
	AwayNone    Away = iota // under the minutes threshold
	AwayMinutes             // at least the minutes threshold, under the hours threshold
	AwayHours               // at least the hours threshold
)

// String returns the name of an Away class.
func (a Away) String() string {
	switch a {
	case AwayMinutes:
		return "minutes"
	case AwayHours:
		return "hours"
	default:
		return "none"
	}
}

// CatchUpPoints returns the flat decay owed for an absence: whole steps
// times points per step. Traits do not apply. Negative elapsed time owes nothing.
func CatchUpPoints(elapsed time.Duration, cu config.CatchUpConfig) float64 {
	if elapsed <= 0 || cu.StepMinutes <= 0 {
		return 0
	}
	steps := math.Floor(elapsed.Minutes() / cu.StepMinutes)
	return steps * cu.PointsPerStep
}

// ClassifyAway buckets an absence for the away notice.
func ClassifyAway(elapsed time.Duration, cu config.CatchUpConfig) Away {
	m := elapsed.Minutes()
	switch {
	case m >= cu.AwayHours:
		return AwayHours
	case m >= cu.AwayMinutes:
		return AwayMinutes
	default:
		return AwayNone
	}
}

// ApplyCatchUp removes points from every need.
func ApplyCatchUp(needs *components.Needs, points float64) {
	if points <= 0 {
		return
	}
	needs.Apply(components.Uniform(-points))
}
