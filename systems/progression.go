package systems

import (
	"math"

	"github.com/pthm-cable/kennel/components"
	"github.com/pthm-cable/kennel/config"
)

// Curve is the leveling curve.
type Curve struct {
	Growth float64 // threshold multiplier per level
	Boost  float64 // added to every need on level-up
}

// CurveFrom builds a Curve from configuration.
func CurveFrom(p config.ProgressionConfig) Curve {
	return Curve{Growth: p.Growth, Boost: p.LevelBoost}
}

// NextThreshold returns the XP needed for the level after one that needed cur.
// The result is floor(cur*growth) and always strictly greater than cur.
func NextThreshold(cur int, growth float64) int {
	next := int(math.Floor(float64(cur) * growth))
	if next <= cur {
		next = cur + 1
	}
	return next
}

// GainXP adds experience and resolves at most one level-up. On level-up XP
// resets to zero and any remainder is discarded. Returns true if the dog leveled.
func GainXP(p *components.Progress, needs *components.Needs, amount int, c Curve) bool {
	if amount <= 0 {
		return false
	}
	p.XP += amount
	if p.XP < p.XPToNext {
		return false
	}

	p.Level++
	p.XP = 0
	p.XPToNext = NextThreshold(p.XPToNext, c.Growth)
	needs.Boost(c.Boost)
	return true
}
