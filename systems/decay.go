package systems

import (
	"github.com/pthm-cable/kennel/components"
	"github.com/pthm-cable/kennel/traits"
)

// DecayAmounts returns the change one decay tick makes to each need:
// base points scaled by the trait factor for that need.
func DecayAmounts(base float64, f traits.Factors) components.NeedDelta {
	return components.NeedDelta{
		Hunger:    -base * f.Hunger,
		Energy:    -base * f.Energy,
		Hygiene:   -base * f.Hygiene,
		Happiness: -base * f.Happiness,
	}
}

// ApplyDecay ages needs by one tick. Returns true if any need is now
// at or below the critical threshold.
func ApplyDecay(needs *components.Needs, base float64, f traits.Factors, critical float64) bool {
	needs.Apply(DecayAmounts(base, f))
	return needs.Critical(critical)
}

// AnyCritical reports whether any need of any dog is at or below threshold.
func AnyCritical(all []components.Needs, threshold float64) bool {
	for _, n := range all {
		if n.Critical(threshold) {
			return true
		}
	}
	return false
}
