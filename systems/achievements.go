package systems

import (
	"github.com/pthm-cable/kennel/components"
	"github.com/pthm-cable/kennel/config"
)

// AchievementState is the aggregate the achievement rules read.
type AchievementState struct {
	Coins     int
	FeedCount int
	WashCount int
	PlayCount int
	Needs     []components.Needs // one entry per owned dog, roster order
}

// RuleMet reports whether the state satisfies an achievement's rule.
func RuleMet(def config.AchievementConfig, s AchievementState) bool {
	switch def.Rule {
	case config.RuleFeedCount:
		return float64(s.FeedCount) >= def.Threshold
	case config.RuleWashCoversRoster:
		if s.WashCount < len(s.Needs) {
			return false
		}
		for _, n := range s.Needs {
			if n.Hygiene <= def.Threshold {
				return false
			}
		}
		return true
	case config.RuleAllHappyExact:
		if len(s.Needs) == 0 {
			return false
		}
		for _, n := range s.Needs {
			if n.Happiness != def.Threshold {
				return false
			}
		}
		return true
	case config.RuleCoinsAtLeast:
		return float64(s.Coins) >= def.Threshold
	case config.RulePlayCount:
		return float64(s.PlayCount) >= def.Threshold
	}
	return false
}

// EvaluateAchievements checks every locked achievement in order. Each newly
// met one is marked unlocked and credits reward into s.Coins, which later
// rules in the same pass observe. Unlocked achievements are never re-checked.
// Returns the indexes unlocked by this pass.
func EvaluateAchievements(defs []config.AchievementConfig, unlocked []bool, s *AchievementState, reward int) []int {
	var newly []int
	for i, def := range defs {
		if i >= len(unlocked) || unlocked[i] {
			continue
		}
		if !RuleMet(def, *s) {
			continue
		}
		unlocked[i] = true
		s.Coins += reward
		newly = append(newly, i)
	}
	return newly
}
