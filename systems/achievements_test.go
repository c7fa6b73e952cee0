package systems

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/pthm-cable/kennel/components"
	"github.com/pthm-cable/kennel/config"
)

func TestRuleMet(t *testing.T) {
	defs := config.Default().Achievements
	clean := components.NewNeeds(50, 50, 85, 100)
	dirty := components.NewNeeds(50, 50, 80, 100)
	sad := components.NewNeeds(50, 50, 85, 99.5)

	tests := []struct {
		name  string
		index int
		state AchievementState
		want  bool
	}{
		{"first steps locked", 0, AchievementState{}, false},
		{"first steps", 0, AchievementState{FeedCount: 1}, true},
		{"clean paws", 1, AchievementState{WashCount: 2, Needs: []components.Needs{clean, clean}}, true},
		{"clean paws too few washes", 1, AchievementState{WashCount: 1, Needs: []components.Needs{clean, clean}}, false},
		{"clean paws hygiene exactly 80", 1, AchievementState{WashCount: 5, Needs: []components.Needs{clean, dirty}}, false},
		{"happy pack", 2, AchievementState{Needs: []components.Needs{clean, dirty}}, true},
		{"happy pack not exact", 2, AchievementState{Needs: []components.Needs{clean, sad}}, false},
		{"happy pack empty roster", 2, AchievementState{}, false},
		{"rich owner", 3, AchievementState{Coins: 1000}, true},
		{"rich owner short", 3, AchievementState{Coins: 999}, false},
		{"marathon", 4, AchievementState{PlayCount: 50}, true},
		{"marathon short", 4, AchievementState{PlayCount: 49}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuleMet(defs[tt.index], tt.state); got != tt.want {
				t.Errorf("RuleMet(%s) = %v, want %v", defs[tt.index].Name, got, tt.want)
			}
		})
	}
}

func TestEvaluateAchievements_RewardOnce(t *testing.T) {
	defs := config.Default().Achievements
	unlocked := make([]bool, len(defs))
	state := AchievementState{Coins: 10, FeedCount: 1, Needs: oneDog()}

	newly := EvaluateAchievements(defs, unlocked, &state, 50)
	if !reflect.DeepEqual(newly, []int{0}) {
		t.Fatalf("newly = %v, want [0]", newly)
	}
	if state.Coins != 60 {
		t.Errorf("Coins = %d, want 60", state.Coins)
	}

	newly = EvaluateAchievements(defs, unlocked, &state, 50)
	if len(newly) != 0 || state.Coins != 60 {
		t.Errorf("re-evaluation granted again: newly %v coins %d", newly, state.Coins)
	}
}

func TestEvaluateAchievements_RewardVisibleToLaterRules(t *testing.T) {
	defs := config.Default().Achievements
	unlocked := make([]bool, len(defs))
	state := AchievementState{Coins: 960, FeedCount: 1, Needs: oneDog()}

	newly := EvaluateAchievements(defs, unlocked, &state, 50)
	if !reflect.DeepEqual(newly, []int{0, 3}) {
		t.Fatalf("newly = %v, want [0 3]", newly)
	}
	if state.Coins != 1060 {
		t.Errorf("Coins = %d, want 1060", state.Coins)
	}
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	defs := config.Default().Achievements
	rapid.Check(t, func(t *rapid.T) {
		unlocked := make([]bool, len(defs))
		state := AchievementState{
			Coins:     rapid.IntRange(0, 2000).Draw(t, "coins"),
			FeedCount: rapid.IntRange(0, 3).Draw(t, "feed"),
			PlayCount: rapid.IntRange(0, 60).Draw(t, "play"),
		}
		EvaluateAchievements(defs, unlocked, &state, 50)
		snapshot := append([]bool(nil), unlocked...)
		coins := state.Coins

		if again := EvaluateAchievements(defs, unlocked, &state, 50); len(again) != 0 {
			t.Fatalf("second pass unlocked %v", again)
		}
		if state.Coins != coins || !reflect.DeepEqual(unlocked, snapshot) {
			t.Fatalf("second pass changed state")
		}
	})
}

func oneDog() []components.Needs {
	return []components.Needs{components.NewNeeds(50, 50, 50, 50)}
}
