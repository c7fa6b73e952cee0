package systems

import (
	"math"
	"strings"

	"github.com/pthm-cable/kennel/components"
	"github.com/pthm-cable/kennel/config"
)

// Action identifies a player action.
type Action uint8

const (
	ActionNone Action = iota
	ActionFeed
	ActionWash
	ActionPlay
	ActionPet
	ActionAdopt
	ActionSelect
)

var actionNames = []string{"none", "feed", "wash", "play", "pet", "adopt", "select"}

// String returns the identifier for an Action.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction looks up an action by identifier.
func ParseAction(s string) (Action, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range actionNames {
		if i > 0 && name == s {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// CareEffect is what one care action does to one dog.
type CareEffect struct {
	Delta  components.NeedDelta
	XP     int
	Reward int // coins credited for this dog
}

// Apply changes the dog's needs by the effect's delta.
func (e CareEffect) Apply(needs *components.Needs) {
	needs.Apply(e.Delta)
}

func deltaOf(a config.ActionConfig) components.NeedDelta {
	return components.NeedDelta{
		Hunger:    a.Hunger,
		Energy:    a.Energy,
		Hygiene:   a.Hygiene,
		Happiness: a.Happiness,
	}
}

// WashEffect returns the per-dog wash effect. The wash cost is charged once
// per invocation by the caller.
func WashEffect(ac config.ActionsConfig) CareEffect {
	return CareEffect{Delta: deltaOf(ac.Wash), XP: ac.Wash.XP}
}

// PlayEffect returns the per-dog play effect. When the economy enables trait
// reward bonuses the coin reward is scaled by bonus and floored.
func PlayEffect(ac config.ActionsConfig, ec config.EconomyConfig, bonus float64) CareEffect {
	reward := ec.PlayReward
	if ec.TraitRewardBonus && bonus > 0 {
		reward = int(math.Floor(float64(reward) * bonus))
	}
	return CareEffect{Delta: deltaOf(ac.Play), XP: ac.Play.XP, Reward: reward}
}

// PetEffect returns the per-dog pet effect.
func PetEffect(ac config.ActionsConfig) CareEffect {
	return CareEffect{Delta: deltaOf(ac.Pet), XP: ac.Pet.XP}
}

// FeedEffect returns the per-dog effect of a food item.
func FeedEffect(food config.FoodConfig, feedXP int) CareEffect {
	return CareEffect{
		Delta: components.NeedDelta{
			Hunger:    food.Hunger,
			Energy:    food.Energy,
			Happiness: food.Happiness,
		},
		XP: feedXP,
	}
}
