package game

import (
	"github.com/pthm-cable/kennel/systems"
	"github.com/pthm-cable/kennel/telemetry"
)

// Reason explains the result of a player action.
type Reason uint8

const (
	ReasonOK Reason = iota
	ReasonInsufficientCoins
	ReasonRosterFull
	ReasonPoolEmpty
	ReasonInvalidFood
	ReasonFoodLocked
	ReasonInvalidDog
	ReasonNoTargets
	ReasonUnknownAction
	ReasonInvalidSlot
	ReasonNotFound
)

var reasonNames = [...]string{
	ReasonOK:                "ok",
	ReasonInsufficientCoins: "insufficient_coins",
	ReasonRosterFull:        "roster_full",
	ReasonPoolEmpty:         "pool_empty",
	ReasonInvalidFood:       "invalid_food",
	ReasonFoodLocked:        "food_locked",
	ReasonInvalidDog:        "invalid_dog",
	ReasonNoTargets:         "no_targets",
	ReasonUnknownAction:     "unknown_action",
	ReasonInvalidSlot:       "invalid_slot",
	ReasonNotFound:          "not_found",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Outcome reports what an action did. A failed precondition leaves the
// simulation unchanged and is reported through Reason, never as an error.
type Outcome struct {
	Action       systems.Action
	Reason       Reason
	Targets      []int // roster indexes affected
	CoinsDelta   int   // net change including achievement rewards
	LevelUps     []int // roster indexes that gained a level
	Achievements []string
	Unlocked     []string
}

// OK reports whether the action took effect.
func (o Outcome) OK() bool {
	return o.Reason == ReasonOK
}

func fail(a systems.Action, r Reason) Outcome {
	return Outcome{Action: a, Reason: r}
}

// PerformAction applies a care action (wash, play or pet) to the selected
// dog, or to every dog when none is selected.
func (g *Game) PerformAction(a systems.Action) Outcome {
	g.mu.Lock()
	defer g.unlockAndDispatch()
	return g.performLocked(a)
}

func (g *Game) performLocked(a systems.Action) Outcome {
	switch a {
	case systems.ActionWash, systems.ActionPlay, systems.ActionPet:
	default:
		return fail(a, ReasonUnknownAction)
	}

	targets := g.targets()
	if len(targets) == 0 {
		return fail(a, ReasonNoTargets)
	}

	out := Outcome{Action: a, Targets: targets}
	startCoins := g.coins

	switch a {
	case systems.ActionWash:
		// Charged once per invocation, not per dog
		cost := g.cfg.Economy.WashCost
		if g.coins < cost {
			return fail(a, ReasonInsufficientCoins)
		}
		g.coins -= cost
		eff := systems.WashEffect(g.cfg.Actions)
		for _, i := range targets {
			d := g.dogs.dog(i)
			eff.Apply(d.needs)
			g.counters.Wash++
			g.gainXP(i, eff.XP, &out)
		}
		g.collector.RecordWash()

	case systems.ActionPlay:
		for _, i := range targets {
			d := g.dogs.dog(i)
			eff := systems.PlayEffect(g.cfg.Actions, g.cfg.Economy, g.traits.PlayBonus(d.temp.Traits))
			eff.Apply(d.needs)
			g.coins += eff.Reward
			g.counters.Play++
			g.gainXP(i, eff.XP, &out)
		}
		g.collector.RecordPlay()

	case systems.ActionPet:
		eff := systems.PetEffect(g.cfg.Actions)
		for _, i := range targets {
			eff.Apply(g.dogs.dog(i).needs)
			g.gainXP(i, eff.XP, &out)
		}
		g.collector.RecordPet()
	}

	g.collector.RecordCoins(g.coins - startCoins)
	g.afterAction(&out)
	out.CoinsDelta = g.coins - startCoins
	return out
}

// BuyFood buys one food item and feeds it to the selected dog, or to every
// dog when none is selected. The price is charged once per purchase.
func (g *Game) BuyFood(index int) Outcome {
	g.mu.Lock()
	defer g.unlockAndDispatch()
	return g.buyFoodLocked(index)
}

func (g *Game) buyFoodLocked(index int) Outcome {
	a := systems.ActionFeed
	if index < 0 || index >= len(g.cfg.Foods) {
		return fail(a, ReasonInvalidFood)
	}
	food := g.cfg.Foods[index]
	if food.Level > 0 && !g.unlocks.has(telemetry.KindFood, food.Name) {
		return fail(a, ReasonFoodLocked)
	}
	targets := g.targets()
	if len(targets) == 0 {
		return fail(a, ReasonNoTargets)
	}
	if g.coins < food.Cost {
		return fail(a, ReasonInsufficientCoins)
	}

	out := Outcome{Action: a, Targets: targets}
	startCoins := g.coins
	g.coins -= food.Cost

	eff := systems.FeedEffect(food, g.cfg.Actions.FeedXP)
	for _, i := range targets {
		eff.Apply(g.dogs.dog(i).needs)
		g.gainXP(i, eff.XP, &out)
	}
	g.counters.Feed++
	g.collector.RecordFeed()
	g.collector.RecordCoins(-food.Cost)

	g.afterAction(&out)
	out.CoinsDelta = g.coins - startCoins
	return out
}

// AdoptDog moves the first adoption pool template into the roster.
func (g *Game) AdoptDog() Outcome {
	g.mu.Lock()
	defer g.unlockAndDispatch()
	return g.adoptLocked()
}

func (g *Game) adoptLocked() Outcome {
	a := systems.ActionAdopt
	if g.dogs.len() >= g.cfg.Roster.MaxDogs {
		return fail(a, ReasonRosterFull)
	}
	if len(g.pool) == 0 {
		return fail(a, ReasonPoolEmpty)
	}
	cost := g.cfg.Economy.AdoptionCost
	if g.coins < cost {
		return fail(a, ReasonInsufficientCoins)
	}

	startCoins := g.coins
	g.coins -= cost
	rec := g.pool[0]
	g.pool = append(g.pool[:0:0], g.pool[1:]...)
	i := g.dogs.addRecord(rec)

	g.collector.RecordAdoption()
	g.collector.RecordCoins(-cost)

	e := telemetry.NewDogAdoptedEvent(i, rec.Name, cost)
	e.Text = g.printer.Sprintf(msgAdopted, rec.Name)
	g.emit(e)

	out := Outcome{Action: a, Targets: []int{i}}
	g.afterAction(&out)
	out.CoinsDelta = g.coins - startCoins
	return out
}

// Do dispatches any player action. arg is the food index for feed and the
// roster index for select; it is ignored otherwise.
func (g *Game) Do(a systems.Action, arg int) Outcome {
	switch a {
	case systems.ActionFeed:
		return g.BuyFood(arg)
	case systems.ActionAdopt:
		return g.AdoptDog()
	case systems.ActionSelect:
		return g.SelectDog(arg)
	default:
		return g.PerformAction(a)
	}
}
