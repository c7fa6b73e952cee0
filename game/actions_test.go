package game

import (
	"testing"

	"github.com/pthm-cable/kennel/config"
	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/systems"
	"github.com/pthm-cable/kennel/telemetry"
)

func TestAdoptDog(t *testing.T) {
	g, _, rec := newTestGame(t, nil)

	out := g.AdoptDog()
	if !out.OK() {
		t.Fatalf("adopt failed: %v", out.Reason)
	}
	v := g.View()
	if v.Coins != 0 {
		t.Errorf("coins = %d, want 0", v.Coins)
	}
	if len(v.Roster) != 2 || v.Roster[1].Name != "Bella" {
		t.Errorf("roster = %+v", v.Roster)
	}
	if len(v.AdoptionPool) != 1 || v.AdoptionPool[0].Name != "Charlie" {
		t.Errorf("pool = %+v", v.AdoptionPool)
	}
	if out.CoinsDelta != -100 {
		t.Errorf("coins delta = %d, want -100", out.CoinsDelta)
	}
	e, ok := rec.last(telemetry.EventDogAdopted)
	if !ok {
		t.Fatal("no adoption event")
	}
	if e.Name != "Bella" || e.Dog != 1 || e.Amount != 100 {
		t.Errorf("adoption event = %+v", e)
	}
	if e.Text != "Bella has joined your family!" {
		t.Errorf("adoption text = %q", e.Text)
	}

	// Second adoption cannot be afforded and changes nothing
	rec.reset()
	out = g.AdoptDog()
	if out.Reason != ReasonInsufficientCoins {
		t.Errorf("reason = %v, want insufficient_coins", out.Reason)
	}
	v = g.View()
	if v.Coins != 0 || len(v.Roster) != 2 || len(v.AdoptionPool) != 1 {
		t.Errorf("state changed after failed adopt: coins=%d roster=%d pool=%d", v.Coins, len(v.Roster), len(v.AdoptionPool))
	}
	if len(rec.events) != 0 {
		t.Errorf("failed adopt emitted %d events", len(rec.events))
	}
}

func TestAdoptRosterFullAndPoolEmpty(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	g.Restore(snapshotWith(1000,
		dogRecord("A", 50, 50, 50, 50),
		dogRecord("B", 50, 50, 50, 50),
		dogRecord("C", 50, 50, 50, 50),
	))
	if out := g.AdoptDog(); out.Reason != ReasonRosterFull {
		t.Errorf("reason = %v, want roster_full", out.Reason)
	}

	g.Restore(snapshotWith(1000, dogRecord("A", 50, 50, 50, 50)))
	if out := g.AdoptDog(); out.Reason != ReasonPoolEmpty {
		t.Errorf("reason = %v, want pool_empty", out.Reason)
	}
	if c := g.Coins(); c != 1000 {
		t.Errorf("coins = %d, want 1000", c)
	}
}

func TestWashSingleDog(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	snap := snapshotWith(5, dogRecord("Max", 70, 70, 55, 75))
	snap.Achievements = unlockedAchievements("Clean Paws")
	g.Restore(snap)

	out := g.PerformAction(systems.ActionWash)
	if !out.OK() {
		t.Fatalf("wash failed: %v", out.Reason)
	}
	v := g.View()
	if v.Coins != 0 {
		t.Errorf("coins = %d, want 0", v.Coins)
	}
	max := v.Roster[0]
	if max.Needs.Hygiene != 85 || max.Needs.Happiness != 85 {
		t.Errorf("needs = %+v, want hygiene 85 happiness 85", max.Needs)
	}
	if max.XP != 15 {
		t.Errorf("xp = %d, want 15", max.XP)
	}
	if v.Counters.Wash != 1 {
		t.Errorf("wash count = %d, want 1", v.Counters.Wash)
	}
	if len(out.Achievements) != 0 {
		t.Errorf("achievements = %v, want none", out.Achievements)
	}

	if out := g.PerformAction(systems.ActionWash); out.Reason != ReasonInsufficientCoins {
		t.Errorf("reason = %v, want insufficient_coins", out.Reason)
	}
}

func TestWashBroadcastChargesOnce(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	g.Restore(snapshotWith(10,
		dogRecord("A", 50, 50, 50, 50),
		dogRecord("B", 50, 50, 50, 50),
	))

	out := g.PerformAction(systems.ActionWash)
	if !out.OK() {
		t.Fatalf("wash failed: %v", out.Reason)
	}
	if len(out.Targets) != 2 {
		t.Errorf("targets = %v, want both dogs", out.Targets)
	}
	v := g.View()
	if v.Coins != 5 {
		t.Errorf("coins = %d, want 5", v.Coins)
	}
	if v.Counters.Wash != 2 {
		t.Errorf("wash count = %d, want 2", v.Counters.Wash)
	}
	for _, d := range v.Roster {
		if d.Needs.Hygiene != 80 {
			t.Errorf("%s hygiene = %v, want 80", d.Name, d.Needs.Hygiene)
		}
	}
	// Hygiene is 80, not above it
	if len(out.Achievements) != 0 {
		t.Errorf("achievements = %v, want none", out.Achievements)
	}
}

func TestWashUnlocksCleanPaws(t *testing.T) {
	g, _, rec := newTestGame(t, nil)
	g.Restore(snapshotWith(5, dogRecord("Max", 70, 70, 55, 75)))

	out := g.PerformAction(systems.ActionWash)
	if len(out.Achievements) != 1 || out.Achievements[0] != "Clean Paws" {
		t.Fatalf("achievements = %v", out.Achievements)
	}
	if c := g.Coins(); c != 50 {
		t.Errorf("coins = %d, want 50", c)
	}
	if out.CoinsDelta != 45 {
		t.Errorf("coins delta = %d, want 45", out.CoinsDelta)
	}
	e, ok := rec.last(telemetry.EventAchievementUnlocked)
	if !ok {
		t.Fatal("no achievement event")
	}
	if e.Text != "Achievement unlocked: Clean Paws! +50 coins" {
		t.Errorf("text = %q", e.Text)
	}
}

func TestPlayRewardsPerDog(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	g.Restore(snapshotWith(0,
		dogRecord("A", 50, 50, 50, 50, "playful"),
		dogRecord("B", 50, 50, 50, 50),
	))

	out := g.PerformAction(systems.ActionPlay)
	if !out.OK() {
		t.Fatalf("play failed: %v", out.Reason)
	}
	v := g.View()
	if v.Coins != 10 {
		t.Errorf("coins = %d, want 10", v.Coins)
	}
	if v.Counters.Play != 2 {
		t.Errorf("play count = %d, want 2", v.Counters.Play)
	}
	a := v.Roster[0]
	if a.Needs.Energy != 35 || a.Needs.Hygiene != 45 || a.Needs.Happiness != 75 {
		t.Errorf("needs = %+v", a.Needs)
	}
	if a.XP != 20 {
		t.Errorf("xp = %d, want 20", a.XP)
	}
}

func TestPlayTraitRewardBonus(t *testing.T) {
	cfg := config.Default()
	cfg.Economy.TraitRewardBonus = true
	g, _, _ := newTestGameWith(t, cfg, nil)
	g.Restore(snapshotWith(0,
		dogRecord("A", 50, 50, 50, 50, "playful"),
		dogRecord("B", 50, 50, 50, 50),
	))

	g.PerformAction(systems.ActionPlay)
	// floor(5*1.2) + 5
	if c := g.Coins(); c != 11 {
		t.Errorf("coins = %d, want 11", c)
	}
}

func TestPetIsFree(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	g.Restore(snapshotWith(0, dogRecord("A", 50, 50, 50, 50)))

	out := g.PerformAction(systems.ActionPet)
	if !out.OK() {
		t.Fatalf("pet failed: %v", out.Reason)
	}
	v := g.View()
	if v.Coins != 0 {
		t.Errorf("coins = %d, want 0", v.Coins)
	}
	if v.Roster[0].Needs.Happiness != 65 || v.Roster[0].XP != 5 {
		t.Errorf("dog = %+v", v.Roster[0])
	}
	if v.Counters != (save.Counters{}) {
		t.Errorf("counters = %+v, want zero", v.Counters)
	}
}

func TestPetUnlocksHappyPackAtExactly100(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	g.Restore(snapshotWith(0,
		dogRecord("A", 50, 50, 50, 95),
		dogRecord("B", 50, 50, 50, 90),
	))

	out := g.PerformAction(systems.ActionPet)
	if len(out.Achievements) != 1 || out.Achievements[0] != "Happy Pack" {
		t.Fatalf("achievements = %v", out.Achievements)
	}
	if c := g.Coins(); c != 50 {
		t.Errorf("coins = %d, want 50", c)
	}
}

func TestBuyFood(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	// First Steps already earned so the balance only reflects the purchase
	snap := snapshotWith(100, dogRecord("A", 50, 50, 50, 50), dogRecord("B", 50, 50, 50, 50))
	snap.Achievements = unlockedAchievements("First Steps")
	g.Restore(snap)

	out := g.BuyFood(1) // Treat
	if !out.OK() {
		t.Fatalf("feed failed: %v", out.Reason)
	}
	v := g.View()
	if v.Coins != 80 {
		t.Errorf("coins = %d, want 80 (charged once)", v.Coins)
	}
	if v.Counters.Feed != 1 {
		t.Errorf("feed count = %d, want 1", v.Counters.Feed)
	}
	for _, d := range v.Roster {
		if d.Needs.Hunger != 65 || d.Needs.Energy != 55 || d.Needs.Hygiene != 50 || d.Needs.Happiness != 70 {
			t.Errorf("%s needs = %+v", d.Name, d.Needs)
		}
		if d.XP != 10 {
			t.Errorf("%s xp = %d, want 10", d.Name, d.XP)
		}
	}
}

func TestBuyFoodFailures(t *testing.T) {
	cfg := config.Default()
	cfg.Foods[2].Level = 3
	g, _, _ := newTestGameWith(t, cfg, nil)
	g.Restore(snapshotWith(15, dogRecord("A", 50, 50, 50, 50)))

	tests := []struct {
		name  string
		index int
		want  Reason
	}{
		{"negative index", -1, ReasonInvalidFood},
		{"past the menu", 3, ReasonInvalidFood},
		{"locked", 2, ReasonFoodLocked},
		{"too expensive", 1, ReasonInsufficientCoins},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := g.BuyFood(tt.index); out.Reason != tt.want {
				t.Errorf("reason = %v, want %v", out.Reason, tt.want)
			}
		})
	}
	if c := g.Coins(); c != 15 {
		t.Errorf("coins = %d, want 15", c)
	}
	if v := g.View(); v.Foods[2].Available {
		t.Error("locked food reported available")
	}
}

func TestEmptyRosterHasNoTargets(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	g.Restore(snapshotWith(100))

	for _, a := range []systems.Action{systems.ActionWash, systems.ActionPlay, systems.ActionPet} {
		if out := g.PerformAction(a); out.Reason != ReasonNoTargets {
			t.Errorf("%v: reason = %v, want no_targets", a, out.Reason)
		}
	}
	if out := g.BuyFood(0); out.Reason != ReasonNoTargets {
		t.Errorf("feed: reason = %v, want no_targets", out.Reason)
	}
	if c := g.Coins(); c != 100 {
		t.Errorf("coins = %d, want 100", c)
	}
}

func TestUnknownAction(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	for _, a := range []systems.Action{systems.ActionNone, systems.ActionFeed, systems.ActionAdopt} {
		if out := g.PerformAction(a); out.Reason != ReasonUnknownAction {
			t.Errorf("%v: reason = %v, want unknown_action", a, out.Reason)
		}
	}
}

func TestSelectDogTargetsOneDog(t *testing.T) {
	g, _, rec := newTestGame(t, nil)
	g.Restore(snapshotWith(0,
		dogRecord("A", 50, 50, 50, 50),
		dogRecord("B", 50, 50, 50, 50),
	))
	rec.reset()

	if out := g.SelectDog(1); !out.OK() {
		t.Fatalf("select failed: %v", out.Reason)
	}
	if g.Selected() != 1 {
		t.Errorf("selected = %d, want 1", g.Selected())
	}
	if rec.count(telemetry.EventRefresh) != 1 || len(rec.events) != 1 {
		t.Errorf("select emitted %d events, want one refresh", len(rec.events))
	}

	out := g.PerformAction(systems.ActionPet)
	if len(out.Targets) != 1 || out.Targets[0] != 1 {
		t.Errorf("targets = %v, want [1]", out.Targets)
	}
	v := g.View()
	if v.Roster[0].Needs.Happiness != 50 || v.Roster[1].Needs.Happiness != 65 {
		t.Errorf("pet hit the wrong dog: %v / %v", v.Roster[0].Needs.Happiness, v.Roster[1].Needs.Happiness)
	}
	if !v.Roster[1].Selected || v.Roster[0].Selected {
		t.Error("view selection flags wrong")
	}

	// Selecting again clears
	g.SelectDog(1)
	if g.Selected() != -1 {
		t.Errorf("selected = %d after toggle, want -1", g.Selected())
	}

	if out := g.SelectDog(2); out.Reason != ReasonInvalidDog {
		t.Errorf("reason = %v, want invalid_dog", out.Reason)
	}
	if out := g.SelectDog(-1); out.Reason != ReasonInvalidDog {
		t.Errorf("reason = %v, want invalid_dog", out.Reason)
	}

	g.SelectDog(0)
	g.ClearSelection()
	if g.Selected() != -1 {
		t.Errorf("selected = %d after clear, want -1", g.Selected())
	}
}

func TestDoDispatches(t *testing.T) {
	g, _, _ := newTestGame(t, nil)

	if out := g.Do(systems.ActionSelect, 0); !out.OK() || g.Selected() != 0 {
		t.Errorf("select via Do: %+v", out)
	}
	if out := g.Do(systems.ActionFeed, 0); !out.OK() || out.Action != systems.ActionFeed {
		t.Errorf("feed via Do: %+v", out)
	}
	if out := g.Do(systems.ActionPet, 0); !out.OK() || out.Action != systems.ActionPet {
		t.Errorf("pet via Do: %+v", out)
	}
	if out := g.Do(systems.ActionAdopt, 0); out.Action != systems.ActionAdopt {
		t.Errorf("adopt via Do: %+v", out)
	}
}

func TestReasonString(t *testing.T) {
	if ReasonFoodLocked.String() != "food_locked" {
		t.Errorf("got %q", ReasonFoodLocked.String())
	}
	if Reason(200).String() != "unknown" {
		t.Errorf("got %q", Reason(200).String())
	}
}
