package game

import (
	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/systems"
	"github.com/pthm-cable/kennel/telemetry"
)

// unlockRecord accumulates unlocked content by category. It only grows.
type unlockRecord struct {
	dogs  []string
	toys  []string
	foods []string
}

func (u *unlockRecord) list(kind string) *[]string {
	switch kind {
	case telemetry.KindDog:
		return &u.dogs
	case telemetry.KindToy:
		return &u.toys
	default:
		return &u.foods
	}
}

func (u *unlockRecord) has(kind, name string) bool {
	for _, n := range *u.list(kind) {
		if n == name {
			return true
		}
	}
	return false
}

func (u *unlockRecord) set(kind string) map[string]bool {
	l := *u.list(kind)
	m := make(map[string]bool, len(l))
	for _, n := range l {
		m[n] = true
	}
	return m
}

// add records name, returning false if it was already present.
func (u *unlockRecord) add(kind, name string) bool {
	if u.has(kind, name) {
		return false
	}
	l := u.list(kind)
	*l = append(*l, name)
	return true
}

func (u unlockRecord) snapshot() *save.Unlocks {
	return &save.Unlocks{
		Dogs:  append([]string{}, u.dogs...),
		Toys:  append([]string{}, u.toys...),
		Foods: append([]string{}, u.foods...),
	}
}

func unlocksFrom(s *save.Unlocks) unlockRecord {
	var u unlockRecord
	if s == nil {
		return u
	}
	for _, n := range s.Dogs {
		u.add(telemetry.KindDog, n)
	}
	for _, n := range s.Toys {
		u.add(telemetry.KindToy, n)
	}
	for _, n := range s.Foods {
		u.add(telemetry.KindFood, n)
	}
	return u
}

// gainXP grants experience to one dog and records a level-up in out.
// Caller must hold mu.
func (g *Game) gainXP(i, amount int, out *Outcome) {
	d := g.dogs.dog(i)
	if !systems.GainXP(d.prog, d.needs, amount, g.curve) {
		return
	}
	out.LevelUps = append(out.LevelUps, i)
	g.collector.RecordLevelUp()

	e := telemetry.NewLevelUpEvent(i, d.id.Name, d.prog.Level)
	e.Text = g.printer.Sprintf(msgLevelUp, d.id.Name, d.prog.Level)
	g.emit(e)
	g.Logf("%s reached level %d (next at %d xp)", d.id.Name, d.prog.Level, d.prog.XPToNext)
}

// afterAction runs achievement evaluation, then unlock evaluation, then
// signals a refresh. Caller must hold mu.
func (g *Game) afterAction(out *Outcome) {
	out.Achievements = g.evaluateAchievements()
	out.Unlocked = g.evaluateUnlocks()
	g.refresh()
}

// evaluateAchievements unlocks every achievement whose rule now holds and
// credits its reward. Returns the names unlocked.
func (g *Game) evaluateAchievements() []string {
	state := systems.AchievementState{
		Coins:     g.coins,
		FeedCount: g.counters.Feed,
		WashCount: g.counters.Wash,
		PlayCount: g.counters.Play,
		Needs:     g.dogs.needs(),
	}
	reward := g.cfg.Economy.AchievementReward
	newly := systems.EvaluateAchievements(g.cfg.Achievements, g.achieved, &state, reward)
	if len(newly) == 0 {
		return nil
	}

	g.collector.RecordCoins(state.Coins - g.coins)
	g.coins = state.Coins

	names := make([]string, len(newly))
	for k, idx := range newly {
		def := g.cfg.Achievements[idx]
		names[k] = def.Name
		g.collector.RecordAchievement()

		e := telemetry.NewAchievementEvent(def.Name, reward)
		e.Text = g.printer.Sprintf(msgAchievement, def.Name, reward)
		g.emit(e)
	}
	return names
}

// evaluateUnlocks makes level-gated content available based on the highest
// level in the roster. Unlocked dogs join the adoption pool unless a dog of
// that name is already owned or adoptable. Returns the names unlocked.
func (g *Game) evaluateUnlocks() []string {
	maxLevel := systems.MaxLevel(g.dogs.levels())
	var unlocked []string

	present := g.dogs.names()
	for _, rec := range g.pool {
		present[rec.Name] = true
	}
	for _, name := range systems.Due(maxLevel, systems.DogGates(g.cfg.Unlocks.Dogs), present) {
		for _, u := range g.cfg.Unlocks.Dogs {
			if u.Name == name {
				g.pool = append(g.pool, unlockedRecord(g.cfg.Unlocks.Template, u))
				g.announceUnlock(telemetry.KindDog, name, u.Level, msgUnlockDog)
				break
			}
		}
		g.unlocks.add(telemetry.KindDog, name)
		unlocked = append(unlocked, name)
	}

	for _, gate := range systems.ToyGates(g.cfg.Unlocks.Toys) {
		if maxLevel >= gate.Level && g.unlocks.add(telemetry.KindToy, gate.Name) {
			g.announceUnlock(telemetry.KindToy, gate.Name, gate.Level, msgUnlockToy)
			unlocked = append(unlocked, gate.Name)
		}
	}

	have := g.unlocks.set(telemetry.KindFood)
	for _, name := range systems.Due(maxLevel, systems.FoodGates(g.cfg.Foods), have) {
		g.unlocks.add(telemetry.KindFood, name)
		for _, gate := range systems.FoodGates(g.cfg.Foods) {
			if gate.Name == name {
				g.announceUnlock(telemetry.KindFood, name, gate.Level, msgUnlockFood)
			}
		}
		unlocked = append(unlocked, name)
	}

	return unlocked
}

func (g *Game) announceUnlock(kind, name string, level int, key string) {
	e := telemetry.NewUnlockEvent(kind, name, level)
	e.Text = g.printer.Sprintf(key, name)
	g.emit(e)
}

// refresh signals that observable state changed. Caller must hold mu.
func (g *Game) refresh() {
	g.emit(telemetry.NewRefreshEvent())
}
