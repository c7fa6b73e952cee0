package game

import (
	"github.com/pthm-cable/kennel/components"
	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/telemetry"
	"github.com/pthm-cable/kennel/traits"
)

// DogView is the read-only projection of one owned dog.
type DogView struct {
	Name     string
	Needs    components.Needs
	Level    int
	XP       int
	XPToNext int
	Traits   []string
	Selected bool
	Critical bool
}

// AchievementView is one achievement and whether it has been earned.
type AchievementView struct {
	Name        string
	Description string
	Unlocked    bool
}

// FoodView is one shop item.
type FoodView struct {
	Name      string
	Cost      int
	Available bool
}

// View is everything a presentation layer needs to draw the session.
// It is a copy; mutating it does not affect the Game.
type View struct {
	SessionID    string
	State        State
	Coins        int
	Counters     save.Counters
	Roster       []DogView
	AdoptionPool []save.DogRecord
	Achievements []AchievementView
	Unlocks      save.Unlocks
	Foods        []FoodView
	Selected     int
	Ticks        int
	CurrentSlot  save.SlotID

	// Display metadata for the per-dog need bars and progress fields.
	NeedFields     []components.FieldDescriptor
	ProgressFields []components.FieldDescriptor
}

// View returns a read-only projection of the current state.
func (g *Game) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := View{
		SessionID:    g.sessionID,
		State:        g.state,
		Coins:        g.coins,
		Counters:     g.counters,
		AdoptionPool: make([]save.DogRecord, len(g.pool)),
		Unlocks:      *g.unlocks.snapshot(),
		Selected:     g.selected,
		Ticks:        g.tick,
		CurrentSlot:  g.currentSlot,

		NeedFields:     components.NeedFieldDescriptors(g.cfg.Decay.Critical),
		ProgressFields: components.ProgressFieldDescriptors(),
	}

	for i, rec := range g.pool {
		rec.Traits = append([]string(nil), rec.Traits...)
		v.AdoptionPool[i] = rec
	}

	for i := 0; i < g.dogs.len(); i++ {
		d := g.dogs.dog(i)
		v.Roster = append(v.Roster, DogView{
			Name:     d.id.Name,
			Needs:    *d.needs,
			Level:    d.prog.Level,
			XP:       d.prog.XP,
			XPToNext: d.prog.XPToNext,
			Traits:   traits.TraitNames(d.temp.Traits),
			Selected: i == g.selected,
			Critical: d.needs.Critical(g.cfg.Decay.Critical),
		})
	}

	for i, def := range g.cfg.Achievements {
		v.Achievements = append(v.Achievements, AchievementView{
			Name:        def.Name,
			Description: def.Description,
			Unlocked:    g.achieved[i],
		})
	}

	for _, f := range g.cfg.Foods {
		v.Foods = append(v.Foods, FoodView{
			Name:      f.Name,
			Cost:      f.Cost,
			Available: f.Level == 0 || g.unlocks.has(telemetry.KindFood, f.Name),
		})
	}

	return v
}

// Coins returns the coin balance.
func (g *Game) Coins() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.coins
}
