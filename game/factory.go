package game

import (
	"log/slog"

	"github.com/pthm-cable/kennel/components"
	"github.com/pthm-cable/kennel/config"
	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/traits"
)

// recordFromConfig converts a configured dog template to its persisted form.
func recordFromConfig(d config.DogConfig) save.DogRecord {
	return save.DogRecord{
		Name:          d.Name,
		Hunger:        d.Hunger,
		Energy:        d.Energy,
		Hygiene:       d.Hygiene,
		Happiness:     d.Happiness,
		Level:         d.Level,
		XP:            d.XP,
		XPToNextLevel: d.XPToNextLevel,
		Traits:        append([]string(nil), d.Traits...),
	}
}

// recordsFromConfig converts a template list.
func recordsFromConfig(list []config.DogConfig) []save.DogRecord {
	out := make([]save.DogRecord, len(list))
	for i, d := range list {
		out[i] = recordFromConfig(d)
	}
	return out
}

// unlockedRecord builds the adoption template for a dog unlocked by level.
func unlockedRecord(tmpl config.DogConfig, u config.UnlockDogConfig) save.DogRecord {
	rec := recordFromConfig(tmpl)
	rec.Name = u.Name
	rec.Traits = append([]string(nil), u.Traits...)
	return rec
}

// normalizeRecord repairs a record read from a snapshot: needs clamped,
// progression brought back within its invariants, unknown traits dropped.
func normalizeRecord(rec save.DogRecord, threshold int) save.DogRecord {
	n := components.NewNeeds(rec.Hunger, rec.Energy, rec.Hygiene, rec.Happiness)
	rec.Hunger, rec.Energy, rec.Hygiene, rec.Happiness = n.Hunger, n.Energy, n.Hygiene, n.Happiness

	if rec.Level < 1 {
		rec.Level = 1
	}
	if rec.XPToNextLevel <= 0 {
		rec.XPToNextLevel = threshold
	}
	if rec.XP < 0 {
		rec.XP = 0
	}
	if rec.XP >= rec.XPToNextLevel {
		rec.XP = rec.XPToNextLevel - 1
	}

	set, unknown := traits.FromIDs(rec.Traits)
	if len(unknown) > 0 {
		slog.Warn("dropping unknown traits", "dog", rec.Name, "traits", unknown)
	}
	rec.Traits = traits.IDs(set)
	return rec
}

// addRecord creates an owned dog from a record.
func (s *dogStore) addRecord(rec save.DogRecord) int {
	set, _ := traits.FromIDs(rec.Traits)
	return s.add(
		rec.Name,
		components.NewNeeds(rec.Hunger, rec.Energy, rec.Hygiene, rec.Happiness),
		components.Progress{Level: rec.Level, XP: rec.XP, XPToNext: rec.XPToNextLevel},
		components.Temperament{Traits: set},
	)
}

// record returns the persisted form of the dog at index i.
func (s *dogStore) record(i int) save.DogRecord {
	d := s.dog(i)
	return save.DogRecord{
		Name:          d.id.Name,
		Hunger:        d.needs.Hunger,
		Energy:        d.needs.Energy,
		Hygiene:       d.needs.Hygiene,
		Happiness:     d.needs.Happiness,
		Level:         d.prog.Level,
		XP:            d.prog.XP,
		XPToNextLevel: d.prog.XPToNext,
		Traits:        traits.IDs(d.temp.Traits),
	}
}

// records returns every owned dog in roster order.
func (s *dogStore) records() []save.DogRecord {
	out := make([]save.DogRecord, s.len())
	for i := range out {
		out[i] = s.record(i)
	}
	return out
}
