// Package traits defines dog temperament traits and the modifiers they apply.
package traits

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/kennel/config"
)

// Trait is a set of temperament flags. A dog's set is fixed at creation.
type Trait uint32

const (
	Energetic Trait = 1 << iota // Loses energy slower, gets hungry faster
	Calm                        // Loses energy and happiness slower
	Playful                     // Extra joy from play, dirties faster
	Clean                       // Stays clean longer
	Messy                       // Dirties quickly
	Hungry                      // Always hungry

	numTraits = iota
)

// All lists every trait in display order.
var All = []Trait{Energetic, Calm, Playful, Clean, Messy, Hungry}

var ids = map[Trait]string{
	Energetic: "energetic",
	Calm:      "calm",
	Playful:   "playful",
	Clean:     "clean",
	Messy:     "messy",
	Hungry:    "hungry",
}

// Has checks if a trait set contains a trait.
func (t Trait) Has(other Trait) bool {
	return t&other != 0
}

// Add adds a trait to the set.
func (t Trait) Add(other Trait) Trait {
	return t | other
}

// Remove removes a trait from the set.
func (t Trait) Remove(other Trait) Trait {
	return t &^ other
}

// Len returns the number of traits in the set.
func (t Trait) Len() int {
	n := 0
	for _, tr := range All {
		if t.Has(tr) {
			n++
		}
	}
	return n
}

// ID returns the identifier of a single trait ("energetic"), or "" for sets.
func (t Trait) ID() string {
	return ids[t]
}

// Parse looks up a single trait by identifier. Matching ignores case.
func Parse(id string) (Trait, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for tr, name := range ids {
		if name == id {
			return tr, true
		}
	}
	return 0, false
}

// FromIDs builds a set from identifiers, returning any it did not recognize.
func FromIDs(list []string) (Trait, []string) {
	var set Trait
	var unknown []string
	for _, id := range list {
		tr, ok := Parse(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		set = set.Add(tr)
	}
	return set, unknown
}

// IDs returns the identifiers in the set, in display order.
func IDs(t Trait) []string {
	list := make([]string, 0, numTraits)
	for _, tr := range All {
		if t.Has(tr) {
			list = append(list, ids[tr])
		}
	}
	return list
}

// TraitNames returns human-readable names for traits.
func TraitNames(t Trait) []string {
	var names []string
	for _, tr := range All {
		if t.Has(tr) {
			id := ids[tr]
			names = append(names, strings.ToUpper(id[:1])+id[1:])
		}
	}
	return names
}

// Factors holds per-need multipliers.
type Factors struct {
	Hunger    float64
	Energy    float64
	Hygiene   float64
	Happiness float64
}

// Neutral is the identity factor set.
var Neutral = Factors{Hunger: 1, Energy: 1, Hygiene: 1, Happiness: 1}

// Modifier is the resolved effect record for one trait.
type Modifier struct {
	Name        string
	Description string
	Decay       Factors
	PlayBonus   float64
}

// Table maps each trait to its modifier. Traits absent from the table have no effect.
type Table struct {
	mods map[Trait]Modifier
}

// NewTable builds a trait table from configuration.
func NewTable(list []config.TraitConfig) (*Table, error) {
	tbl := &Table{mods: make(map[Trait]Modifier, len(list))}
	for _, tc := range list {
		tr, ok := Parse(tc.Name)
		if !ok {
			return nil, fmt.Errorf("unknown trait %q", tc.Name)
		}
		tbl.mods[tr] = Modifier{
			Name:        TraitNames(tr)[0],
			Description: tc.Description,
			Decay: Factors{
				Hunger:    orOne(tc.HungerDecay),
				Energy:    orOne(tc.EnergyDecay),
				Hygiene:   orOne(tc.HygieneDecay),
				Happiness: orOne(tc.HappinessDecay),
			},
			PlayBonus: orOne(tc.PlayBonus),
		}
	}
	return tbl, nil
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// Modifier returns the modifier for a single trait.
func (tbl *Table) Modifier(t Trait) (Modifier, bool) {
	m, ok := tbl.mods[t]
	return m, ok
}

// Decay returns the product of the set's decay multipliers per need.
func (tbl *Table) Decay(set Trait) Factors {
	f := Neutral
	for _, tr := range All {
		if !set.Has(tr) {
			continue
		}
		m, ok := tbl.mods[tr]
		if !ok {
			continue
		}
		f.Hunger *= m.Decay.Hunger
		f.Energy *= m.Decay.Energy
		f.Hygiene *= m.Decay.Hygiene
		f.Happiness *= m.Decay.Happiness
	}
	return f
}

// PlayBonus returns the product of the set's play reward multipliers.
func (tbl *Table) PlayBonus(set Trait) float64 {
	b := 1.0
	for _, tr := range All {
		if m, ok := tbl.mods[tr]; ok && set.Has(tr) {
			b *= m.PlayBonus
		}
	}
	return b
}
