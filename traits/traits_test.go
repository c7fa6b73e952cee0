package traits

import (
	"math"
	"reflect"
	"testing"

	"github.com/pthm-cable/kennel/config"
)

func defaultTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(config.Default().Traits)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return tbl
}

func TestSetOperations(t *testing.T) {
	set := Energetic.Add(Playful)
	if !set.Has(Energetic) || !set.Has(Playful) {
		t.Errorf("set %b missing added traits", set)
	}
	if set.Has(Calm) {
		t.Errorf("set %b unexpectedly has Calm", set)
	}
	if got := set.Remove(Energetic); got != Playful {
		t.Errorf("Remove = %b, want %b", got, Playful)
	}
	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2", set.Len())
	}
}

func TestFromIDs(t *testing.T) {
	set, unknown := FromIDs([]string{"energetic", "Playful", "grumpy"})
	if set != Energetic|Playful {
		t.Errorf("set = %b, want %b", set, Energetic|Playful)
	}
	if !reflect.DeepEqual(unknown, []string{"grumpy"}) {
		t.Errorf("unknown = %v, want [grumpy]", unknown)
	}
	if got := IDs(set); !reflect.DeepEqual(got, []string{"energetic", "playful"}) {
		t.Errorf("IDs = %v", got)
	}
	if got := TraitNames(Calm | Clean); !reflect.DeepEqual(got, []string{"Calm", "Clean"}) {
		t.Errorf("TraitNames = %v", got)
	}
}

func TestDecayFactors(t *testing.T) {
	tbl := defaultTable(t)

	tests := []struct {
		name string
		set  Trait
		want Factors
	}{
		{"none", 0, Neutral},
		{"energetic", Energetic, Factors{Hunger: 1.3, Energy: 0.7, Hygiene: 1, Happiness: 1}},
		{"energetic playful", Energetic | Playful, Factors{Hunger: 1.3, Energy: 0.7, Hygiene: 1.2, Happiness: 1}},
		{"calm clean", Calm | Clean, Factors{Hunger: 1, Energy: 0.8, Hygiene: 0.7, Happiness: 0.8 * 1.1}},
		{"hungry energetic", Hungry | Energetic, Factors{Hunger: 1.3 * 1.5, Energy: 0.7 * 0.8, Hygiene: 1, Happiness: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tbl.Decay(tt.set)
			if !approxEqual(got.Hunger, tt.want.Hunger) || !approxEqual(got.Energy, tt.want.Energy) ||
				!approxEqual(got.Hygiene, tt.want.Hygiene) || !approxEqual(got.Happiness, tt.want.Happiness) {
				t.Errorf("Decay(%v) = %+v, want %+v", IDs(tt.set), got, tt.want)
			}
		})
	}
}

func TestPlayBonus(t *testing.T) {
	tbl := defaultTable(t)
	if got := tbl.PlayBonus(Playful | Messy); !approxEqual(got, 1.2) {
		t.Errorf("PlayBonus = %v, want 1.2", got)
	}
	if got := tbl.PlayBonus(Calm); got != 1 {
		t.Errorf("PlayBonus(calm) = %v, want 1", got)
	}
}

func TestMissingTraitHasNoEffect(t *testing.T) {
	tbl, err := NewTable([]config.TraitConfig{{Name: "calm", EnergyDecay: 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.Decay(Hungry); got != Neutral {
		t.Errorf("Decay(hungry) = %+v, want neutral", got)
	}
	if got := tbl.Decay(Calm); got.Energy != 0.5 || got.Happiness != 1 {
		t.Errorf("Decay(calm) = %+v", got)
	}
}

func TestNewTableUnknownTrait(t *testing.T) {
	if _, err := NewTable([]config.TraitConfig{{Name: "sleepy"}}); err == nil {
		t.Fatal("expected error for unknown trait")
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
