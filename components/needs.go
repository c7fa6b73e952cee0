package components

import "math"

// Need bounds.
const (
	NeedMin = 0.0
	NeedMax = 100.0
)

// Needs holds the four care dimensions, each kept within [NeedMin, NeedMax].
type Needs struct {
	Hunger    float64
	Energy    float64
	Hygiene   float64
	Happiness float64
}

// NeedDelta is a signed change to each need.
type NeedDelta struct {
	Hunger    float64
	Energy    float64
	Hygiene   float64
	Happiness float64
}

// Uniform returns a delta that moves every need by v.
func Uniform(v float64) NeedDelta {
	return NeedDelta{Hunger: v, Energy: v, Hygiene: v, Happiness: v}
}

// Clamp bounds v to [NeedMin, NeedMax]. NaN maps to NeedMin.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < NeedMin {
		return NeedMin
	}
	if v > NeedMax {
		return NeedMax
	}
	return v
}

// NewNeeds returns clamped needs.
func NewNeeds(hunger, energy, hygiene, happiness float64) Needs {
	n := Needs{Hunger: hunger, Energy: energy, Hygiene: hygiene, Happiness: happiness}
	n.Normalize()
	return n
}

// Apply adds d to every need and clamps the result.
func (n *Needs) Apply(d NeedDelta) {
	n.Hunger = Clamp(n.Hunger + d.Hunger)
	n.Energy = Clamp(n.Energy + d.Energy)
	n.Hygiene = Clamp(n.Hygiene + d.Hygiene)
	n.Happiness = Clamp(n.Happiness + d.Happiness)
}

// Boost raises every need by v, capped at NeedMax.
func (n *Needs) Boost(v float64) {
	n.Apply(Uniform(v))
}

// Normalize re-clamps values that may have been set directly.
func (n *Needs) Normalize() {
	n.Hunger = Clamp(n.Hunger)
	n.Energy = Clamp(n.Energy)
	n.Hygiene = Clamp(n.Hygiene)
	n.Happiness = Clamp(n.Happiness)
}

// Min returns the lowest need.
func (n Needs) Min() float64 {
	return math.Min(math.Min(n.Hunger, n.Energy), math.Min(n.Hygiene, n.Happiness))
}

// Critical reports whether any need is at or below threshold.
func (n Needs) Critical(threshold float64) bool {
	return n.Min() <= threshold
}

// Values returns the needs in NeedKind order.
func (n Needs) Values() [NumNeeds]float64 {
	return [NumNeeds]float64{n.Hunger, n.Energy, n.Hygiene, n.Happiness}
}
