// Package components defines ECS components for the simulation.
package components

import "github.com/pthm-cable/kennel/traits"

// Identity names an owned dog. Names are unique across roster and adoption pool.
type Identity struct {
	Name string
	Seq  uint32 // adoption order, stable for the life of the session
}

// Progress tracks experience and level.
// XP stays below XPToNext except transiently inside a grant.
type Progress struct {
	Level    int
	XP       int
	XPToNext int
}

// Temperament holds the dog's immutable trait set.
type Temperament struct {
	Traits traits.Trait
}
