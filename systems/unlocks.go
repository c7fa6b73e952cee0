package systems

import "github.com/pthm-cable/kennel/config"

// Gate is content that becomes available at a roster level.
type Gate struct {
	Name  string
	Level int
}

// MaxLevel returns the highest level in levels, or 0 if empty.
func MaxLevel(levels []int) int {
	best := 0
	for _, l := range levels {
		if l > best {
			best = l
		}
	}
	return best
}

// Due returns, in gate order, the names whose level is reached and which
// are not already in have.
func Due(maxLevel int, gates []Gate, have map[string]bool) []string {
	var due []string
	for _, g := range gates {
		if maxLevel >= g.Level && !have[g.Name] {
			due = append(due, g.Name)
		}
	}
	return due
}

// DogGates returns the unlock gates for dogs.
func DogGates(dogs []config.UnlockDogConfig) []Gate {
	gates := make([]Gate, len(dogs))
	for i, d := range dogs {
		gates[i] = Gate{Name: d.Name, Level: d.Level}
	}
	return gates
}

// ToyGates returns the unlock gates for toys.
func ToyGates(toys []config.UnlockToyConfig) []Gate {
	gates := make([]Gate, len(toys))
	for i, t := range toys {
		gates[i] = Gate{Name: t.Name, Level: t.Level}
	}
	return gates
}

// FoodGates returns the unlock gates for level-gated foods only.
func FoodGates(foods []config.FoodConfig) []Gate {
	var gates []Gate
	for _, f := range foods {
		if f.Level > 0 {
			gates = append(gates, Gate{Name: f.Name, Level: f.Level})
		}
	}
	return gates
}
