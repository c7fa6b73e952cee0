package game

import "github.com/pthm-cable/kennel/systems"

// SelectDog makes the dog at index the single action target. Selecting the
// already selected dog clears the selection so actions broadcast again.
func (g *Game) SelectDog(index int) Outcome {
	g.mu.Lock()
	defer g.unlockAndDispatch()

	a := systems.ActionSelect
	if index < 0 || index >= g.dogs.len() {
		return fail(a, ReasonInvalidDog)
	}
	if g.selected == index {
		g.selected = -1
	} else {
		g.selected = index
	}
	g.refresh()
	return Outcome{Action: a, Targets: []int{index}}
}

// ClearSelection makes actions target every dog.
func (g *Game) ClearSelection() {
	g.mu.Lock()
	defer g.unlockAndDispatch()
	if g.selected >= 0 {
		g.selected = -1
		g.refresh()
	}
}

// Selected returns the selected roster index, or -1.
func (g *Game) Selected() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selected
}

// targets returns the roster indexes an action applies to.
// Caller must hold mu.
func (g *Game) targets() []int {
	if g.selected >= 0 && g.selected < g.dogs.len() {
		return []int{g.selected}
	}
	all := make([]int, g.dogs.len())
	for i := range all {
		all[i] = i
	}
	return all
}
