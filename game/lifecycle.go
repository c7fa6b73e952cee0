package game

import (
	"context"
	"log/slog"
)

// State is the simulation's lifecycle state.
type State uint8

const (
	StateMenu State = iota
	StateLoading
	StatePlaying
	StatePaused
)

var stateNames = [...]string{"menu", "loading", "playing", "paused"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// SetState moves to s. Entering StatePlaying (re)starts the decay timer and,
// when enabled in settings, the autosave timer; any other state stops both.
// Repeated calls with the same state are harmless.
func (g *Game) SetState(s State) {
	g.mu.Lock()
	defer g.unlockAndDispatch()
	g.setStateLocked(s)
}

func (g *Game) setStateLocked(s State) {
	prev := g.state
	g.state = s
	g.syncTasks()
	if prev != s {
		slog.Debug("state changed", "from", prev.String(), "to", s.String())
		g.refresh()
	}
}

// syncTasks starts or stops the periodic tasks to match state and settings.
// Start always cancels a pending tick first, so this never double-schedules.
// Caller must hold mu.
func (g *Game) syncTasks() {
	if g.state != StatePlaying {
		g.decayTask.Stop()
		g.autosaveTask.Stop()
		return
	}
	if !g.decayTask.Running() {
		g.decayTask.Start()
	}
	switch {
	case g.settings.AutoSave && g.slots != nil && !g.autosaveTask.Running():
		g.autosaveTask.Start()
	case !g.settings.AutoSave || g.slots == nil:
		g.autosaveTask.Stop()
	}
}

// Start begins a playing session.
func (g *Game) Start() {
	g.SetState(StatePlaying)
}

// Pause suspends decay and autosave.
func (g *Game) Pause() {
	g.SetState(StatePaused)
}

// Resume continues a paused session.
func (g *Game) Resume() {
	g.SetState(StatePlaying)
}

// NewGame discards the current session for the default starting state and
// forgets which slot it was loaded from.
func (g *Game) NewGame() {
	g.mu.Lock()
	defer g.unlockAndDispatch()
	g.restoreLocked(nil)
	g.currentSlot = ""
}

// autosave runs after each autosave tick, outside the lock.
func (g *Game) autosave() {
	if _, err := g.SaveCurrent(context.Background()); err != nil {
		slog.Error("failed to autosave", "error", err)
	}
	g.flushEvents()
}
