package game

import (
	"github.com/pthm-cable/kennel/systems"
	"github.com/pthm-cable/kennel/telemetry"
)

// Tick runs one decay step immediately. It does nothing unless the game is
// playing. Deterministic drivers use it instead of waiting on the scheduler.
func (g *Game) Tick() bool {
	g.mu.Lock()
	defer g.unlockAndDispatch()
	if g.state != StatePlaying {
		return false
	}
	g.decayTick()
	return true
}

// Ticks returns the number of decay ticks run this session.
func (g *Game) Ticks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tick
}

// decayTick ages every owned dog by one tick and raises at most one
// critical signal. Caller must hold mu.
func (g *Game) decayTick() {
	g.tick++
	base, threshold := g.cfg.Decay.Base, g.cfg.Decay.Critical

	critical := false
	query := g.dogs.filter.Query()
	for query.Next() {
		_, needs, _, temp := query.Get()
		if systems.ApplyDecay(needs, base, g.traits.Decay(temp.Traits), threshold) {
			critical = true
		}
	}

	if i := g.firstCritical(); critical && i >= 0 {
		name := g.dogs.dog(i).id.Name
		e := telemetry.NewNeedCriticalEvent(i, name)
		e.Text = g.printer.Sprintf(msgCritical, name)
		g.emit(e)
		g.collector.RecordCritical()
	}

	g.refresh()
	g.flushTelemetryLocked(false)
}

// firstCritical returns the roster index of the first dog with a need at or
// below the critical threshold, or -1.
func (g *Game) firstCritical() int {
	threshold := g.cfg.Decay.Critical
	for i := 0; i < g.dogs.len(); i++ {
		if g.dogs.dog(i).needs.Critical(threshold) {
			return i
		}
	}
	return -1
}
