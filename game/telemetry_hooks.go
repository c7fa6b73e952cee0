package game

import (
	"log/slog"

	"github.com/pthm-cable/kennel/telemetry"
)

// flushTelemetryLocked writes a session stats row when the window is due,
// or unconditionally when force is set and the window has activity.
// Caller must hold mu.
func (g *Game) flushTelemetryLocked(force bool) {
	if !g.collector.ShouldFlush(g.tick) && !(force && g.collector.HasPartial(g.tick)) {
		return
	}

	stats := g.collector.Flush(g.tick, g.coins, g.sampleNeeds())
	stats.SessionID = g.sessionID

	if g.debug {
		slog.Info("stats", "window", stats)
	}

	if err := g.output.WriteSession(stats); err != nil {
		slog.Error("failed to write session stats", "error", err)
	}
}

// sampleNeeds collects every owned dog's needs for the stats window.
func (g *Game) sampleNeeds() telemetry.NeedSamples {
	var s telemetry.NeedSamples
	query := g.dogs.filter.Query()
	for query.Next() {
		_, needs, _, _ := query.Get()
		s.Add(needs.Hunger, needs.Energy, needs.Hygiene, needs.Happiness)
	}
	return s
}
