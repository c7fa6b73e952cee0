package game

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// logWriter is the destination for debug output.
var logWriter io.Writer

// SetLogWriter sets the debug output destination. Nil routes through slog.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted debug message when the game runs with Debug set.
func (g *Game) Logf(format string, args ...any) {
	if !g.debug {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		slog.Debug(msg, "session", g.sessionID)
	}
}

// LogRoster writes one line per dog. Caller must not hold mu.
func (g *Game) LogRoster() {
	v := g.View()
	g.Logf("=== Tick %d | coins %d | state %s ===", v.Ticks, v.Coins, v.State)
	for i, d := range v.Roster {
		mark := " "
		if d.Selected {
			mark = "*"
		}
		var needs strings.Builder
		for k, val := range d.Needs.Values() {
			f := v.NeedFields[k]
			fmt.Fprintf(&needs, " %s "+f.Format, f.ID, val)
			if val <= f.Warn {
				needs.WriteString("!")
			}
		}
		g.Logf("%s%d %-8s lvl %d (%d/%d xp)%s %v",
			mark, i, d.Name, d.Level, d.XP, d.XPToNext, needs.String(), d.Traits)
	}
	g.Logf("")
}
