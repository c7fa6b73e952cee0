package game

import (
	"github.com/pthm-cable/kennel/config"
	"github.com/pthm-cable/kennel/schedule"
)

// Options holds configuration for game initialization.
type Options struct {
	Config    *config.Config     // nil uses config.Cfg()
	Scheduler schedule.Scheduler // nil uses the wall clock
	Store     SlotStore          // nil disables slot persistence
	Listeners []Listener
	OutputDir string // telemetry CSV directory, empty disables output
	Debug     bool   // verbose Logf output
}

// DefaultOptions returns options for a headless session on the wall clock.
func DefaultOptions() Options {
	return Options{Scheduler: schedule.Real{}}
}
