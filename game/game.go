// Package game is the simulation controller: it owns the dog roster, the
// coin economy and progression, runs decay on a scheduler, and reconciles
// save snapshots.
package game

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/message"

	"github.com/pthm-cable/kennel/config"
	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/schedule"
	"github.com/pthm-cable/kennel/systems"
	"github.com/pthm-cable/kennel/telemetry"
	"github.com/pthm-cable/kennel/traits"
)

// Game holds the complete simulation state.
//
// All state is guarded by mu. Public methods take the lock, mutate, queue
// events, release the lock and only then deliver the events to listeners.
type Game struct {
	mu sync.Mutex

	cfg       *config.Config
	sched     schedule.Scheduler
	slots     SlotStore
	listeners []Listener
	traits    *traits.Table
	curve     systems.Curve
	printer   *message.Printer
	debug     bool

	// Simulation state
	dogs     *dogStore
	pool     []save.DogRecord
	coins    int
	counters save.Counters
	achieved []bool
	unlocks  unlockRecord
	selected int // roster index, -1 when every dog is targeted
	settings save.Settings
	state    State

	sessionID   string
	currentSlot save.SlotID
	tick        int

	decayTask    *schedule.Task
	autosaveTask *schedule.Task

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	seq     uint64
	pending []telemetry.Event
}

// New creates a game with a fresh default session in StateMenu.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = schedule.Real{}
	}

	tbl, err := traits.NewTable(cfg.Traits)
	if err != nil {
		return nil, fmt.Errorf("building trait table: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		sched:     sched,
		slots:     opts.Store,
		listeners: append([]Listener(nil), opts.Listeners...),
		traits:    tbl,
		curve:     systems.CurveFrom(cfg.Progression),
		printer:   newPrinter(),
		debug:     opts.Debug,
		dogs:      newDogStore(),
		selected:  -1,
		settings:  defaultSettings(cfg),
		state:     StateMenu,
		sessionID: uuid.NewString(),
		collector: telemetry.NewCollector(cfg.Telemetry.WindowTicks),
		output:    output,
	}

	g.decayTask = schedule.NewTask(sched, schedule.TaskOptions{
		Name:  "decay",
		Every: cfg.Derived.DecayInterval,
		Lock:  &g.mu,
		Run:   g.decayTick,
		After: g.flushEvents,
	})
	g.autosaveTask = schedule.NewTask(sched, schedule.TaskOptions{
		Name:  "autosave",
		Every: cfg.Derived.AutosaveInterval,
		Lock:  &g.mu,
		Run:   func() { g.Logf("autosave due") },
		After: g.autosave,
	})

	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	g.mu.Lock()
	g.resetLocked()
	g.mu.Unlock()

	slog.Debug("game created", "session", g.sessionID, "dogs", g.dogs.len())
	return g, nil
}

func defaultSettings(cfg *config.Config) save.Settings {
	s := save.Settings{
		MasterVolume:    cfg.Settings.MasterVolume,
		SFXEnabled:      cfg.Settings.SFXEnabled,
		MusicEnabled:    cfg.Settings.MusicEnabled,
		GraphicsQuality: cfg.Settings.GraphicsQuality,
		ScreenShake:     cfg.Settings.ScreenShake,
		AutoSave:        cfg.Settings.AutoSave,
		TutorialHints:   cfg.Settings.TutorialHints,
	}
	s.Normalize()
	return s
}

// SessionID returns the id stamped on this process's snapshots and telemetry.
func (g *Game) SessionID() string {
	return g.sessionID
}

// AddListener registers a listener for subsequent events.
func (g *Game) AddListener(l Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, l)
}

// Close stops all timers and closes telemetry output.
func (g *Game) Close() error {
	g.mu.Lock()
	g.decayTask.Stop()
	g.autosaveTask.Stop()
	g.flushTelemetryLocked(true)
	g.mu.Unlock()
	g.flushEvents()
	return g.output.Close()
}

// emit queues an event for delivery once the lock is released.
// Caller must hold mu.
func (g *Game) emit(e telemetry.Event) {
	g.seq++
	e.Seq = g.seq
	e.Time = g.sched.Now()
	if err := g.output.WriteEvent(g.sessionID, e); err != nil {
		slog.Error("failed to write event", "error", err)
	}
	g.pending = append(g.pending, e)
}

// notice queues a player notice. Caller must hold mu.
func (g *Game) notice(key message.Reference, args ...any) {
	g.emit(telemetry.NewNoticeEvent(g.printer.Sprintf(key, args...)))
}

// takeEvents removes the queued events. Caller must hold mu.
func (g *Game) takeEvents() []telemetry.Event {
	events := g.pending
	g.pending = nil
	return events
}

// unlockAndDispatch releases mu and delivers everything queued under it.
func (g *Game) unlockAndDispatch() {
	events := g.takeEvents()
	listeners := g.listeners
	g.mu.Unlock()
	dispatch(listeners, events)
}

// flushEvents delivers queued events. Caller must not hold mu.
func (g *Game) flushEvents() {
	g.mu.Lock()
	g.unlockAndDispatch()
}

func dispatch(listeners []Listener, events []telemetry.Event) {
	for _, e := range events {
		for _, l := range listeners {
			l.HandleEvent(e)
		}
	}
}
