package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/storage"
	"github.com/pthm-cable/kennel/systems"
	"github.com/pthm-cable/kennel/telemetry"
)

// errNoStore is returned by slot operations when no SlotStore was configured.
var errNoStore = errors.New("no slot store configured")

// RestoreReport describes the catch-up applied by a restore.
type RestoreReport struct {
	Elapsed     time.Duration
	DecayPoints float64
	Critical    bool
	Away        systems.Away
}

// Capture returns a snapshot of the full live state stamped with the current time.
func (g *Game) Capture() *save.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.captureLocked()
}

func (g *Game) captureLocked() *save.Snapshot {
	coins := g.coins
	counters := g.counters
	snap := &save.Snapshot{
		Version:      save.SnapshotVersion,
		GameVersion:  save.GameVersion,
		SessionID:    g.sessionID,
		Coins:        &coins,
		Counters:     &counters,
		Roster:       g.dogs.records(),
		AdoptionPool: append([]save.DogRecord{}, g.pool...),
		Unlocks:      g.unlocks.snapshot(),
	}
	snap.SetTime(g.sched.Now())

	for i, def := range g.cfg.Achievements {
		snap.Achievements = append(snap.Achievements, save.AchievementRecord{
			Name:        def.Name,
			Description: def.Description,
			Unlocked:    g.achieved[i],
		})
	}
	if g.selected >= 0 {
		sel := g.selected
		snap.SelectedIndex = &sel
	}

	prog := &save.Progression{}
	for _, rec := range snap.Roster {
		prog.TotalXP += rec.XP
		if rec.Level > prog.Level {
			prog.Level = rec.Level
		}
	}
	snap.Progression = prog

	if data, err := save.EncodeSettings(g.settings); err == nil {
		snap.Settings = data
	}
	return snap
}

// Restore replaces the live state with snap, or with the default starting
// state when snap is nil. Missing fields fall back individually to their
// defaults. Time elapsed since the snapshot is replayed as flat catch-up decay.
func (g *Game) Restore(snap *save.Snapshot) RestoreReport {
	g.mu.Lock()
	defer g.unlockAndDispatch()
	return g.restoreLocked(snap)
}

func (g *Game) restoreLocked(snap *save.Snapshot) RestoreReport {
	cfg := g.cfg
	threshold := cfg.Progression.InitialThreshold

	if snap == nil {
		g.resetLocked()
		g.refresh()
		return RestoreReport{}
	}

	g.dogs.reset()
	g.selected = -1
	g.achieved = make([]bool, len(cfg.Achievements))

	g.coins = cfg.Economy.StartingCoins
	if snap.Coins != nil {
		g.coins = max(*snap.Coins, 0)
	}

	g.counters = save.Counters{}
	if snap.Counters != nil {
		g.counters = save.Counters{
			Feed: max(snap.Counters.Feed, 0),
			Wash: max(snap.Counters.Wash, 0),
			Play: max(snap.Counters.Play, 0),
		}
	}

	roster := snap.Roster
	if roster == nil {
		roster = recordsFromConfig(cfg.StarterDogs)
	}
	owned := make(map[string]bool)
	for _, rec := range roster {
		if g.dogs.len() >= cfg.Roster.MaxDogs {
			slog.Warn("roster over capacity, dropping dog", "dog", rec.Name)
			continue
		}
		if owned[rec.Name] {
			slog.Warn("duplicate dog in roster, dropping", "dog", rec.Name)
			continue
		}
		owned[rec.Name] = true
		g.dogs.addRecord(normalizeRecord(rec, threshold))
	}

	pool := snap.AdoptionPool
	if pool == nil {
		pool = recordsFromConfig(cfg.AdoptionPool)
	}
	g.pool = g.pool[:0:0]
	for _, rec := range pool {
		if owned[rec.Name] {
			continue
		}
		owned[rec.Name] = true
		g.pool = append(g.pool, normalizeRecord(rec, threshold))
	}

	for _, rec := range snap.Achievements {
		if i, ok := cfg.Derived.AchievementIndex[rec.Name]; ok && rec.Unlocked {
			g.achieved[i] = true
		}
	}

	g.unlocks = unlocksFrom(snap.Unlocks)

	if snap.SelectedIndex != nil && *snap.SelectedIndex >= 0 && *snap.SelectedIndex < g.dogs.len() {
		g.selected = *snap.SelectedIndex
	}

	if len(snap.Settings) > 0 {
		s, err := save.DecodeSettings(snap.Settings, g.settings)
		if err != nil {
			slog.Warn("ignoring snapshot settings", "error", err)
		}
		g.settings = s
		g.syncTasks()
	}

	report := g.catchUp(snap.Time())
	g.refresh()
	return report
}

// resetLocked installs the default starting state without emitting events.
// Caller must hold mu.
func (g *Game) resetLocked() {
	cfg := g.cfg
	g.dogs.reset()
	g.selected = -1
	g.achieved = make([]bool, len(cfg.Achievements))
	for _, rec := range recordsFromConfig(cfg.StarterDogs) {
		g.dogs.addRecord(normalizeRecord(rec, cfg.Progression.InitialThreshold))
	}
	g.pool = recordsFromConfig(cfg.AdoptionPool)
	g.coins = cfg.Economy.StartingCoins
	g.counters = save.Counters{}
	g.unlocks = unlockRecord{}
}

// catchUp applies flat decay for the time since saved. Traits do not apply.
// Caller must hold mu.
func (g *Game) catchUp(saved time.Time) RestoreReport {
	var report RestoreReport
	if saved.IsZero() {
		return report
	}
	cu := g.cfg.CatchUp
	report.Elapsed = g.sched.Now().Sub(saved)
	report.DecayPoints = systems.CatchUpPoints(report.Elapsed, cu)
	report.Away = systems.ClassifyAway(report.Elapsed, cu)

	if report.DecayPoints > 0 {
		for i := 0; i < g.dogs.len(); i++ {
			systems.ApplyCatchUp(g.dogs.dog(i).needs, report.DecayPoints)
		}
		if systems.AnyCritical(g.dogs.needs(), g.cfg.Decay.Critical) {
			report.Critical = true
			i := g.firstCritical()
			name := g.dogs.dog(i).id.Name
			e := telemetry.NewNeedCriticalEvent(i, name)
			e.Text = g.printer.Sprintf(msgCritical, name)
			g.emit(e)
		}
	}

	minutes := int(report.Elapsed.Minutes())
	switch report.Away {
	case systems.AwayHours:
		hours := int(report.Elapsed.Hours())
		g.emit(telemetry.NewAwayEvent(minutes, int(report.DecayPoints), g.printer.Sprintf(msgAwayHours, hours)))
	case systems.AwayMinutes:
		g.emit(telemetry.NewAwayEvent(minutes, int(report.DecayPoints), g.printer.Sprintf(msgAwayMinutes, minutes)))
	}

	g.Logf("restored after %s: %.0f decay points, away=%s", report.Elapsed.Round(time.Second), report.DecayPoints, report.Away)
	return report
}

// SlotInfo summarizes one save slot for a load screen.
type SlotInfo struct {
	ID        save.SlotID
	Number    int
	Empty     bool
	Timestamp time.Time
	Coins     int
	Dogs      int
	Level     int
}

// ListSlots reads every manual save slot. Unreadable slots are reported empty.
func (g *Game) ListSlots(ctx context.Context) ([]SlotInfo, error) {
	if g.slots == nil {
		return nil, errNoStore
	}
	infos := make([]SlotInfo, 0, save.NumSaveSlots)
	for _, id := range save.SaveSlots() {
		info := SlotInfo{ID: id, Number: id.Number(), Empty: true}
		snap, err := g.readSnapshot(ctx, id)
		if err != nil {
			return nil, err
		}
		if snap != nil {
			info.Empty = false
			info.Timestamp = snap.Time()
			info.Dogs = len(snap.Roster)
			if snap.Coins != nil {
				info.Coins = *snap.Coins
			}
			if snap.Progression != nil {
				info.Level = snap.Progression.Level
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// readSnapshot reads and decodes a slot. An absent or corrupt slot yields
// (nil, nil); only store failures are errors.
func (g *Game) readSnapshot(ctx context.Context, id save.SlotID) (*save.Snapshot, error) {
	data, err := g.slots.ReadSlot(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot %s: %w", id, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	snap, err := save.Decode(data)
	if err != nil {
		slog.Warn("treating unreadable slot as empty", "slot", id, "error", err)
		return nil, nil
	}
	return snap, nil
}

// SaveSlot writes the current state to manual slot n (1-based) and makes it
// the current slot.
func (g *Game) SaveSlot(ctx context.Context, n int) (Outcome, error) {
	id, err := save.SaveSlot(n)
	if err != nil {
		return fail(systems.ActionNone, ReasonInvalidSlot), nil
	}
	if g.slots == nil {
		return Outcome{}, errNoStore
	}
	return g.writeSlot(ctx, id)
}

// SaveCurrent writes to the current slot. With no current slot it picks the
// first empty slot, or slot 1 when all are taken.
func (g *Game) SaveCurrent(ctx context.Context) (Outcome, error) {
	if g.slots == nil {
		return Outcome{}, errNoStore
	}
	g.mu.Lock()
	id := g.currentSlot
	g.mu.Unlock()

	if id == "" {
		id = save.SaveSlots()[0]
		for _, candidate := range save.SaveSlots() {
			snap, err := g.readSnapshot(ctx, candidate)
			if err != nil {
				return Outcome{}, err
			}
			if snap == nil {
				id = candidate
				break
			}
		}
	}
	return g.writeSlot(ctx, id)
}

func (g *Game) writeSlot(ctx context.Context, id save.SlotID) (Outcome, error) {
	g.mu.Lock()
	data, err := save.Encode(g.captureLocked())
	g.mu.Unlock()
	if err != nil {
		return Outcome{}, err
	}

	if err := g.slots.WriteSlot(ctx, id, data); err != nil {
		return Outcome{}, fmt.Errorf("write slot %s: %w", id, err)
	}

	g.mu.Lock()
	g.currentSlot = id
	g.notice(msgSaved, id.Number())
	g.unlockAndDispatch()

	slog.Info("game saved", "slot", id, "bytes", len(data))
	return Outcome{}, nil
}

// LoadSlot restores manual slot n and starts playing. An empty or
// unreadable slot leaves the session unchanged and reports ReasonNotFound.
func (g *Game) LoadSlot(ctx context.Context, n int) (Outcome, RestoreReport, error) {
	id, err := save.SaveSlot(n)
	if err != nil {
		return fail(systems.ActionNone, ReasonInvalidSlot), RestoreReport{}, nil
	}
	if g.slots == nil {
		return Outcome{}, RestoreReport{}, errNoStore
	}

	snap, err := g.readSnapshot(ctx, id)
	if err != nil {
		return Outcome{}, RestoreReport{}, err
	}

	g.mu.Lock()
	defer g.unlockAndDispatch()

	if snap == nil {
		g.notice(msgNoSave)
		return fail(systems.ActionNone, ReasonNotFound), RestoreReport{}, nil
	}

	g.setStateLocked(StateLoading)
	report := g.restoreLocked(snap)
	g.currentSlot = id
	g.setStateLocked(StatePlaying)

	slog.Info("game loaded", "slot", id, "dogs", g.dogs.len(), "elapsed", report.Elapsed)
	return Outcome{}, report, nil
}

// CurrentSlot returns the slot the session was last loaded from or saved
// to, or "" for a new game.
func (g *Game) CurrentSlot() save.SlotID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentSlot
}

// Settings returns the player's settings record.
func (g *Game) Settings() save.Settings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settings
}

// SetSettings replaces the settings record. Toggling auto-save while playing
// starts or stops the autosave timer.
func (g *Game) SetSettings(s save.Settings) {
	s.Normalize()
	g.mu.Lock()
	defer g.unlockAndDispatch()
	g.settings = s
	g.syncTasks()
	g.refresh()
}

// SaveSettings writes the settings record to its own slot.
func (g *Game) SaveSettings(ctx context.Context) error {
	if g.slots == nil {
		return errNoStore
	}
	data, err := save.EncodeSettings(g.Settings())
	if err != nil {
		return err
	}
	if err := g.slots.WriteSlot(ctx, save.SettingsSlot, data); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// LoadSettings reads the settings record, keeping defaults for missing
// fields. An absent or unreadable record leaves settings unchanged.
func (g *Game) LoadSettings(ctx context.Context) error {
	if g.slots == nil {
		return errNoStore
	}
	data, err := g.slots.ReadSlot(ctx, save.SettingsSlot)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}
	s, err := save.DecodeSettings(data, g.Settings())
	if err != nil {
		slog.Warn("ignoring unreadable settings", "error", err)
		return nil
	}
	g.SetSettings(s)
	return nil
}
