package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pthm-cable/kennel/config"
	"github.com/pthm-cable/kennel/game"
	"github.com/pthm-cable/kennel/schedule"
	"github.com/pthm-cable/kennel/storage/backend"
	"github.com/pthm-cable/kennel/telemetry"
)

func main() {
	// Environment supplies defaults, flags override
	envCfg, err := config.ParseEnv()
	if err != nil {
		slog.Error("failed to read environment", "error", err)
		os.Exit(1)
	}

	// CLI flags
	configPath := flag.String("config", envCfg.ConfigPath, "Path to config.yaml (empty = use defaults)")
	storeKind := flag.String("store", envCfg.StoreKind, "Slot store: memory, dir or sqlite")
	storePath := flag.String("store-path", envCfg.StorePath, "Directory (dir) or database file (sqlite) for save slots")
	outputDir := flag.String("output-dir", envCfg.OutputDir, "Output directory for CSV logs and config snapshot")
	logLevel := flag.String("log-level", envCfg.LogLevel, "Log level: debug, info, warn or error")
	slot := flag.Int("slot", 0, "Load this save slot (1-3) before playing (0 = new game)")
	ticks := flag.Int("ticks", 0, "Run N decay ticks on a simulated clock, then exit (0 = real time)")
	duration := flag.Duration("duration", 0, "Stop a real-time session after this long (0 = until interrupted)")
	script := flag.String("script", "", "Comma-separated actions to perform, e.g. adopt,select:1,feed:0,wash")
	saveOnExit := flag.Bool("save", true, "Save to the current slot on exit when a store is configured")
	debug := flag.Bool("debug", false, "Log every simulation step")
	dumpConfig := flag.String("dump-config", "", "Write the effective config to this path and exit")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *dumpConfig != "" {
		if err := cfg.WriteYAML(*dumpConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		return
	}

	store, err := backend.Open(*storeKind, *storePath)
	if err != nil {
		slog.Error("failed to open slot store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sched schedule.Scheduler = schedule.Real{}
	var clock *schedule.Manual
	if *ticks > 0 {
		clock = schedule.NewManual(time.Now())
		sched = clock
	}

	g, err := game.New(game.Options{
		Config:    cfg,
		Scheduler: sched,
		Store:     store,
		Listeners: []game.Listener{game.ListenerFunc(logEvent)},
		OutputDir: *outputDir,
		Debug:     *debug,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting session",
		"session", g.SessionID(),
		"store", *storeKind,
		"slot", *slot,
		"ticks", *ticks,
	)

	if err := g.LoadSettings(ctx); err != nil {
		slog.Warn("failed to load settings", "error", err)
	}

	if err := start(ctx, g, *slot); err != nil {
		slog.Error("failed to start session", "error", err)
		os.Exit(1)
	}

	if err := runScript(ctx, g, *script); err != nil {
		slog.Error("script failed", "error", err)
		os.Exit(1)
	}

	if clock != nil {
		fired := clock.Advance(time.Duration(*ticks) * cfg.Derived.DecayInterval)
		slog.Info("simulated run complete", "timers_fired", fired, "ticks", g.Ticks())
	} else if err := runRealtime(ctx, g, *duration, cfg.Derived.AutosaveInterval); err != nil {
		slog.Error("session failed", "error", err)
	}

	g.LogRoster()

	if *saveOnExit {
		if _, err := g.SaveCurrent(context.Background()); err != nil {
			slog.Error("failed to save on exit", "error", err)
		}
		if err := g.SaveSettings(context.Background()); err != nil {
			slog.Error("failed to save settings", "error", err)
		}
	}
}

// start loads the requested slot and enters the playing state. A missing
// slot falls back to a new game.
func start(ctx context.Context, g *game.Game, slot int) error {
	if slot == 0 {
		g.Start()
		return nil
	}
	out, report, err := g.LoadSlot(ctx, slot)
	if err != nil {
		return err
	}
	if !out.OK() {
		slog.Warn("starting new game", "slot", slot, "reason", out.Reason.String())
		g.Start()
		return nil
	}
	slog.Info("slot loaded",
		"slot", slot,
		"elapsed", report.Elapsed.Round(time.Second).String(),
		"decay_points", report.DecayPoints,
		"away", report.Away.String(),
	)
	return nil
}

func runScript(ctx context.Context, g *game.Game, script string) error {
	cmds, err := game.ParseScript(script)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		if cmd.Save {
			if _, err := g.SaveCurrent(ctx); err != nil {
				return err
			}
			continue
		}
		out := g.Do(cmd.Action, cmd.Arg)
		slog.Info("action",
			"command", cmd.String(),
			"ok", out.OK(),
			"reason", out.Reason.String(),
			"coins_delta", out.CoinsDelta,
			"achievements", out.Achievements,
			"unlocked", out.Unlocked,
		)
	}
	return nil
}

// runRealtime plays on the wall clock until ctx is canceled or limit passes,
// logging a status line every interval.
func runRealtime(ctx context.Context, g *game.Game, limit, interval time.Duration) error {
	if limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				v := g.View()
				slog.Info("status", "coins", v.Coins, "dogs", len(v.Roster), "ticks", v.Ticks)
			}
		}
	})
	grp.Go(func() error {
		<-gctx.Done()
		g.Pause()
		if err := context.Cause(gctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	})
	return grp.Wait()
}

func logEvent(e telemetry.Event) {
	if e.Type == telemetry.EventRefresh {
		slog.Debug("event", "event", e)
		return
	}
	slog.Info("event", "event", e)
}
