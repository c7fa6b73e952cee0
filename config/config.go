// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all simulation configuration parameters.
type Config struct {
	Decay        DecayConfig         `yaml:"decay"`
	CatchUp      CatchUpConfig       `yaml:"catch_up"`
	Economy      EconomyConfig       `yaml:"economy"`
	Actions      ActionsConfig       `yaml:"actions"`
	Progression  ProgressionConfig   `yaml:"progression"`
	Roster       RosterConfig        `yaml:"roster"`
	Traits       []TraitConfig       `yaml:"traits"`
	Foods        []FoodConfig        `yaml:"foods"`
	StarterDogs  []DogConfig         `yaml:"starter_dogs"`
	AdoptionPool []DogConfig         `yaml:"adoption_pool"`
	Unlocks      UnlocksConfig       `yaml:"unlocks"`
	Achievements []AchievementConfig `yaml:"achievements"`
	Autosave     AutosaveConfig      `yaml:"autosave"`
	Telemetry    TelemetryConfig     `yaml:"telemetry"`
	Settings     SettingsConfig      `yaml:"settings"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// DecayConfig holds the live need decay parameters.
type DecayConfig struct {
	IntervalSec float64 `yaml:"interval_sec"` // Seconds between decay ticks while playing
	Base        float64 `yaml:"base"`         // Points removed from each need per tick before trait scaling
	Critical    float64 `yaml:"critical"`     // A need at or below this raises the critical signal
}

// CatchUpConfig holds the offline decay approximation applied on restore.
type CatchUpConfig struct {
	StepMinutes   float64 `yaml:"step_minutes"`    // Whole steps of this many minutes count
	PointsPerStep float64 `yaml:"points_per_step"` // Points removed per whole step
	AwayMinutes   float64 `yaml:"away_minutes"`    // Minimum absence for the minutes notice
	AwayHours     float64 `yaml:"away_hours"`      // Minimum absence (in minutes) for the hours notice
}

// EconomyConfig holds the coin economy.
type EconomyConfig struct {
	StartingCoins     int  `yaml:"starting_coins"`
	WashCost          int  `yaml:"wash_cost"`
	PlayReward        int  `yaml:"play_reward"`
	AdoptionCost      int  `yaml:"adoption_cost"`
	AchievementReward int  `yaml:"achievement_reward"`
	TraitRewardBonus  bool `yaml:"trait_reward_bonus"` // Scale play reward by trait play bonus
}

// ActionConfig holds the need deltas and experience for one care action.
type ActionConfig struct {
	Hunger    float64 `yaml:"hunger"`
	Energy    float64 `yaml:"energy"`
	Hygiene   float64 `yaml:"hygiene"`
	Happiness float64 `yaml:"happiness"`
	XP        int     `yaml:"xp"`
}

// ActionsConfig holds per-action effects. Feeding deltas come from the food table.
type ActionsConfig struct {
	Wash   ActionConfig `yaml:"wash"`
	Play   ActionConfig `yaml:"play"`
	Pet    ActionConfig `yaml:"pet"`
	FeedXP int          `yaml:"feed_xp"`
}

// ProgressionConfig holds the leveling curve.
type ProgressionConfig struct {
	InitialThreshold int     `yaml:"initial_threshold"` // XP needed for level 2
	Growth           float64 `yaml:"growth"`            // Threshold multiplier per level (floored)
	LevelBoost       float64 `yaml:"level_boost"`       // Added to every need on level-up
}

// RosterConfig holds roster limits.
type RosterConfig struct {
	MaxDogs int `yaml:"max_dogs"`
}

// TraitConfig defines one trait modifier. A zero multiplier means "no effect".
type TraitConfig struct {
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	HungerDecay    float64 `yaml:"hunger_decay"`
	EnergyDecay    float64 `yaml:"energy_decay"`
	HygieneDecay   float64 `yaml:"hygiene_decay"`
	HappinessDecay float64 `yaml:"happiness_decay"`
	PlayBonus      float64 `yaml:"play_bonus"`
}

// FoodConfig defines a purchasable food item.
type FoodConfig struct {
	Name      string  `yaml:"name"`
	Cost      int     `yaml:"cost"`
	Hunger    float64 `yaml:"hunger"`
	Energy    float64 `yaml:"energy"`
	Happiness float64 `yaml:"happiness"`
	Level     int     `yaml:"level"` // Max roster level required (0 = always available)
}

// DogConfig is a dog template: starter roster, adoption pool or unlock template.
type DogConfig struct {
	Name          string   `yaml:"name"`
	Hunger        float64  `yaml:"hunger"`
	Energy        float64  `yaml:"energy"`
	Hygiene       float64  `yaml:"hygiene"`
	Happiness     float64  `yaml:"happiness"`
	Level         int      `yaml:"level"`
	XP            int      `yaml:"xp"`
	XPToNextLevel int      `yaml:"xp_to_next_level"`
	Traits        []string `yaml:"traits"`
}

// UnlockDogConfig gates a dog behind a roster level.
type UnlockDogConfig struct {
	Name   string   `yaml:"name"`
	Level  int      `yaml:"level"`
	Traits []string `yaml:"traits"`
}

// UnlockToyConfig gates a toy behind a roster level.
type UnlockToyConfig struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Bonus int    `yaml:"bonus"`
}

// UnlocksConfig holds level-gated content.
type UnlocksConfig struct {
	Template DogConfig         `yaml:"template"` // Needs and progression for newly unlocked dogs
	Dogs     []UnlockDogConfig `yaml:"dogs"`
	Toys     []UnlockToyConfig `yaml:"toys"`
}

// AchievementConfig defines one achievement and the rule that unlocks it.
type AchievementConfig struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Rule        string  `yaml:"rule"`
	Threshold   float64 `yaml:"threshold"`
}

// AutosaveConfig holds the periodic save timer.
type AutosaveConfig struct {
	IntervalSec float64 `yaml:"interval_sec"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"` // Decay ticks per stats window
}

// SettingsConfig holds the default player settings record.
type SettingsConfig struct {
	MasterVolume    int    `yaml:"master_volume"`
	SFXEnabled      bool   `yaml:"sfx_enabled"`
	MusicEnabled    bool   `yaml:"music_enabled"`
	GraphicsQuality string `yaml:"graphics_quality"`
	ScreenShake     bool   `yaml:"screen_shake"`
	AutoSave        bool   `yaml:"auto_save"`
	TutorialHints   bool   `yaml:"tutorial_hints"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DecayInterval    time.Duration
	AutosaveInterval time.Duration
	TraitIndex       map[string]int // name -> index into Traits
	AchievementIndex map[string]int // name -> index into Achievements
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file; lists replace wholesale
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived fills zero values with defaults and builds lookup indexes.
func (c *Config) computeDerived() {
	if c.Decay.IntervalSec <= 0 {
		c.Decay.IntervalSec = 5
	}
	if c.CatchUp.StepMinutes <= 0 {
		c.CatchUp.StepMinutes = 5
	}
	if c.Progression.InitialThreshold <= 0 {
		c.Progression.InitialThreshold = 100
	}
	if c.Progression.Growth <= 0 {
		c.Progression.Growth = 1.5
	}
	if c.Autosave.IntervalSec <= 0 {
		c.Autosave.IntervalSec = 60
	}
	if c.Telemetry.WindowTicks <= 0 {
		c.Telemetry.WindowTicks = 12
	}

	// Missing multiplier means the trait does not touch that need
	for i := range c.Traits {
		t := &c.Traits[i]
		if t.HungerDecay == 0 {
			t.HungerDecay = 1
		}
		if t.EnergyDecay == 0 {
			t.EnergyDecay = 1
		}
		if t.HygieneDecay == 0 {
			t.HygieneDecay = 1
		}
		if t.HappinessDecay == 0 {
			t.HappinessDecay = 1
		}
		if t.PlayBonus == 0 {
			t.PlayBonus = 1
		}
	}

	fillTemplate(&c.Unlocks.Template, c.Progression.InitialThreshold)
	for i := range c.StarterDogs {
		fillTemplate(&c.StarterDogs[i], c.Progression.InitialThreshold)
	}
	for i := range c.AdoptionPool {
		fillTemplate(&c.AdoptionPool[i], c.Progression.InitialThreshold)
	}

	c.Derived.DecayInterval = time.Duration(c.Decay.IntervalSec * float64(time.Second))
	c.Derived.AutosaveInterval = time.Duration(c.Autosave.IntervalSec * float64(time.Second))

	c.Derived.TraitIndex = make(map[string]int, len(c.Traits))
	for i, t := range c.Traits {
		c.Derived.TraitIndex[t.Name] = i
	}
	c.Derived.AchievementIndex = make(map[string]int, len(c.Achievements))
	for i, a := range c.Achievements {
		c.Derived.AchievementIndex[a.Name] = i
	}
}

func fillTemplate(d *DogConfig, threshold int) {
	if d.Level < 1 {
		d.Level = 1
	}
	if d.XPToNextLevel <= 0 {
		d.XPToNextLevel = threshold
	}
}

// Validate reports every impossible table entry, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Roster.MaxDogs < 1 {
		bad("roster.max_dogs must be at least 1, got %d", c.Roster.MaxDogs)
	}
	if c.Decay.Base < 0 {
		bad("decay.base must not be negative")
	}
	if c.Economy.StartingCoins < 0 || c.Economy.WashCost < 0 || c.Economy.PlayReward < 0 ||
		c.Economy.AdoptionCost < 0 || c.Economy.AchievementReward < 0 {
		bad("economy values must not be negative")
	}
	if len(c.Foods) == 0 {
		bad("at least one food is required")
	}
	for _, f := range c.Foods {
		if f.Cost < 0 {
			bad("food %q has negative cost", f.Name)
		}
	}
	if len(c.StarterDogs) == 0 {
		bad("at least one starter dog is required")
	}
	if len(c.StarterDogs) > c.Roster.MaxDogs && c.Roster.MaxDogs >= 1 {
		bad("%d starter dogs exceed roster.max_dogs %d", len(c.StarterDogs), c.Roster.MaxDogs)
	}

	seen := make(map[string]bool)
	checkDog := func(where, name string, traits []string) {
		if name == "" {
			bad("%s: dog without a name", where)
			return
		}
		if seen[name] {
			bad("%s: duplicate dog name %q", where, name)
		}
		seen[name] = true
		for _, tn := range traits {
			if _, ok := c.Derived.TraitIndex[tn]; !ok {
				bad("%s: dog %q has unknown trait %q", where, name, tn)
			}
		}
	}
	for _, d := range c.StarterDogs {
		checkDog("starter_dogs", d.Name, d.Traits)
	}
	for _, d := range c.AdoptionPool {
		checkDog("adoption_pool", d.Name, d.Traits)
	}
	for _, d := range c.Unlocks.Dogs {
		checkDog("unlocks.dogs", d.Name, d.Traits)
	}

	for _, a := range c.Achievements {
		if !knownRule(a.Rule) {
			bad("achievement %q has unknown rule %q", a.Name, a.Rule)
		}
	}
	if len(c.Derived.AchievementIndex) != len(c.Achievements) {
		bad("achievement names must be unique")
	}

	return errors.Join(errs...)
}

// Achievement rule identifiers understood by the progression engine.
const (
	RuleFeedCount        = "feed_count"
	RuleWashCoversRoster = "wash_covers_roster"
	RuleAllHappyExact    = "all_happiness_exact"
	RuleCoinsAtLeast     = "coins_at_least"
	RulePlayCount        = "play_count"
)

func knownRule(r string) bool {
	switch r {
	case RuleFeedCount, RuleWashCoversRoster, RuleAllHappyExact, RuleCoinsAtLeast, RulePlayCount:
		return true
	}
	return false
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
