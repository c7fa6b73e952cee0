package telemetry

// Collector accumulates activity within windows of decay ticks and produces SessionStats.
type Collector struct {
	windowTicks int

	// Current window tracking
	windowStartTick int

	feeds         int
	washes        int
	plays         int
	pets          int
	adoptions     int
	levelUps      int
	achievements  int
	criticalTicks int
	coinsEarned   int
	coinsSpent    int
}

// NewCollector creates a collector that flushes every windowTicks decay ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordFeed records a feeding.
func (c *Collector) RecordFeed() { c.feeds++ }

// RecordWash records a wash.
func (c *Collector) RecordWash() { c.washes++ }

// RecordPlay records a play session.
func (c *Collector) RecordPlay() { c.plays++ }

// RecordPet records petting.
func (c *Collector) RecordPet() { c.pets++ }

// RecordAdoption records an adoption.
func (c *Collector) RecordAdoption() { c.adoptions++ }

// RecordLevelUp records one dog gaining a level.
func (c *Collector) RecordLevelUp() { c.levelUps++ }

// RecordAchievement records an achievement unlock.
func (c *Collector) RecordAchievement() { c.achievements++ }

// RecordCritical records a decay tick that raised the critical signal.
func (c *Collector) RecordCritical() { c.criticalTicks++ }

// RecordCoins records a change in the balance.
func (c *Collector) RecordCoins(delta int) {
	if delta > 0 {
		c.coinsEarned += delta
	} else {
		c.coinsSpent -= delta
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// HasPartial reports whether ticks have passed since the window started.
func (c *Collector) HasPartial(currentTick int) bool {
	return currentTick > c.windowStartTick
}

// NeedSamples holds one value per dog for each need.
type NeedSamples struct {
	Hunger    []float64
	Energy    []float64
	Hygiene   []float64
	Happiness []float64
}

// Add appends one dog's needs.
func (s *NeedSamples) Add(hunger, energy, hygiene, happiness float64) {
	s.Hunger = append(s.Hunger, hunger)
	s.Energy = append(s.Energy, energy)
	s.Hygiene = append(s.Hygiene, hygiene)
	s.Happiness = append(s.Happiness, happiness)
}

// Flush produces a SessionStats and resets counters for the next window.
func (c *Collector) Flush(currentTick, coins int, needs NeedSamples) SessionStats {
	stats := SessionStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Coins: coins,
		Dogs:  len(needs.Hunger),

		Feeds:         c.feeds,
		Washes:        c.washes,
		Plays:         c.plays,
		Pets:          c.pets,
		Adoptions:     c.adoptions,
		LevelUps:      c.levelUps,
		Achievements:  c.achievements,
		CriticalTicks: c.criticalTicks,
		CoinsEarned:   c.coinsEarned,
		CoinsSpent:    c.coinsSpent,

		Hunger:    ComputeNeedStats(needs.Hunger),
		Energy:    ComputeNeedStats(needs.Energy),
		Hygiene:   ComputeNeedStats(needs.Hygiene),
		Happiness: ComputeNeedStats(needs.Happiness),
	}

	// Reset for next window
	*c = Collector{windowTicks: c.windowTicks, windowStartTick: currentTick}

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int {
	return c.windowTicks
}
