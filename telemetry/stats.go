package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// NeedStats summarizes one need across the roster.
type NeedStats struct {
	Mean float64 `csv:"mean"`
	Std  float64 `csv:"std"`
	P10  float64 `csv:"p10"`
	P50  float64 `csv:"p50"`
	P90  float64 `csv:"p90"`
}

// SessionStats holds aggregated statistics for a window of decay ticks.
type SessionStats struct {
	SessionID       string `csv:"session_id"`
	WindowStartTick int    `csv:"-"`
	WindowEndTick   int    `csv:"window_end"`

	// State at window end
	Coins int `csv:"coins"`
	Dogs  int `csv:"dogs"`

	// Activity during window
	Feeds         int `csv:"feeds"`
	Washes        int `csv:"washes"`
	Plays         int `csv:"plays"`
	Pets          int `csv:"pets"`
	Adoptions     int `csv:"adoptions"`
	LevelUps      int `csv:"level_ups"`
	Achievements  int `csv:"achievements"`
	CriticalTicks int `csv:"critical_ticks"`
	CoinsEarned   int `csv:"coins_earned"`
	CoinsSpent    int `csv:"coins_spent"`

	// Need distribution (sampled at window end)
	Hunger    NeedStats `csv:"hunger"`
	Energy    NeedStats `csv:"energy"`
	Hygiene   NeedStats `csv:"hygiene"`
	Happiness NeedStats `csv:"happiness"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeNeedStats calculates mean, population std, and percentiles.
func ComputeNeedStats(values []float64) NeedStats {
	if len(values) == 0 {
		return NeedStats{}
	}
	mean, std := stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return NeedStats{
		Mean: mean,
		Std:  std,
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
	}
}

func (n NeedStats) group(key string) slog.Attr {
	return slog.Group(key,
		slog.Float64("mean", n.Mean),
		slog.Float64("std", n.Std),
		slog.Float64("p10", n.P10),
		slog.Float64("p50", n.P50),
		slog.Float64("p90", n.P90),
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (s SessionStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("session_id", s.SessionID),
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("coins", s.Coins),
		slog.Int("dogs", s.Dogs),
		slog.Int("feeds", s.Feeds),
		slog.Int("washes", s.Washes),
		slog.Int("plays", s.Plays),
		slog.Int("pets", s.Pets),
		slog.Int("adoptions", s.Adoptions),
		slog.Int("level_ups", s.LevelUps),
		slog.Int("achievements", s.Achievements),
		slog.Int("critical_ticks", s.CriticalTicks),
		slog.Int("coins_earned", s.CoinsEarned),
		slog.Int("coins_spent", s.CoinsSpent),
		s.Hunger.group("hunger"),
		s.Energy.group("energy"),
		s.Hygiene.group("hygiene"),
		s.Happiness.group("happiness"),
	)
}
