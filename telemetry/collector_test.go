package telemetry

import "testing"

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(3)

	if c.ShouldFlush(2) {
		t.Error("should not flush before window ends")
	}
	if !c.ShouldFlush(3) {
		t.Error("should flush at window end")
	}

	c.RecordFeed()
	c.RecordFeed()
	c.RecordWash()
	c.RecordPlay()
	c.RecordPet()
	c.RecordAdoption()
	c.RecordLevelUp()
	c.RecordAchievement()
	c.RecordCritical()
	c.RecordCoins(-20)
	c.RecordCoins(55)

	var needs NeedSamples
	needs.Add(80, 70, 60, 75)
	needs.Add(40, 30, 20, 25)

	s := c.Flush(3, 135, needs)
	if s.WindowStartTick != 0 || s.WindowEndTick != 3 {
		t.Errorf("window = [%d,%d], want [0,3]", s.WindowStartTick, s.WindowEndTick)
	}
	if s.Feeds != 2 || s.Washes != 1 || s.Plays != 1 || s.Pets != 1 {
		t.Errorf("action counts = %+v", s)
	}
	if s.Adoptions != 1 || s.LevelUps != 1 || s.Achievements != 1 || s.CriticalTicks != 1 {
		t.Errorf("progress counts = %+v", s)
	}
	if s.CoinsEarned != 55 || s.CoinsSpent != 20 {
		t.Errorf("coins earned/spent = %d/%d, want 55/20", s.CoinsEarned, s.CoinsSpent)
	}
	if s.Coins != 135 || s.Dogs != 2 {
		t.Errorf("coins/dogs = %d/%d, want 135/2", s.Coins, s.Dogs)
	}
	if s.Hunger.Mean != 60 {
		t.Errorf("hunger mean = %v, want 60", s.Hunger.Mean)
	}

	// Counters reset and the window advances.
	if c.ShouldFlush(5) {
		t.Error("window should restart at tick 3")
	}
	next := c.Flush(6, 0, NeedSamples{})
	if next.WindowStartTick != 3 || next.Feeds != 0 || next.CoinsEarned != 0 {
		t.Errorf("second window = %+v", next)
	}
	if c.WindowTicks() != 3 {
		t.Errorf("WindowTicks = %d, want 3", c.WindowTicks())
	}
}

func TestNewCollectorMinimumWindow(t *testing.T) {
	if got := NewCollector(0).WindowTicks(); got != 1 {
		t.Errorf("WindowTicks = %d, want 1", got)
	}
}

func TestCollectorHasPartial(t *testing.T) {
	c := NewCollector(12)
	if c.HasPartial(0) {
		t.Error("empty window reported partial")
	}
	if !c.HasPartial(5) {
		t.Error("window with ticks not reported partial")
	}
	c.Flush(12, 0, NeedSamples{})
	if c.HasPartial(12) {
		t.Error("just-flushed window reported partial")
	}
}
