// Package telemetry provides simulation events, session statistics, and CSV output.
package telemetry

import (
	"log/slog"
	"time"
)

// EventType identifies telemetry events.
type EventType uint8

const (
	EventRefresh EventType = iota
	EventNeedCritical
	EventLevelUp
	EventAchievementUnlocked
	EventDogAdopted
	EventUnlockAvailable
	EventAway
	EventNotice
)

var eventNames = [...]string{
	EventRefresh:             "refresh",
	EventNeedCritical:        "need_critical",
	EventLevelUp:             "level_up",
	EventAchievementUnlocked: "achievement_unlocked",
	EventDogAdopted:          "dog_adopted",
	EventUnlockAvailable:     "unlock_available",
	EventAway:                "away",
	EventNotice:              "notice",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Unlock categories carried in Event.Kind.
const (
	KindDog  = "dog"
	KindToy  = "toy"
	KindFood = "food"
)

// Event represents a single simulation event.
// Seq and Time are stamped by the emitter.
type Event struct {
	Type EventType
	Seq  uint64
	Time time.Time

	// Optional fields depending on event type
	Dog    int    // roster index, -1 when not about one dog
	Name   string // dog, achievement or unlock name
	Kind   string // unlock category
	Level  int
	Amount int // coins, minutes or decay points
	Text   string
}

// NewRefreshEvent signals that observable state changed.
func NewRefreshEvent() Event {
	return Event{Type: EventRefresh, Dog: -1}
}

// NewNeedCriticalEvent reports the first dog found with a critical need.
func NewNeedCriticalEvent(dog int, name string) Event {
	return Event{Type: EventNeedCritical, Dog: dog, Name: name}
}

// NewLevelUpEvent creates a level-up event.
func NewLevelUpEvent(dog int, name string, level int) Event {
	return Event{Type: EventLevelUp, Dog: dog, Name: name, Level: level}
}

// NewAchievementEvent creates an achievement event carrying the coin reward.
func NewAchievementEvent(name string, reward int) Event {
	return Event{Type: EventAchievementUnlocked, Dog: -1, Name: name, Amount: reward}
}

// NewDogAdoptedEvent creates an adoption event carrying the cost paid.
func NewDogAdoptedEvent(dog int, name string, cost int) Event {
	return Event{Type: EventDogAdopted, Dog: dog, Name: name, Amount: cost}
}

// NewUnlockEvent announces newly available content.
func NewUnlockEvent(kind, name string, level int) Event {
	return Event{Type: EventUnlockAvailable, Dog: -1, Kind: kind, Name: name, Level: level}
}

// NewAwayEvent reports catch-up decay applied for time spent away.
func NewAwayEvent(minutes, points int, text string) Event {
	return Event{Type: EventAway, Dog: -1, Amount: points, Level: minutes, Text: text}
}

// NewNoticeEvent carries a free-form player notice.
func NewNoticeEvent(text string) Event {
	return Event{Type: EventNotice, Dog: -1, Text: text}
}

// EventCSV is the events.csv row form of an Event.
type EventCSV struct {
	Session string `csv:"session_id"`
	Seq     uint64 `csv:"seq"`
	TimeMS  int64  `csv:"time_ms"`
	Type    string `csv:"type"`
	Dog     int    `csv:"dog"`
	Name    string `csv:"name"`
	Kind    string `csv:"kind"`
	Level   int    `csv:"level"`
	Amount  int    `csv:"amount"`
	Text    string `csv:"text"`
}

// ToCSV converts an event to its CSV row.
func (e Event) ToCSV(session string) EventCSV {
	var ms int64
	if !e.Time.IsZero() {
		ms = e.Time.UnixMilli()
	}
	return EventCSV{
		Session: session,
		Seq:     e.Seq,
		TimeMS:  ms,
		Type:    e.Type.String(),
		Dog:     e.Dog,
		Name:    e.Name,
		Kind:    e.Kind,
		Level:   e.Level,
		Amount:  e.Amount,
		Text:    e.Text,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.Type.String()),
		slog.Uint64("seq", e.Seq),
	}
	if e.Dog >= 0 {
		attrs = append(attrs, slog.Int("dog", e.Dog))
	}
	if e.Name != "" {
		attrs = append(attrs, slog.String("name", e.Name))
	}
	if e.Kind != "" {
		attrs = append(attrs, slog.String("kind", e.Kind))
	}
	if e.Level != 0 {
		attrs = append(attrs, slog.Int("level", e.Level))
	}
	if e.Amount != 0 {
		attrs = append(attrs, slog.Int("amount", e.Amount))
	}
	if e.Text != "" {
		attrs = append(attrs, slog.String("text", e.Text))
	}
	return slog.GroupValue(attrs...)
}
