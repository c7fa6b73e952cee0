// Package save defines the persisted form of a simulation session.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// GameVersion tags snapshots with the rules revision that wrote them.
const GameVersion = "1.0.0"

// ErrUnsupportedVersion is returned for snapshots written by a newer format.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// Snapshot holds the complete simulation state between sessions.
//
// Pointer and slice fields distinguish "absent" (nil) from zero so that
// restore can fall back per field. Roster and AdoptionPool are written even
// when empty: an empty list is a real state, a missing one is not.
type Snapshot struct {
	Version     int    `json:"version"`
	GameVersion string `json:"game_version,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
	Timestamp   int64  `json:"timestamp"` // unix milliseconds, 0 = unknown

	Coins         *int                `json:"coins,omitempty"`
	Counters      *Counters           `json:"counters,omitempty"`
	Roster        []DogRecord         `json:"roster"`
	AdoptionPool  []DogRecord         `json:"adoption_pool"`
	Achievements  []AchievementRecord `json:"achievements,omitempty"`
	SelectedIndex *int                `json:"selected_index"`
	Unlocks       *Unlocks            `json:"unlocks,omitempty"`
	Progression   *Progression        `json:"progression,omitempty"`
	Settings      json.RawMessage     `json:"settings,omitempty"`
}

// DogRecord is one dog, owned or adoptable.
type DogRecord struct {
	Name          string   `json:"name"`
	Hunger        float64  `json:"hunger"`
	Energy        float64  `json:"energy"`
	Hygiene       float64  `json:"hygiene"`
	Happiness     float64  `json:"happiness"`
	Level         int      `json:"level"`
	XP            int      `json:"xp"`
	XPToNextLevel int      `json:"xp_to_next_level"`
	Traits        []string `json:"traits"`
}

// Counters holds per-session action counts read by achievements.
type Counters struct {
	Feed int `json:"feed"`
	Wash int `json:"wash"`
	Play int `json:"play"`
}

// AchievementRecord is one achievement's persisted state.
type AchievementRecord struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Unlocked    bool   `json:"unlocked"`
}

// Unlocks lists gated content that has become available.
type Unlocks struct {
	Dogs  []string `json:"dogs"`
	Toys  []string `json:"toys"`
	Foods []string `json:"foods"`
}

// Progression is a roster-wide summary kept for slot listings.
type Progression struct {
	TotalXP int `json:"total_xp"`
	Level   int `json:"level"`
}

// Time returns the snapshot timestamp, or the zero time if unknown.
func (s *Snapshot) Time() time.Time {
	if s.Timestamp == 0 {
		return time.Time{}
	}
	return time.UnixMilli(s.Timestamp)
}

// SetTime stamps the snapshot.
func (s *Snapshot) SetTime(t time.Time) {
	s.Timestamp = t.UnixMilli()
}

// Encode serializes a snapshot.
func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot. Version 0 data is accepted, including the
// legacy field layout; newer versions are rejected with ErrUnsupportedVersion.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if s.Version > SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	if s.Version == 0 {
		if err := upgradeLegacy(data, &s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// WriteFile writes a snapshot to path as indented JSON.
func WriteFile(s *Snapshot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ReadFile reads a snapshot from disk.
func ReadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(data)
}
