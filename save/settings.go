package save

import (
	"encoding/json"
	"fmt"
)

// Graphics quality levels.
const (
	QualityLow    = "low"
	QualityMedium = "medium"
	QualityHigh   = "high"
)

// Settings is the player's preferences record. The core only reads AutoSave;
// everything else is carried for the presentation layer.
type Settings struct {
	MasterVolume    int    `json:"master_volume"`
	SFXEnabled      bool   `json:"sfx_enabled"`
	MusicEnabled    bool   `json:"music_enabled"`
	GraphicsQuality string `json:"graphics_quality"`
	ScreenShake     bool   `json:"screen_shake"`
	AutoSave        bool   `json:"auto_save"`
	TutorialHints   bool   `json:"tutorial_hints"`
}

// Normalize bounds the volume and replaces an unknown quality with medium.
func (s *Settings) Normalize() {
	if s.MasterVolume < 0 {
		s.MasterVolume = 0
	}
	if s.MasterVolume > 100 {
		s.MasterVolume = 100
	}
	switch s.GraphicsQuality {
	case QualityLow, QualityMedium, QualityHigh:
	default:
		s.GraphicsQuality = QualityMedium
	}
}

// EncodeSettings serializes a settings record.
func EncodeSettings(s Settings) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return data, nil
}

// DecodeSettings overlays the fields present in data onto base.
// Fields missing from data keep their base value. The camelCase layout is
// also accepted; snake_case keys win when a record carries both.
func DecodeSettings(data []byte, base Settings) (Settings, error) {
	merged := base
	if len(data) == 0 {
		return merged, nil
	}
	var old legacySettings
	if err := json.Unmarshal(data, &old); err != nil {
		return base, fmt.Errorf("unmarshal settings: %w", err)
	}
	old.apply(&merged)
	if err := json.Unmarshal(data, &merged); err != nil {
		return base, fmt.Errorf("unmarshal settings: %w", err)
	}
	merged.Normalize()
	return merged, nil
}
