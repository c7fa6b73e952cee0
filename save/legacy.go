package save

import (
	"encoding/json"
	"fmt"
)

// legacySnapshot is the unversioned layout written before snapshots carried
// a version number. Only fields whose names differ are listed.
type legacySnapshot struct {
	DogStats         []legacyDog        `json:"dogStats"`
	AvailableDogs    []legacyDog        `json:"availableDogs"`
	Stats            *legacyStats       `json:"stats"`
	SelectedDogIndex *int               `json:"selectedDogIndex"`
	Progression      *legacyProgression `json:"progression"`
}

type legacyDog struct {
	Name          string   `json:"name"`
	Hunger        float64  `json:"hunger"`
	Energy        float64  `json:"energy"`
	Hygiene       float64  `json:"hygiene"`
	Happiness     float64  `json:"happiness"`
	Level         int      `json:"level"`
	XP            int      `json:"xp"`
	XPToNextLevel int      `json:"xpToNextLevel"`
	Traits        []string `json:"traits"`
}

type legacyStats struct {
	FeedCount int `json:"feedCount"`
	WashCount int `json:"washCount"`
	PlayCount int `json:"playCount"`
}

type legacyProgression struct {
	TotalXP int `json:"totalXP"`
	Level   int `json:"level"`
	Unlocks *struct {
		Dogs      []string `json:"dogs"`
		Toys      []string `json:"toys"`
		FoodItems []string `json:"foodItems"`
	} `json:"unlocks"`
}

// upgradeLegacy fills s from the legacy layout for any field the current
// layout left absent.
func upgradeLegacy(data []byte, s *Snapshot) error {
	var old legacySnapshot
	if err := json.Unmarshal(data, &old); err != nil {
		return fmt.Errorf("unmarshal legacy snapshot: %w", err)
	}

	if s.Roster == nil && old.DogStats != nil {
		s.Roster = convertLegacyDogs(old.DogStats)
	}
	if s.AdoptionPool == nil && old.AvailableDogs != nil {
		s.AdoptionPool = convertLegacyDogs(old.AvailableDogs)
	}
	if s.Counters == nil && old.Stats != nil {
		s.Counters = &Counters{Feed: old.Stats.FeedCount, Wash: old.Stats.WashCount, Play: old.Stats.PlayCount}
	}
	if s.SelectedIndex == nil && old.SelectedDogIndex != nil {
		s.SelectedIndex = old.SelectedDogIndex
	}
	if old.Progression != nil {
		if s.Progression == nil {
			s.Progression = &Progression{}
		}
		if s.Progression.TotalXP == 0 {
			s.Progression.TotalXP = old.Progression.TotalXP
		}
		if s.Progression.Level == 0 {
			s.Progression.Level = old.Progression.Level
		}
		if s.Unlocks == nil && old.Progression.Unlocks != nil {
			u := old.Progression.Unlocks
			s.Unlocks = &Unlocks{Dogs: u.Dogs, Toys: u.Toys, Foods: u.FoodItems}
		}
	}
	return nil
}

func convertLegacyDogs(in []legacyDog) []DogRecord {
	out := make([]DogRecord, len(in))
	for i, d := range in {
		out[i] = DogRecord{
			Name:          d.Name,
			Hunger:        d.Hunger,
			Energy:        d.Energy,
			Hygiene:       d.Hygiene,
			Happiness:     d.Happiness,
			Level:         d.Level,
			XP:            d.XP,
			XPToNextLevel: d.XPToNextLevel,
			Traits:        d.Traits,
		}
	}
	return out
}

// legacySettings is the camelCase settings layout. Pointers mark which
// fields the record actually carried.
type legacySettings struct {
	MasterVolume    *int    `json:"masterVolume"`
	SFXEnabled      *bool   `json:"sfxEnabled"`
	MusicEnabled    *bool   `json:"musicEnabled"`
	GraphicsQuality *string `json:"graphicsQuality"`
	ScreenShake     *bool   `json:"screenShake"`
	AutoSave        *bool   `json:"autoSave"`
	TutorialHints   *bool   `json:"tutorialHints"`
}

func (l legacySettings) apply(s *Settings) {
	if l.MasterVolume != nil {
		s.MasterVolume = *l.MasterVolume
	}
	if l.SFXEnabled != nil {
		s.SFXEnabled = *l.SFXEnabled
	}
	if l.MusicEnabled != nil {
		s.MusicEnabled = *l.MusicEnabled
	}
	if l.GraphicsQuality != nil {
		s.GraphicsQuality = *l.GraphicsQuality
	}
	if l.ScreenShake != nil {
		s.ScreenShake = *l.ScreenShake
	}
	if l.AutoSave != nil {
		s.AutoSave = *l.AutoSave
	}
	if l.TutorialHints != nil {
		s.TutorialHints = *l.TutorialHints
	}
}
