package save

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Settings {
	return Settings{
		MasterVolume:    70,
		SFXEnabled:      true,
		GraphicsQuality: QualityMedium,
		ScreenShake:     true,
		AutoSave:        true,
		TutorialHints:   true,
	}
}

func TestDecodeSettingsMergesOntoBase(t *testing.T) {
	got, err := DecodeSettings([]byte(`{"master_volume": 30, "auto_save": false}`), defaults())
	require.NoError(t, err)

	want := defaults()
	want.MasterVolume = 30
	want.AutoSave = false
	assert.Equal(t, want, got)
}

func TestDecodeSettingsEmpty(t *testing.T) {
	got, err := DecodeSettings(nil, defaults())
	require.NoError(t, err)
	assert.Equal(t, defaults(), got)
}

func TestDecodeSettingsNormalizes(t *testing.T) {
	got, err := DecodeSettings([]byte(`{"master_volume": 400, "graphics_quality": "ultra"}`), defaults())
	require.NoError(t, err)
	assert.Equal(t, 100, got.MasterVolume)
	assert.Equal(t, QualityMedium, got.GraphicsQuality)
}

func TestDecodeSettingsCorrupt(t *testing.T) {
	got, err := DecodeSettings([]byte(`not json`), defaults())
	require.Error(t, err)
	assert.Equal(t, defaults(), got, "corrupt input returns the base unchanged")
}

func TestEncodeSettingsRoundTrip(t *testing.T) {
	s := defaults()
	s.MusicEnabled = true
	data, err := EncodeSettings(s)
	require.NoError(t, err)

	got, err := DecodeSettings(data, Settings{})
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDecodeSettingsLegacyLayout(t *testing.T) {
	legacy := `{"masterVolume": 30, "sfxEnabled": false, "musicEnabled": true, "graphicsQuality": "high", "screenShake": false, "autoSave": false, "tutorialHints": false}`

	got, err := DecodeSettings([]byte(legacy), defaults())
	require.NoError(t, err)
	assert.Equal(t, Settings{
		MasterVolume:    30,
		MusicEnabled:    true,
		GraphicsQuality: QualityHigh,
	}, got)
}

func TestDecodeSettingsCurrentKeysWin(t *testing.T) {
	got, err := DecodeSettings([]byte(`{"autoSave": true, "auto_save": false, "masterVolume": 20}`), defaults())
	require.NoError(t, err)
	assert.False(t, got.AutoSave)
	assert.Equal(t, 20, got.MasterVolume)
}
