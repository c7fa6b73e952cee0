package save

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestEncodeDecode(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Version:     SnapshotVersion,
		GameVersion: GameVersion,
		SessionID:   "abc",
		Coins:       intPtr(0),
		Counters:    &Counters{Feed: 1, Wash: 2, Play: 3},
		Roster: []DogRecord{
			{Name: "Max", Hunger: 80, Energy: 70, Hygiene: 60, Happiness: 75, Level: 2, XP: 5, XPToNextLevel: 150, Traits: []string{"energetic", "playful"}},
		},
		AdoptionPool:  []DogRecord{},
		Achievements:  []AchievementRecord{{Name: "First Steps", Unlocked: true}},
		SelectedIndex: intPtr(0),
		Unlocks:       &Unlocks{Dogs: []string{"Luna"}, Toys: []string{"Ball"}},
	}
	snap.SetTime(at)

	data, err := Encode(snap)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)

	assert.True(t, got.Time().Equal(at))
	require.NotNil(t, got.Coins)
	assert.Equal(t, 0, *got.Coins, "explicit zero coins must survive")
	assert.Equal(t, snap.Roster, got.Roster)
	assert.NotNil(t, got.AdoptionPool, "empty pool must decode as present")
	assert.Empty(t, got.AdoptionPool)
	assert.Equal(t, snap.Counters, got.Counters)
	assert.Equal(t, 0, *got.SelectedIndex)
	assert.Equal(t, []string{"Luna"}, got.Unlocks.Dogs)
}

func TestDecodeAbsentFields(t *testing.T) {
	got, err := Decode([]byte(`{"version":1,"timestamp":0}`))
	require.NoError(t, err)

	assert.Nil(t, got.Coins)
	assert.Nil(t, got.Counters)
	assert.Nil(t, got.Roster)
	assert.Nil(t, got.AdoptionPool)
	assert.Nil(t, got.SelectedIndex)
	assert.True(t, got.Time().IsZero())
}

func TestDecodeRejectsFutureVersion(t *testing.T) {
	_, err := Decode([]byte(`{"version":99}`))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`{"version":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal snapshot")
}

func TestDecodeLegacyLayout(t *testing.T) {
	legacy := `{
		"coins": 40,
		"dogStats": [{"name":"Max","hunger":80,"energy":70,"hygiene":60,"happiness":75,"selected":false,"xp":12,"level":2,"xpToNextLevel":150,"traits":["energetic","playful"]}],
		"achievements": [{"name":"First Steps","description":"Feed a dog for the first time","unlocked":true,"icon":"x"}],
		"stats": {"feedCount": 4, "washCount": 1, "playCount": 9},
		"selectedDogIndex": 0,
		"timestamp": 1714564800000,
		"gameVersion": "1.0.0",
		"progression": {"totalXP": 12, "level": 2, "unlocks": {"dogs": [], "toys": ["Ball"], "foodItems": []}}
	}`

	got, err := Decode([]byte(legacy))
	require.NoError(t, err)

	require.Len(t, got.Roster, 1)
	assert.Equal(t, DogRecord{Name: "Max", Hunger: 80, Energy: 70, Hygiene: 60, Happiness: 75, Level: 2, XP: 12, XPToNextLevel: 150, Traits: []string{"energetic", "playful"}}, got.Roster[0])
	assert.Nil(t, got.AdoptionPool, "legacy save without availableDogs has no pool")
	assert.Equal(t, &Counters{Feed: 4, Wash: 1, Play: 9}, got.Counters)
	assert.Equal(t, 40, *got.Coins)
	assert.Equal(t, 0, *got.SelectedIndex)
	assert.Equal(t, &Progression{TotalXP: 12, Level: 2}, got.Progression)
	assert.Equal(t, []string{"Ball"}, got.Unlocks.Toys)
	assert.True(t, got.Achievements[0].Unlocked)
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snap.json")
	snap := &Snapshot{Version: SnapshotVersion, Coins: intPtr(120), Roster: []DogRecord{{Name: "Max"}}, AdoptionPool: []DogRecord{}}

	require.NoError(t, WriteFile(snap, path))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 120, *got.Coins)
	assert.Equal(t, "Max", got.Roster[0].Name)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
