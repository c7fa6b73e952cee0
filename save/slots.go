package save

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotID names a record in the slot store.
type SlotID string

// NumSaveSlots is the number of manual save slots.
const NumSaveSlots = 3

// SettingsSlot holds the settings record, separate from game saves.
const SettingsSlot SlotID = "settings"

const savePrefix = "save_"

// SaveSlot returns the id of manual slot n (1-based).
func SaveSlot(n int) (SlotID, error) {
	if n < 1 || n > NumSaveSlots {
		return "", fmt.Errorf("save slot %d out of range 1..%d", n, NumSaveSlots)
	}
	return SlotID(savePrefix + strconv.Itoa(n)), nil
}

// SaveSlots returns every manual slot id in order.
func SaveSlots() []SlotID {
	ids := make([]SlotID, NumSaveSlots)
	for i := range ids {
		ids[i] = SlotID(savePrefix + strconv.Itoa(i+1))
	}
	return ids
}

// Number returns the manual slot number, or 0 for non-save slots.
func (id SlotID) Number() int {
	s, ok := strings.CutPrefix(string(id), savePrefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > NumSaveSlots {
		return 0
	}
	return n
}

// Valid reports whether id is a known slot.
func (id SlotID) Valid() bool {
	return id == SettingsSlot || id.Number() > 0
}
