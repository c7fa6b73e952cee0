// Package storage provides slot store backends for saved sessions.
//
// Every backend is a last-write-wins key-value store of opaque bytes keyed by
// save.SlotID. None offers transactions across slots.
package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pthm-cable/kennel/save"
)

// ErrNotFound is returned when a slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Info describes a stored slot.
type Info struct {
	ID        save.SlotID
	UpdatedAt time.Time
	Size      int
}

func validateID(id save.SlotID) error {
	s := string(id)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("slot id is required")
	}
	if strings.ContainsAny(s, `/\`) || strings.Contains(s, "..") {
		return fmt.Errorf("invalid slot id %q", s)
	}
	return nil
}
