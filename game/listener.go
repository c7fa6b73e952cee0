package game

//go:generate go tool mockgen -destination=./mocks/mocks.go -package=mocks . Listener,SlotStore

import (
	"context"

	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/telemetry"
)

// Listener receives simulation events. Events are delivered after the
// simulation lock is released, so a listener may call back into the Game.
type Listener interface {
	HandleEvent(e telemetry.Event)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(e telemetry.Event)

// HandleEvent calls f(e).
func (f ListenerFunc) HandleEvent(e telemetry.Event) { f(e) }

// SlotStore is the key-value store holding save slots and the settings record.
// ReadSlot returns storage.ErrNotFound for a slot that was never written.
type SlotStore interface {
	ReadSlot(ctx context.Context, id save.SlotID) ([]byte, error)
	WriteSlot(ctx context.Context, id save.SlotID, data []byte) error
}
