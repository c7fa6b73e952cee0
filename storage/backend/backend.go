// Package backend opens a slot store by kind name.
package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/storage"
	"github.com/pthm-cable/kennel/storage/sqlite"
)

// Store kinds accepted by Open.
const (
	KindMemory = "memory"
	KindDir    = "dir"
	KindSQLite = "sqlite"
)

// Store is the full slot store surface shared by every backend.
type Store interface {
	ReadSlot(ctx context.Context, id save.SlotID) ([]byte, error)
	WriteSlot(ctx context.Context, id save.SlotID, data []byte) error
	DeleteSlot(ctx context.Context, id save.SlotID) error
	List(ctx context.Context) ([]storage.Info, error)
	Close() error
}

// Open returns a store of the given kind. path is the directory for "dir"
// and the database file for "sqlite"; it is ignored for "memory".
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindMemory:
		return storage.NewMemory(), nil
	case KindDir:
		d, err := storage.OpenDir(path)
		if err != nil {
			return nil, err
		}
		return d, nil
	case KindSQLite:
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store kind %q (want %s, %s or %s)", kind, KindMemory, KindDir, KindSQLite)
	}
}
