package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/kennel/save"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotStore interface {
	ReadSlot(ctx context.Context, id save.SlotID) ([]byte, error)
	WriteSlot(ctx context.Context, id save.SlotID, data []byte) error
	DeleteSlot(ctx context.Context, id save.SlotID) error
	List(ctx context.Context) ([]Info, error)
	Close() error
}

func backends(t *testing.T) map[string]slotStore {
	t.Helper()
	dir, err := OpenDir(filepath.Join(t.TempDir(), "slots"))
	require.NoError(t, err)
	return map[string]slotStore{
		"memory": NewMemory(),
		"dir":    dir,
	}
}

func TestReadMissingSlot(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.ReadSlot(context.Background(), "save_slot_1")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestWriteReadOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.WriteSlot(ctx, "save_slot_1", []byte(`{"version":1}`)))
			require.NoError(t, s.WriteSlot(ctx, "save_slot_1", []byte(`{"version":2}`)))

			got, err := s.ReadSlot(ctx, "save_slot_1")
			require.NoError(t, err)
			assert.Equal(t, `{"version":2}`, string(got))
		})
	}
}

func TestDeleteAndList(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.WriteSlot(ctx, "save_slot_2", []byte("bb")))
			require.NoError(t, s.WriteSlot(ctx, "save_slot_1", []byte("a")))
			require.NoError(t, s.WriteSlot(ctx, "settings", []byte("{}")))

			infos, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, infos, 3)
			assert.Equal(t, save.SlotID("save_slot_1"), infos[0].ID)
			assert.Equal(t, 1, infos[0].Size)
			assert.Equal(t, save.SlotID("save_slot_2"), infos[1].ID)
			assert.Equal(t, 2, infos[1].Size)

			require.NoError(t, s.DeleteSlot(ctx, "save_slot_2"))
			require.NoError(t, s.DeleteSlot(ctx, "save_slot_2"))
			_, err = s.ReadSlot(ctx, "save_slot_2")
			assert.ErrorIs(t, err, ErrNotFound)

			infos, err = s.List(ctx)
			require.NoError(t, err)
			assert.Len(t, infos, 2)
			assert.NoError(t, s.Close())
		})
	}
}

func TestRejectsBadIDs(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, id := range []save.SlotID{"", "  ", "../escape", "a/b"} {
				assert.Error(t, s.WriteSlot(ctx, id, []byte("x")), "id %q", id)
			}
		})
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.WriteSlot(ctx, "save_slot_1", nil), context.Canceled)
			_, err := s.ReadSlot(ctx, "save_slot_1")
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	data := []byte("abc")
	require.NoError(t, m.WriteSlot(ctx, "save_slot_1", data))
	data[0] = 'z'

	got, err := m.ReadSlot(ctx, "save_slot_1")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'z'
	again, err := m.ReadSlot(ctx, "save_slot_1")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestDirLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	d, err := OpenDir(root)
	require.NoError(t, err)
	require.NoError(t, d.WriteSlot(context.Background(), "save_slot_3", []byte("data")))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "save_slot_3.json", entries[0].Name())
}

func TestOpenDirRequiresPath(t *testing.T) {
	_, err := OpenDir("")
	assert.Error(t, err)
}
