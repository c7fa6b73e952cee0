package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pthm-cable/kennel/save"
)

const slotExt = ".json"

// Dir stores each slot as a file in one directory.
type Dir struct {
	root string
}

// OpenDir creates the directory if needed.
func OpenDir(root string) (*Dir, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create slot dir: %w", err)
	}
	return &Dir{root: filepath.Clean(root)}, nil
}

func (d *Dir) path(id save.SlotID) string {
	return filepath.Join(d.root, string(id)+slotExt)
}

// ReadSlot reads the slot file.
func (d *Dir) ReadSlot(ctx context.Context, id save.SlotID) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(d.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read slot %s: %w", id, err)
	}
	return data, nil
}

// WriteSlot writes the slot through a temp file and rename, so readers see
// either the old or the new contents.
func (d *Dir) WriteSlot(ctx context.Context, id save.SlotID, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.root, string(id)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write slot %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close slot %s: %w", id, err)
	}
	if err := os.Rename(tmp.Name(), d.path(id)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("commit slot %s: %w", id, err)
	}
	return nil
}

// DeleteSlot removes the slot file. Deleting an absent slot is not an error.
func (d *Dir) DeleteSlot(ctx context.Context, id save.SlotID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	if err := os.Remove(d.path(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete slot %s: %w", id, err)
	}
	return nil
}

// List returns every slot file ordered by id.
func (d *Dir) List(ctx context.Context) ([]Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("list slot dir: %w", err)
	}
	var infos []Info
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, slotExt) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			ID:        save.SlotID(strings.TrimSuffix(name, slotExt)),
			UpdatedAt: fi.ModTime(),
			Size:      int(fi.Size()),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// Close is a no-op.
func (d *Dir) Close() error { return nil }
