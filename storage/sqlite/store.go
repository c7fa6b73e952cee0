// Package sqlite provides a SQLite-backed slot store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/storage"
	"github.com/pthm-cable/kennel/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists slots in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite slot store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReadSlot returns the slot's bytes.
func (s *Store) ReadSlot(ctx context.Context, id save.SlotID) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	var data []byte
	err := s.sqlDB.QueryRowContext(ctx, `SELECT data FROM slots WHERE id = ?`, string(id)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("read slot %s: %w", id, err)
	}
	return data, nil
}

// WriteSlot inserts or replaces the slot.
func (s *Store) WriteSlot(ctx context.Context, id save.SlotID, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("slot id is required")
	}
	if data == nil {
		data = []byte{}
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO slots (id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(id),
		data,
		toMillis(s.now()),
	)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", id, err)
	}
	return nil
}

// DeleteSlot removes the slot. Deleting an absent slot is not an error.
func (s *Store) DeleteSlot(ctx context.Context, id save.SlotID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM slots WHERE id = ?`, string(id)); err != nil {
		return fmt.Errorf("delete slot %s: %w", id, err)
	}
	return nil
}

// List returns every stored slot ordered by id.
func (s *Store) List(ctx context.Context) ([]storage.Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, length(data), updated_at FROM slots ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var infos []storage.Info
	for rows.Next() {
		var (
			id        string
			size      int
			updatedAt int64
		)
		if err := rows.Scan(&id, &size, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		infos = append(infos, storage.Info{ID: save.SlotID(id), Size: size, UpdatedAt: fromMillis(updatedAt)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}
	return infos, nil
}
