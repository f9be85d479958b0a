package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/petworks/tamacore/internal/domain"
	"github.com/petworks/tamacore/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore persists the save blob as a single row in a local SQLite
// database. Schema is provisioned by the embedded goose migrations.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and runs
// pending migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// The save store is a single-writer workload; one connection avoids
	// SQLITE_BUSY on concurrent tick/action saves.
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the save row. A missing row, a corrupt payload or a version
// mismatch all degrade to "no save".
func (s *SQLiteStore) Load(ctx context.Context) (*domain.SaveState, error) {
	log := logger.FromContext(ctx)

	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM save_blobs WHERE save_key = ?`, SaveKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query save blob: %w", err)
	}

	var state domain.SaveState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		log.Warn("save blob unreadable, starting fresh", "error", err)
		return nil, nil
	}
	if state.Version != domain.CurrentVersion {
		log.Warn("save blob version mismatch, starting fresh",
			"version", state.Version, "want", domain.CurrentVersion)
		return nil, nil
	}
	if state.Events == nil {
		state.Events = make(map[string]int)
	}
	if state.Inventory.Equipped == nil {
		state.Inventory.Equipped = make(map[domain.Category]string)
	}
	return &state, nil
}

// Save upserts the single save row.
func (s *SQLiteStore) Save(ctx context.Context, state *domain.SaveState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal save blob: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO save_blobs (save_key, version, payload, updated_at)
		VALUES (?, ?, ?, unixepoch('subsec') * 1000)
		ON CONFLICT (save_key) DO UPDATE SET
			version = excluded.version,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		SaveKey, state.Version, string(payload))
	if err != nil {
		return fmt.Errorf("write save blob: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
