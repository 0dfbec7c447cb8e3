package writer

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/rollcall-tracker/internal/common"
	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
	id         TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

// SQLite upserts records into a local database file, one JSON payload per id.
// Use path ":memory:" for an ephemeral store.
type SQLite struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSQLite(path string, logger *slog.Logger) (*SQLite, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(err, "opening sqlite database")
	}
	// The pipeline is strictly sequential; one connection also keeps
	// :memory: databases from splitting across pool connections.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "creating records table")
	}

	logger.Info("writer.sqlite.opened", "path", path)
	return &SQLite{db: db, logger: logger}, nil
}

func (s *SQLite) Write(ctx context.Context, rec record.Record) error {
	id := rec.ID()
	payload, err := json.Marshal(rec.Fields())
	if err != nil {
		return common.NewWriterError("encoding "+id, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (id, payload, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		id, string(payload),
	)
	if err != nil {
		return common.NewWriterError("upserting "+id, err)
	}
	s.logger.Debug("writer.sqlite.upserted", "id", id)
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Get returns the stored payload for id, decoded. ok is false when id is
// absent.
func (s *SQLite) Get(ctx context.Context, id string) (map[string]any, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM records WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, false, err
	}
	return fields, true, nil
}

// Count returns the number of stored records.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n)
	return n, err
}
