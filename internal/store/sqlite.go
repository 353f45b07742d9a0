//go:build sqlite

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/inovacc/fuelr/internal/model"
)

const stateFileName = "fuelr.db"

// SQLite is the Store backend selected by the sqlite build tag.
type SQLite struct {
	db *sql.DB
}

func initStore(path string) (Store, error) {
	return NewSQLite(path)
}

// NewSQLite opens, migrating if needed, a SQLite-backed store at path.
func NewSQLite(path string) (*SQLite, error) {
	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := migrate(db); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS config (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS refreshes (
	key TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
`

	_, err := db.Exec(schema)

	return err
}

func (s *SQLite) Ping() error {
	return s.db.Ping()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) GetConfig() (*model.Config, error) {
	var data string

	err := s.db.QueryRow(`SELECT data FROM config WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		// Return default config if not found
		defaultCfg := model.DefaultConfig()

		return &defaultCfg, nil
	}

	if err != nil {
		return nil, err
	}

	var c model.Config
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *SQLite) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO config (id, data) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		string(data),
	)

	return err
}

func (s *SQLite) SaveRefresh(rec *model.RefreshRecord) error {
	if rec == nil {
		return errors.New("record is required")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(
		`INSERT INTO refreshes (key, data) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
		refreshKey(rec), string(data),
	); err != nil {
		return err
	}

	// keys order chronologically, keep only the newest historyLimit rows
	_, err = s.db.Exec(
		`DELETE FROM refreshes WHERE key NOT IN (
			SELECT key FROM refreshes ORDER BY key DESC LIMIT ?
		)`,
		historyLimit,
	)

	return err
}

func (s *SQLite) LastRefresh() (*model.RefreshRecord, error) {
	var data string

	err := s.db.QueryRow(`SELECT data FROM refreshes ORDER BY key DESC LIMIT 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var r model.RefreshRecord
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *SQLite) ListRefreshes(limit int) ([]model.RefreshRecord, error) {
	query := `SELECT data FROM refreshes ORDER BY key DESC`

	var args []any

	if limit > 0 {
		query += ` LIMIT ?`

		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}

	defer func() { _ = rows.Close() }()

	var out []model.RefreshRecord

	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}

		var r model.RefreshRecord
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, err
		}

		out = append(out, r)
	}

	return out, rows.Err()
}
