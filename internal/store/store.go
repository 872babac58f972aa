// Package store provides SQLite-based storage for named spring configs.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/olivier-w/rebound/internal/spring"
)

// ErrNotFound is returned when no config is stored under a name.
var ErrNotFound = errors.New("config not found")

// Entry is a stored config.
type Entry struct {
	Name    string
	Config  spring.Config
	SavedAt time.Time
}

type configRow struct {
	Name     string  `db:"name"`
	Tension  float64 `db:"tension"`
	Friction float64 `db:"friction"`
	SavedAt  int64   `db:"saved_at"`
}

func (r configRow) entry() Entry {
	return Entry{
		Name:    r.Name,
		Config:  spring.NewConfig(r.Tension, r.Friction),
		SavedAt: time.Unix(0, r.SavedAt),
	}
}

// Store wraps a SQLite connection holding spring configs.
type Store struct {
	conn *sqlx.DB
	now  func() time.Time
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn, now: time.Now}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	slog.Debug("config store ready", "path", path)

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS spring_configs (
		name TEXT PRIMARY KEY,
		tension REAL NOT NULL,
		friction REAL NOT NULL,
		saved_at INTEGER NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save stores c under name, replacing any previous entry.
func (s *Store) Save(name string, c spring.Config) error {
	if name == "" {
		return spring.ErrEmptyName
	}
	_, err := s.conn.Exec(
		"INSERT OR REPLACE INTO spring_configs (name, tension, friction, saved_at) VALUES (?, ?, ?, ?)",
		name, c.Tension, c.Friction, s.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save config %q: %w", name, err)
	}
	slog.Info("spring config saved", "name", name, "tension", c.Tension, "friction", c.Friction)
	return nil
}

// Load returns the config stored under name.
func (s *Store) Load(name string) (spring.Config, error) {
	var row configRow
	err := s.conn.Get(&row, "SELECT name, tension, friction, saved_at FROM spring_configs WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return spring.Config{}, fmt.Errorf("load config %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return spring.Config{}, fmt.Errorf("load config %q: %w", name, err)
	}
	return row.entry().Config, nil
}

// Delete removes name and reports whether it was stored.
func (s *Store) Delete(name string) (bool, error) {
	res, err := s.conn.Exec("DELETE FROM spring_configs WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("delete config %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete config %q: %w", name, err)
	}
	return n > 0, nil
}

// List returns every stored config ordered by name.
func (s *Store) List() ([]Entry, error) {
	var rows []configRow
	err := s.conn.Select(&rows, "SELECT name, tension, friction, saved_at FROM spring_configs ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = r.entry()
	}
	return entries, nil
}

// LoadInto copies every stored config into r and returns how many there
// were. Stored configs replace registry entries of the same name.
func (s *Store) LoadInto(r *spring.ConfigRegistry) (int, error) {
	entries, err := s.List()
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		r.Put(e.Name, e.Config)
	}
	return len(entries), nil
}

// SaveRegistry writes all configs of r in one transaction.
func (s *Store) SaveRegistry(r *spring.ConfigRegistry) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT OR REPLACE INTO spring_configs
		(name, tension, friction, saved_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := s.now().UnixNano()
	all := r.All()
	for _, name := range r.Names() {
		c, ok := all[name]
		if !ok {
			continue
		}
		if _, err := stmt.Exec(name, c.Tension, c.Friction, now); err != nil {
			return fmt.Errorf("save config %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("spring registry saved", "configs", len(all))
	return nil
}
