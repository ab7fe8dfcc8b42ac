// Package profile is the read-mostly lookup of durable user health profiles:
// allergies, known conditions and prescribed medications on file, keyed by
// user identifier.
package profile

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when no profile exists for a user. Callers are
// expected to proceed with empty defaults.
var ErrNotFound = errors.New("profile: not found")

// Profile is a user's durable health record. The list fields are sets of
// free-text entries as the user recorded them, not lexicon canonical names.
type Profile struct {
	UserID      string
	DisplayName string
	Allergies   []string
	Conditions  []string
	Medications []string
	UpdatedAt   time.Time
}

// Store is a SQLite-backed profile repository.
//
// 1. The creation method creates the table if it does not exist.
// 2. Convenience methods for fetching and upserting profiles.
type Store struct {
	db *sqlx.DB
}

// NewStore opens (or creates) the SQLite database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to SQLite")
	}

	// WAL mode for better concurrency.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, errors.Wrap(err, "failed to enable WAL mode")
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_profiles (
			user_id      TEXT PRIMARY KEY,
			display_name TEXT,
			allergies    TEXT,
			conditions   TEXT,
			medications  TEXT,
			updated_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

type profileRow struct {
	UserID      string    `db:"user_id"`
	DisplayName string    `db:"display_name"`
	Allergies   string    `db:"allergies"`
	Conditions  string    `db:"conditions"`
	Medications string    `db:"medications"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Get fetches the profile for userID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, userID string) (*Profile, error) {
	var row profileRow
	err := s.db.GetContext(ctx, &row,
		`SELECT user_id, display_name, allergies, conditions, medications, updated_at
		   FROM user_profiles WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query profile")
	}

	return &Profile{
		UserID:      row.UserID,
		DisplayName: row.DisplayName,
		Allergies:   splitList(row.Allergies),
		Conditions:  splitList(row.Conditions),
		Medications: splitList(row.Medications),
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// Upsert stores or replaces a user's profile.
func (s *Store) Upsert(ctx context.Context, p Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, display_name, allergies, conditions, medications, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			display_name = excluded.display_name,
			allergies    = excluded.allergies,
			conditions   = excluded.conditions,
			medications  = excluded.medications,
			updated_at   = CURRENT_TIMESTAMP
	`, p.UserID, p.DisplayName, joinList(p.Allergies), joinList(p.Conditions), joinList(p.Medications))
	return errors.Wrap(err, "upsert profile")
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// splitList parses the comma-separated column format, dropping blanks.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
