// Package prefs keeps small per-visitor preferences (the selected theme) in
// the server's database, and serves them over HTTP.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ziadkadry99/folio/internal/db"
)

// ErrNotFound is returned when a visitor has no value under a key.
var ErrNotFound = errors.New("preference not found")

// Preference is one stored value.
type Preference struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store provides access to the preferences table.
type Store struct {
	db *db.DB
}

// NewStore creates a new preferences store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Get returns the value visitor stored under key.
func (s *Store) Get(ctx context.Context, visitor, key string) (*Preference, error) {
	p := &Preference{Key: key}
	err := s.db.QueryRowContext(ctx,
		`SELECT value, updated_at FROM preferences WHERE visitor_id = ? AND key = ?`,
		visitor, key,
	).Scan(&p.Value, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting preference: %w", err)
	}
	return p, nil
}

// Set stores value under key for visitor, replacing any previous value.
func (s *Store) Set(ctx context.Context, visitor, key, value string) (*Preference, error) {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (visitor_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		visitor, key, value, now,
	)
	if err != nil {
		return nil, fmt.Errorf("setting preference: %w", err)
	}
	return &Preference{Key: key, Value: value, UpdatedAt: now}, nil
}

// Delete removes key for visitor. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, visitor, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE visitor_id = ? AND key = ?`, visitor, key,
	); err != nil {
		return fmt.Errorf("deleting preference: %w", err)
	}
	return nil
}

// List returns every preference of visitor ordered by key.
func (s *Store) List(ctx context.Context, visitor string) ([]Preference, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value, updated_at FROM preferences WHERE visitor_id = ? ORDER BY key`, visitor)
	if err != nil {
		return nil, fmt.Errorf("listing preferences: %w", err)
	}
	defer rows.Close()

	result := []Preference{}
	for rows.Next() {
		var p Preference
		if err := rows.Scan(&p.Key, &p.Value, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// Prune removes preferences untouched since before cutoff and reports how
// many were removed.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE updated_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning preferences: %w", err)
	}
	return res.RowsAffected()
}

// PruneExpired removes preferences no visitor cookie can reach any more:
// those untouched for longer than CookieMaxAge before now.
func (s *Store) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.Prune(ctx, now.Add(-CookieMaxAge))
}
