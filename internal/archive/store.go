package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brainhack-marseille/brainhack-site/internal/projects"
)

// Store manages persistence of fetched projects and sync runs.
type Store struct {
	db *DB
}

// NewStore creates an archive store on the given database.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Upsert inserts or replaces a project snapshot. The card id keys the row;
// state is "open" or "closed" as reported by the submission issue.
func (s *Store) Upsert(ctx context.Context, index int, p projects.Project, state string) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}
	if state != "closed" {
		state = "open"
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, state, payload, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   state = excluded.state,
		   payload = excluded.payload,
		   fetched_at = excluded.fetched_at`,
		p.CardID(index), p.Title, state, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting project %s: %w", p.CardID(index), err)
	}
	return nil
}

// List returns every archived project, most recently created first.
func (s *Store) List(ctx context.Context) ([]projects.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM projects ORDER BY fetched_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var list []projects.Project
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		var p projects.Project
		if err := json.Unmarshal([]byte(payload), &p); err != nil {
			return nil, fmt.Errorf("decoding project payload: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Get returns one archived project by card id, or nil if absent.
func (s *Store) Get(ctx context.Context, id string) (*projects.Project, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM projects WHERE id = ?`, id,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting project %s: %w", id, err)
	}

	var p projects.Project
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("decoding project payload: %w", err)
	}
	return &p, nil
}

// SyncRun records one intake run.
type SyncRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Fetched    int
	Approved   int
	Archived   int
	Error      string
}

// RecordSyncRun persists the outcome of an intake run and returns its id.
func (s *Store) RecordSyncRun(ctx context.Context, run SyncRun) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sync_runs (id, started_at, finished_at, fetched, approved, archived, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.FinishedAt, run.Fetched, run.Approved, run.Archived, run.Error,
	)
	if err != nil {
		return "", fmt.Errorf("recording sync run: %w", err)
	}
	return run.ID, nil
}
