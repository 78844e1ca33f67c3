package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished race.
type Run struct {
	ID         string // UUID, assigned by SaveRun when empty
	GameID     string
	SessionID  string // SSH session, empty for local play
	Seed       int64
	Score      int
	HealthLeft int
	Duration   time.Duration
	EndReason  string // "crashed", "off_road" or "quit"
	CreatedAt  time.Time
}

// ErrRunNotFound is returned by RunByID for unknown IDs.
var ErrRunNotFound = errors.New("storage: run not found")

// SaveRun records a finished run together with its score entry.
// Returns the run ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		run.GameID, run.Score,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	scoreID, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO runs
		 (run_id, score_id, game_id, session_id, seed, health_left, duration_ms, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		scoreID,
		run.GameID,
		run.SessionID,
		run.Seed,
		run.HealthLeft,
		run.Duration.Milliseconds(),
		run.EndReason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run.ID, nil
}

const runColumns = `r.run_id, r.game_id, r.session_id, r.seed, s.score,
	r.health_left, r.duration_ms, r.end_reason, r.created_at`

// RunByID retrieves a run by its UUID.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs r JOIN scores s ON s.id = r.score_id
		 WHERE r.run_id = ?`,
		id,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs of a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs r JOIN scores s ON s.id = r.score_id
		 WHERE r.game_id = ?
		 ORDER BY r.id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// TopRuns retrieves the best runs of a game, highest score first.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs r JOIN scores s ON s.id = r.score_id
		 WHERE r.game_id = ?
		 ORDER BY s.score DESC, r.id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var run Run
	var durationMS int64
	var createdAt any

	if err := sc.Scan(
		&run.ID,
		&run.GameID,
		&run.SessionID,
		&run.Seed,
		&run.Score,
		&run.HealthLeft,
		&durationMS,
		&run.EndReason,
		&createdAt,
	); err != nil {
		return nil, err
	}

	run.Duration = time.Duration(durationMS) * time.Millisecond
	run.CreatedAt = parseTimestamp(createdAt)
	return &run, nil
}
