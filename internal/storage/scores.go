package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and runs for the given game.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
	EndReasons map[string]int // Runs per end reason
	AvgRunTime time.Duration
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID, EndReasons: make(map[string]int)}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	var avgMS float64
	if err := s.db.QueryRow(
		`SELECT COALESCE(AVG(duration_ms), 0) FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&avgMS); err != nil {
		return nil, fmt.Errorf("storage: cannot get run time: %w", err)
	}
	stats.AvgRunTime = time.Duration(avgMS) * time.Millisecond

	rows, err := s.db.Query(
		`SELECT end_reason, COUNT(*) FROM runs WHERE game_id = ? GROUP BY end_reason`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get end reasons: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan end reason: %w", err)
		}
		stats.EndReasons[reason] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// GetAllGamesStats retrieves score statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTimestamp(lastPlayed)
		stats[gs.GameID] = &gs
	}

	return stats, rows.Err()
}
