package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents one play session in the database.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	Difficulty   int
	ScrambleText *string
	MoveCount    int
	Solved       bool
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(difficulty int, scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, difficulty, scramble_text)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), difficulty, scramblePtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Finish marks a session as complete with its final move count and outcome.
func (r *SessionRepository) Finish(sessionID string, moveCount int, solved bool) error {
	endedAt := time.Now().UTC()

	// Get start time to calculate duration
	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	solvedInt := 0
	if solved {
		solvedInt = 1
	}

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, move_count = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, moveCount, solvedInt, sessionID)

	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID. Returns nil if not found.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, duration_ms, difficulty, scramble_text, move_count, solved
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent session.
func (r *SessionRepository) GetLast() (*Session, error) {
	var sessionID string
	err := r.db.QueryRow(`
		SELECT session_id FROM sessions
		ORDER BY started_at DESC
		LIMIT 1
	`).Scan(&sessionID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}

	return r.Get(sessionID)
}

// List retrieves recent sessions.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, duration_ms, difficulty, scramble_text, move_count, solved
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// scanSession reads one session row via the given scan function.
func scanSession(scan func(...any) error) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString
	var solvedInt int

	err := scan(
		&s.SessionID, &startedAtStr, &endedAtStr,
		&s.DurationMs, &s.Difficulty, &s.ScrambleText,
		&s.MoveCount, &solvedInt,
	)
	if err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}
	s.Solved = solvedInt != 0

	return &s, nil
}
