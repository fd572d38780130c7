package store

import (
	"fmt"
	"time"
)

func (s *Store) AppendSession(minutes int, sessionType string, at time.Time) (*StudySession, error) {
	ts := at.UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO study_sessions (minutes, type, timestamp) VALUES (?, ?, ?)`,
		minutes, sessionType, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("append session: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetSession(id)
}

func (s *Store) GetSession(id int64) (*StudySession, error) {
	sess := &StudySession{}
	var ts string
	err := s.db.QueryRow(
		`SELECT id, minutes, type, timestamp FROM study_sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.Minutes, &sess.Type, &ts)
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	sess.Timestamp, _ = time.Parse(time.RFC3339, ts)
	return sess, nil
}

// ListSessions returns the full session log, oldest first.
func (s *Store) ListSessions() ([]StudySession, error) {
	rows, err := s.db.Query(
		`SELECT id, minutes, type, timestamp FROM study_sessions ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []StudySession
	for rows.Next() {
		var sess StudySession
		var ts string
		if err := rows.Scan(&sess.ID, &sess.Minutes, &sess.Type, &ts); err != nil {
			return nil, err
		}
		sess.Timestamp, _ = time.Parse(time.RFC3339, ts)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// WorkMinutesByDay aggregates completed work minutes per day in [from, to).
func (s *Store) WorkMinutesByDay(from, to time.Time) ([]DailyMinutes, error) {
	rows, err := s.db.Query(`
		SELECT date(timestamp), COALESCE(SUM(minutes), 0)
		FROM study_sessions
		WHERE type = ? AND timestamp >= ? AND timestamp < ?
		GROUP BY date(timestamp)
		ORDER BY date(timestamp)`,
		SessionWork, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("work minutes by day: %w", err)
	}
	defer rows.Close()

	var days []DailyMinutes
	for rows.Next() {
		var d DailyMinutes
		if err := rows.Scan(&d.Date, &d.Minutes); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
