package store

import (
	"fmt"
	"time"
)

func (s *Store) AddGoal(text string) (*Goal, error) {
	if text == "" {
		return nil, fmt.Errorf("add goal: empty text")
	}
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO goals (text, completed, created_at) VALUES (?, 0, ?)`,
		text, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetGoal(id)
}

func (s *Store) GetGoal(id int64) (*Goal, error) {
	g := &Goal{}
	var completed int
	var createdAt string
	err := s.db.QueryRow(
		`SELECT id, text, completed, created_at FROM goals WHERE id = ?`, id,
	).Scan(&g.ID, &g.Text, &completed, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("get goal %d: %w", id, err)
	}
	g.Completed = completed == 1
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return g, nil
}

// ListGoals returns goals newest-first by insertion.
func (s *Store) ListGoals() ([]Goal, error) {
	rows, err := s.db.Query(
		`SELECT id, text, completed, created_at FROM goals ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		var completed int
		var createdAt string
		if err := rows.Scan(&g.ID, &g.Text, &completed, &createdAt); err != nil {
			return nil, err
		}
		g.Completed = completed == 1
		g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) SetGoalCompleted(id int64, completed bool) error {
	v := 0
	if completed {
		v = 1
	}
	_, err := s.db.Exec(`UPDATE goals SET completed = ? WHERE id = ?`, v, id)
	return err
}

func (s *Store) DeleteGoal(id int64) error {
	_, err := s.db.Exec(`DELETE FROM goals WHERE id = ?`, id)
	return err
}
