package store

import "fmt"

func (s *Store) AddScheduleItem(timeStr, subject, category string) (*ScheduleItem, error) {
	res, err := s.db.Exec(
		`INSERT INTO schedule_items (time, subject, category) VALUES (?, ?, ?)`,
		timeStr, subject, category,
	)
	if err != nil {
		return nil, fmt.Errorf("insert schedule item: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetScheduleItem(id)
}

func (s *Store) GetScheduleItem(id int64) (*ScheduleItem, error) {
	it := &ScheduleItem{}
	err := s.db.QueryRow(
		`SELECT id, time, subject, category FROM schedule_items WHERE id = ?`, id,
	).Scan(&it.ID, &it.Time, &it.Subject, &it.Category)
	if err != nil {
		return nil, fmt.Errorf("get schedule item %d: %w", id, err)
	}
	return it, nil
}

// ListSchedule returns items ordered by time ascending. Lexicographic
// order on zero-padded HH:MM strings is chronological within a day.
func (s *Store) ListSchedule() ([]ScheduleItem, error) {
	rows, err := s.db.Query(
		`SELECT id, time, subject, category FROM schedule_items ORDER BY time, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	defer rows.Close()

	var items []ScheduleItem
	for rows.Next() {
		var it ScheduleItem
		if err := rows.Scan(&it.ID, &it.Time, &it.Subject, &it.Category); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) DeleteScheduleItem(id int64) error {
	_, err := s.db.Exec(`DELETE FROM schedule_items WHERE id = ?`, id)
	return err
}

// ReplaceSchedule discards every existing item and inserts the given
// ones in a single transaction, assigning fresh ids.
func (s *Store) ReplaceSchedule(items []ScheduleItem) ([]ScheduleItem, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("replace schedule: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM schedule_items`); err != nil {
		return nil, fmt.Errorf("clear schedule: %w", err)
	}
	for _, it := range items {
		if _, err := tx.Exec(
			`INSERT INTO schedule_items (time, subject, category) VALUES (?, ?, ?)`,
			it.Time, it.Subject, it.Category,
		); err != nil {
			return nil, fmt.Errorf("insert schedule item: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit schedule: %w", err)
	}
	return s.ListSchedule()
}
