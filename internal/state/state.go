// Package state owns the application's domain collections: goals,
// schedule, session log and theme. It is the single writer; views read
// snapshots and submit mutation intents. Every mutation writes through
// to the SQLite store before the in-memory copy is updated.
package state

import (
	"fmt"
	"time"

	"focusflow/internal/store"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// PlanItem is one entry of an AI-generated schedule, before it is
// assigned an id and category.
type PlanItem struct {
	Time    string
	Subject string
}

type State struct {
	store *store.Store

	goals    []store.Goal
	schedule []store.ScheduleItem
	sessions []store.StudySession
	theme    Theme
}

// New hydrates every collection from the store. A first run seeds the
// schedule with two example entries so the app does not open empty.
func New(s *store.Store) (*State, error) {
	st := &State{store: s, theme: ThemeLight}

	if v, err := s.GetSetting("theme"); err == nil && Theme(v) == ThemeDark {
		st.theme = ThemeDark
	}

	var err error
	if st.goals, err = s.ListGoals(); err != nil {
		return nil, fmt.Errorf("hydrate goals: %w", err)
	}
	if st.sessions, err = s.ListSessions(); err != nil {
		return nil, fmt.Errorf("hydrate sessions: %w", err)
	}
	if st.schedule, err = s.ListSchedule(); err != nil {
		return nil, fmt.Errorf("hydrate schedule: %w", err)
	}

	if _, err := s.GetSetting("schedule_seeded"); err != nil {
		if len(st.schedule) == 0 {
			if _, err := s.AddScheduleItem("09:00", "Matemática - Álgebra", store.CategoryStudy); err != nil {
				return nil, fmt.Errorf("seed schedule: %w", err)
			}
			if _, err := s.AddScheduleItem("11:00", "História - Brasil Colônia", store.CategoryReview); err != nil {
				return nil, fmt.Errorf("seed schedule: %w", err)
			}
			if st.schedule, err = s.ListSchedule(); err != nil {
				return nil, fmt.Errorf("hydrate schedule: %w", err)
			}
		}
		if err := s.SetSetting("schedule_seeded", "1"); err != nil {
			return nil, fmt.Errorf("mark schedule seeded: %w", err)
		}
	}

	return st, nil
}

// --- Goals ---

func (st *State) Goals() []store.Goal {
	out := make([]store.Goal, len(st.goals))
	copy(out, st.goals)
	return out
}

func (st *State) AddGoal(text string) error {
	if text == "" {
		return fmt.Errorf("goal text must not be empty")
	}
	g, err := st.store.AddGoal(text)
	if err != nil {
		return err
	}
	// Newest first.
	st.goals = append([]store.Goal{*g}, st.goals...)
	return nil
}

// ToggleGoal flips completed and reports the new value.
func (st *State) ToggleGoal(id int64) (completed bool, err error) {
	for i := range st.goals {
		if st.goals[i].ID != id {
			continue
		}
		next := !st.goals[i].Completed
		if err := st.store.SetGoalCompleted(id, next); err != nil {
			return false, err
		}
		st.goals[i].Completed = next
		return next, nil
	}
	return false, fmt.Errorf("goal %d not found", id)
}

func (st *State) RemoveGoal(id int64) error {
	if err := st.store.DeleteGoal(id); err != nil {
		return err
	}
	for i := range st.goals {
		if st.goals[i].ID == id {
			st.goals = append(st.goals[:i], st.goals[i+1:]...)
			break
		}
	}
	return nil
}

func (st *State) CompletedGoals() int {
	n := 0
	for _, g := range st.goals {
		if g.Completed {
			n++
		}
	}
	return n
}

// --- Schedule ---

func (st *State) Schedule() []store.ScheduleItem {
	out := make([]store.ScheduleItem, len(st.schedule))
	copy(out, st.schedule)
	return out
}

func (st *State) AddScheduleItem(timeStr, subject, category string) error {
	if timeStr == "" || subject == "" {
		return fmt.Errorf("schedule item needs time and subject")
	}
	if _, err := st.store.AddScheduleItem(timeStr, subject, category); err != nil {
		return err
	}
	return st.reloadSchedule()
}

func (st *State) RemoveScheduleItem(id int64) error {
	if err := st.store.DeleteScheduleItem(id); err != nil {
		return err
	}
	for i := range st.schedule {
		if st.schedule[i].ID == id {
			st.schedule = append(st.schedule[:i], st.schedule[i+1:]...)
			break
		}
	}
	return nil
}

// ReplaceSchedule swaps the whole schedule for a generated plan. Each
// incoming item gets a fresh id and is forced to the study category;
// nothing is merged.
func (st *State) ReplaceSchedule(plan []PlanItem) error {
	items := make([]store.ScheduleItem, 0, len(plan))
	for _, p := range plan {
		items = append(items, store.ScheduleItem{
			Time:     p.Time,
			Subject:  p.Subject,
			Category: store.CategoryStudy,
		})
	}
	replaced, err := st.store.ReplaceSchedule(items)
	if err != nil {
		return err
	}
	st.schedule = replaced
	return nil
}

// NextUp is the first entry of the time-sorted schedule, or nil.
func (st *State) NextUp() *store.ScheduleItem {
	if len(st.schedule) == 0 {
		return nil
	}
	it := st.schedule[0]
	return &it
}

func (st *State) reloadSchedule() error {
	items, err := st.store.ListSchedule()
	if err != nil {
		return err
	}
	st.schedule = items
	return nil
}

// --- Sessions ---

func (st *State) Sessions() []store.StudySession {
	out := make([]store.StudySession, len(st.sessions))
	copy(out, st.sessions)
	return out
}

func (st *State) AppendSession(minutes int, sessionType string) error {
	sess, err := st.store.AppendSession(minutes, sessionType, time.Now())
	if err != nil {
		return err
	}
	st.sessions = append(st.sessions, *sess)
	return nil
}

func (st *State) SessionCount() int {
	return len(st.sessions)
}

// TotalStudyMinutes sums work sessions only; breaks do not count.
func (st *State) TotalStudyMinutes() int {
	total := 0
	for _, s := range st.sessions {
		if s.Type == store.SessionWork {
			total += s.Minutes
		}
	}
	return total
}

// --- Theme ---

func (st *State) Theme() Theme {
	return st.theme
}

func (st *State) SetTheme(t Theme) error {
	if err := st.store.SetSetting("theme", string(t)); err != nil {
		return err
	}
	st.theme = t
	return nil
}

// Store exposes the underlying store for settings reads the views need
// (countdown durations, notification opt-in).
func (st *State) Store() *store.Store {
	return st.store
}
