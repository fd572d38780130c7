package state

import (
	"testing"

	"focusflow/internal/store"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	st, err := New(s)
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	return st
}

func TestFirstRunSeedsSchedule(t *testing.T) {
	st := newTestState(t)
	items := st.Schedule()
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded items, got %d", len(items))
	}
	if items[0].Time != "09:00" || items[1].Time != "11:00" {
		t.Fatalf("unexpected seed: %v", items)
	}
}

func TestSeedHappensOnlyOnce(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	st, err := New(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range st.Schedule() {
		if err := st.RemoveScheduleItem(it.ID); err != nil {
			t.Fatal(err)
		}
	}

	// A rehydrated state over the same store must not reseed.
	st2, err := New(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(st2.Schedule()) != 0 {
		t.Fatal("schedule reseeded after user cleared it")
	}
}

func TestNewSurfacesStoreErrors(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := New(s); err == nil {
		t.Fatal("expected an error from a closed store")
	}
}

func TestGoalLifecycle(t *testing.T) {
	st := newTestState(t)

	if err := st.AddGoal("Ler capítulo 3"); err != nil {
		t.Fatal(err)
	}
	if err := st.AddGoal("Resolver exercícios"); err != nil {
		t.Fatal(err)
	}

	goals := st.Goals()
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[0].Text != "Resolver exercícios" {
		t.Fatal("goals should be newest-first")
	}

	completed, err := st.ToggleGoal(goals[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if !completed {
		t.Fatal("toggle should complete the goal")
	}
	if st.CompletedGoals() != 1 {
		t.Fatalf("expected 1 completed, got %d", st.CompletedGoals())
	}

	completed, err = st.ToggleGoal(goals[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if completed || st.CompletedGoals() != 0 {
		t.Fatal("second toggle should restore incomplete")
	}

	if err := st.RemoveGoal(goals[0].ID); err != nil {
		t.Fatal(err)
	}
	if len(st.Goals()) != 1 {
		t.Fatal("goal not removed")
	}
}

func TestAddGoalEmpty(t *testing.T) {
	st := newTestState(t)
	if err := st.AddGoal(""); err == nil {
		t.Fatal("expected error for empty goal")
	}
}

func TestToggleUnknownGoal(t *testing.T) {
	st := newTestState(t)
	if _, err := st.ToggleGoal(999); err == nil {
		t.Fatal("expected error for unknown goal")
	}
}

func TestScheduleInsertKeepsOrder(t *testing.T) {
	st := newTestState(t)
	// Seeds are 09:00 and 11:00.
	if err := st.AddScheduleItem("08:30", "Física", store.CategoryExercises); err != nil {
		t.Fatal(err)
	}
	items := st.Schedule()
	want := []string{"08:30", "09:00", "11:00"}
	for i, w := range want {
		if items[i].Time != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, items[i].Time)
		}
	}
}

func TestNextUp(t *testing.T) {
	st := newTestState(t)
	next := st.NextUp()
	if next == nil || next.Time != "09:00" {
		t.Fatalf("expected 09:00 next, got %+v", next)
	}

	for _, it := range st.Schedule() {
		st.RemoveScheduleItem(it.ID)
	}
	if st.NextUp() != nil {
		t.Fatal("expected nil next-up for empty schedule")
	}
}

func TestReplaceScheduleForcesStudyCategory(t *testing.T) {
	st := newTestState(t)
	prior := st.Schedule()

	err := st.ReplaceSchedule([]PlanItem{
		{Time: "14:00", Subject: "Cálculo 1"},
		{Time: "15:00", Subject: "Pausa para café"},
		{Time: "13:00", Subject: "Revisão"},
	})
	if err != nil {
		t.Fatal(err)
	}

	items := st.Schedule()
	if len(items) != 3 {
		t.Fatalf("expected exactly 3 items, got %d", len(items))
	}
	if items[0].Time != "13:00" {
		t.Fatal("replaced schedule should be time-sorted")
	}
	seen := map[int64]bool{}
	for _, it := range items {
		if it.Category != store.CategoryStudy {
			t.Fatalf("expected category %q, got %q", store.CategoryStudy, it.Category)
		}
		if seen[it.ID] {
			t.Fatal("duplicate id after replacement")
		}
		seen[it.ID] = true
		for _, p := range prior {
			if p.ID == it.ID {
				t.Fatal("replacement should not reuse prior ids")
			}
		}
	}
}

func TestTotalStudyMinutesCountsWorkOnly(t *testing.T) {
	st := newTestState(t)
	st.AppendSession(25, store.SessionWork)
	st.AppendSession(5, store.SessionShortBreak)
	st.AppendSession(15, store.SessionLongBreak)
	st.AppendSession(25, store.SessionWork)

	if got := st.TotalStudyMinutes(); got != 50 {
		t.Fatalf("expected 50 work minutes, got %d", got)
	}
	if got := st.SessionCount(); got != 4 {
		t.Fatalf("expected 4 sessions, got %d", got)
	}
}

func TestThemePersists(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	st, _ := New(s)
	if st.Theme() != ThemeLight {
		t.Fatal("default theme should be light")
	}
	if err := st.SetTheme(ThemeDark); err != nil {
		t.Fatal(err)
	}

	st2, _ := New(s)
	if st2.Theme() != ThemeDark {
		t.Fatal("theme should survive rehydration")
	}
}

func TestHydrationFromExistingStore(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	st, _ := New(s)
	st.AddGoal("persistida")
	st.AppendSession(25, store.SessionWork)

	st2, err := New(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(st2.Goals()) != 1 || st2.Goals()[0].Text != "persistida" {
		t.Fatal("goals not hydrated")
	}
	if st2.TotalStudyMinutes() != 25 {
		t.Fatal("sessions not hydrated")
	}
}
