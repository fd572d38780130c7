package store

import "time"

// Schedule item categories. The app keeps the original Portuguese
// labels; they are stored verbatim.
const (
	CategoryStudy     = "Estudo"
	CategoryReview    = "Revisão"
	CategoryExercises = "Exercícios"
	CategoryBreak     = "Pausa"
)

var Categories = []string{CategoryStudy, CategoryReview, CategoryExercises, CategoryBreak}

// Session types recorded by the countdown engine.
const (
	SessionWork       = "work"
	SessionShortBreak = "shortBreak"
	SessionLongBreak  = "longBreak"
)

type Goal struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
}

type ScheduleItem struct {
	ID       int64
	Time     string // "HH:MM", zero-padded
	Subject  string
	Category string
}

// StudySession is one completed countdown run. Append-only: the UI
// never mutates or deletes rows.
type StudySession struct {
	ID        int64
	Minutes   int
	Type      string
	Timestamp time.Time
}

type Setting struct {
	Key   string
	Value string
}

// DailyMinutes aggregates completed work minutes per calendar day.
type DailyMinutes struct {
	Date    string // "2006-01-02"
	Minutes int
}
