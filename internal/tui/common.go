package tui

import (
	"fmt"
	"time"

	"focusflow/internal/coach"
	"focusflow/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewTimer
	viewSchedule
	viewGoals
	viewProgress
	viewCoach
)

var viewNames = []string{"Dashboard", "Timer", "Cronograma", "Metas", "Progresso", "IA Coach"}

const viewCount = 6

// --- Messages ---

type tickMsg time.Time

// periodicNoticeMsg fires every notification interval.
type periodicNoticeMsg time.Time

// toastExpiredMsg removes one notification after its TTL.
type toastExpiredMsg struct {
	id string
}

// sessionCompletedMsg is emitted exactly once per run-to-zero.
type sessionCompletedMsg struct {
	minutes     int
	sessionType string
}

type adviceMsg struct {
	text string
}

type planMsg struct {
	items []coach.PlanItem
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// settingsSavedMsg carries the values the settings overlay persisted.
type settingsSavedMsg struct {
	theme         string
	notifications bool
}

type progressDataMsg struct {
	days []store.DailyMinutes
}

// --- Helpers ---

// formatCountdown renders remaining seconds as MM:SS.
func formatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func formatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%d min", m)
	}
	return fmt.Sprintf("%dh%02d", m/60, m%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
