package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/audio"
	"focusflow/internal/store"
)

// timerModel is the Timer tab: mode selector plus the countdown.
type timerModel struct {
	countdown countdownModel
	width     int
	height    int
}

func newTimerModel(s *store.Store, cues audio.Cues) timerModel {
	return timerModel{countdown: newCountdownModel(s, cues)}
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		done, minutes, sessionType := t.countdown.tick()
		if done {
			return t, func() tea.Msg {
				return sessionCompletedMsg{minutes: minutes, sessionType: sessionType}
			}
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.StartPause):
			t.countdown.toggle()
		case key.Matches(msg, keys.Reset):
			t.countdown.reset()
		case key.Matches(msg, keys.Left):
			t.countdown.switchMode(prevMode(t.countdown.mode))
		case key.Matches(msg, keys.Right):
			t.countdown.switchMode(nextMode(t.countdown.mode))
		case key.Matches(msg, keys.TestSound):
			t.countdown.cues.PlayComplete()
			return t, func() tea.Msg {
				return statusMsg{text: "Som de notificação testado"}
			}
		}
	}
	return t, nil
}

func nextMode(m countdownMode) countdownMode {
	return (m + 1) % 3
}

func prevMode(m countdownMode) countdownMode {
	return (m + 2) % 3
}

func (t timerModel) view() string {
	w := t.width - 4

	title := titleStyle.Render("Timer de Estudo")

	// Mode selector rendered as tabs
	var tabs []string
	for m := modeWork; m <= modeLongBreak; m++ {
		if m == t.countdown.mode {
			tabs = append(tabs, selectedItemStyle.Render("[ "+modeNames[m]+" ]"))
		} else {
			tabs = append(tabs, mutedStyle.Render("  "+modeNames[m]+"  "))
		}
	}
	modeRow := strings.Join(tabs, " ")

	display := bigCountdown(t.countdown.remaining)
	var timeDisplay string
	switch {
	case t.countdown.running:
		timeDisplay = timerRunningStyle.Width(w - 6).Render(display)
	case t.countdown.remaining == 0:
		timeDisplay = timerStyle.Width(w - 6).Render(display)
	default:
		timeDisplay = timerPausedStyle.Width(w - 6).Render(display)
	}

	var stateLabel string
	switch {
	case t.countdown.remaining == 0:
		stateLabel = successStyle.Bold(true).Render("Sessão finalizada! r para reiniciar")
	case t.countdown.running:
		stateLabel = successStyle.Render("Em andamento")
	case t.countdown.remaining < t.countdown.fullDuration():
		stateLabel = warningStyle.Render("Pausado")
	default:
		stateLabel = mutedStyle.Render("Pronto — s para começar")
	}

	bar := renderTimeBar(t.countdown.remaining, t.countdown.fullDuration(), min(w-10, 40))

	controls := mutedStyle.Render("s: iniciar/pausar  r: reiniciar  ←/→: modo  t: testar som")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		modeRow,
		"",
		timeDisplay,
		"",
		bar,
		stateLabel,
		"",
		controls,
	)

	return activePanelStyle.Width(w).Render(content)
}

// bigCountdown renders MM:SS in a larger block-style face.
func bigCountdown(seconds int) string {
	return "  " + formatCountdown(seconds) + "  "
}

func renderTimeBar(remaining, total, width int) string {
	if width < 4 || total <= 0 {
		return ""
	}
	filled := width * (total - remaining) / total
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteString(highlightStyle.Render("█"))
		} else {
			b.WriteString(mutedStyle.Render("░"))
		}
	}
	return b.String()
}
