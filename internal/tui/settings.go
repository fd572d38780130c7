package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/store"
)

// settingsModel is the settings overlay, opened from any view.
type settingsModel struct {
	store  *store.Store
	width  int
	height int

	form *huh.Form

	// Form values as pointers (survive value copies)
	theme         *string
	notifications *bool
	workMin       *string
	shortBreakMin *string
	longBreakMin  *string
}

func newSettingsModel(s *store.Store) settingsModel {
	theme, wm, sb, lb := "", "", "", ""
	notif := false
	return settingsModel{
		store:         s,
		theme:         &theme,
		notifications: &notif,
		workMin:       &wm,
		shortBreakMin: &sb,
		longBreakMin:  &lb,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) open() (settingsModel, tea.Cmd) {
	*s.theme = s.getVal("theme", "light")
	*s.notifications = s.store.GetSettingBool("notifications_enabled")
	*s.workMin = strconv.Itoa(s.store.GetSettingInt("work_seconds", 1500) / 60)
	*s.shortBreakMin = strconv.Itoa(s.store.GetSettingInt("short_break_seconds", 300) / 60)
	*s.longBreakMin = strconv.Itoa(s.store.GetSettingInt("long_break_seconds", 900) / 60)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Tema").
				Options(
					huh.NewOption("Claro", "light"),
					huh.NewOption("Escuro", "dark"),
				).Value(s.theme),
			huh.NewConfirm().Title("Notificações do sistema").
				Affirmative("Ativadas").Negative("Desativadas").
				Value(s.notifications),
		).Title("Aparência"),
		huh.NewGroup(
			huh.NewInput().Title("Foco (min)").Value(s.workMin),
			huh.NewInput().Title("Pausa curta (min)").Value(s.shortBreakMin),
			huh.NewInput().Title("Pausa longa (min)").Value(s.longBreakMin),
		).Title("Timer"),
	).WithShowHelp(true).WithShowErrors(true)

	return s, s.form.Init()
}

// update drives the overlay form. done reports that the overlay should
// close; the returned cmd carries settingsSavedMsg when values were
// persisted.
func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd, bool) {
	if s.form == nil {
		return s, nil, true
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.form = nil
			return s, nil, true
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.save()
		theme, notifications := *s.theme, *s.notifications
		s.form = nil
		return s, func() tea.Msg {
			return settingsSavedMsg{theme: theme, notifications: notifications}
		}, true
	}

	return s, cmd, false
}

func (s settingsModel) save() {
	s.store.SetSetting("theme", *s.theme)
	s.store.SetSettingBool("notifications_enabled", *s.notifications)
	s.store.SetSetting("work_seconds", minutesToSeconds(*s.workMin, 1500))
	s.store.SetSetting("short_break_seconds", minutesToSeconds(*s.shortBreakMin, 300))
	s.store.SetSetting("long_break_seconds", minutesToSeconds(*s.longBreakMin, 900))
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4
	if s.form == nil {
		return ""
	}
	title := titleStyle.Render("Configurações")
	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
	)
}

// minutesToSeconds converts a minutes input to stored seconds, keeping
// the fallback when the input does not parse to a positive number.
func minutesToSeconds(s string, fallback int) string {
	mins, err := strconv.Atoi(s)
	if err != nil || mins <= 0 {
		return strconv.Itoa(fallback)
	}
	return strconv.Itoa(mins * 60)
}
