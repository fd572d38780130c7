package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/state"
	"focusflow/internal/store"
)

var scheduleCategories = []string{
	store.CategoryStudy,
	store.CategoryReview,
	store.CategoryExercises,
	store.CategoryBreak,
}

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type scheduleModel struct {
	state  *state.State
	width  int
	height int

	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTime     *string
	formSubject  *string
	formCategory *string
}

func newScheduleModel(st *state.State) scheduleModel {
	timeStr, subject, category := "", "", store.CategoryStudy
	return scheduleModel{
		state:        st,
		formTime:     &timeStr,
		formSubject:  &subject,
		formCategory: &category,
	}
}

func (s *scheduleModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s scheduleModel) update(msg tea.Msg) (scheduleModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		items := s.state.Schedule()
		// The collection can shrink underneath the view (bulk
		// replacement by a generated plan), so re-clamp before
		// indexing.
		if s.cursor >= len(items) {
			s.cursor = max(0, len(items)-1)
		}
		switch {
		case key.Matches(msg, keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, keys.Down):
			if s.cursor < len(items)-1 {
				s.cursor++
			}
		case key.Matches(msg, keys.New):
			return s.showAddForm()
		case key.Matches(msg, keys.Delete):
			if len(items) > 0 {
				item := items[s.cursor]
				if err := s.state.RemoveScheduleItem(item.ID); err != nil {
					return s, func() tea.Msg {
						return statusMsg{text: fmt.Sprintf("Erro: %v", err), isError: true}
					}
				}
				if s.cursor >= len(items)-1 {
					s.cursor = max(0, len(items)-2)
				}
			}
		}
	}
	return s, nil
}

func (s scheduleModel) showAddForm() (scheduleModel, tea.Cmd) {
	*s.formTime = ""
	*s.formSubject = ""
	*s.formCategory = store.CategoryStudy

	catOptions := make([]huh.Option[string], len(scheduleCategories))
	for i, c := range scheduleCategories {
		catOptions[i] = huh.NewOption(c, c)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Horário").
				Placeholder("09:00").
				Value(s.formTime).
				Validate(func(v string) error {
					if !timeOfDayRe.MatchString(v) {
						return fmt.Errorf("use o formato HH:MM")
					}
					return nil
				}),
			huh.NewInput().Title("Matéria").Value(s.formSubject),
			huh.NewSelect[string]().Title("Categoria").Options(catOptions...).Value(s.formCategory),
		),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s scheduleModel) updateForm(msg tea.Msg) (scheduleModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		if *s.formSubject != "" {
			if err := s.state.AddScheduleItem(*s.formTime, *s.formSubject, *s.formCategory); err != nil {
				return s, func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Erro: %v", err), isError: true}
				}
			}
			return s, func() tea.Msg {
				return statusMsg{text: "Atividade adicionada"}
			}
		}
	}

	return s, cmd
}

func (s scheduleModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Nova Atividade")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Cronograma de Estudos")
	items := s.state.Schedule()

	if len(items) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Cronograma vazio. Pressione n para adicionar ou use o IA Coach."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	next := s.state.NextUp()
	for i, item := range items {
		cursor := "  "
		style := normalItemStyle
		if i == s.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		marker := " "
		if next != nil && item.ID == next.ID {
			marker = highlightStyle.Render("▸")
		}
		row := fmt.Sprintf("%s%s %s  %-28s %s",
			cursor,
			marker,
			highlightStyle.Render(item.Time),
			item.Subject,
			categoryBadge(item.Category),
		)
		rows = append(rows, style.Render(row))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: nova  d: remover  ↑/↓: navegar"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
