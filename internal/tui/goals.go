package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/audio"
	"focusflow/internal/state"
)

type goalsModel struct {
	state  *state.State
	cues   audio.Cues
	width  int
	height int

	cursor int

	formActive bool
	form       *huh.Form
	formText   *string
}

func newGoalsModel(st *state.State, cues audio.Cues) goalsModel {
	text := ""
	return goalsModel{
		state:    st,
		cues:     cues,
		formText: &text,
	}
}

func (g *goalsModel) setSize(w, h int) {
	g.width = w
	g.height = h
}

func (g goalsModel) update(msg tea.Msg) (goalsModel, tea.Cmd) {
	if g.formActive && g.form != nil {
		return g.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		goals := g.state.Goals()
		switch {
		case key.Matches(msg, keys.Up):
			if g.cursor > 0 {
				g.cursor--
			}
		case key.Matches(msg, keys.Down):
			if g.cursor < len(goals)-1 {
				g.cursor++
			}
		case key.Matches(msg, keys.New):
			return g.showAddForm()
		case key.Matches(msg, keys.Enter):
			if len(goals) > 0 {
				completed, err := g.state.ToggleGoal(goals[g.cursor].ID)
				if err != nil {
					return g, func() tea.Msg {
						return statusMsg{text: fmt.Sprintf("Erro: %v", err), isError: true}
					}
				}
				if completed {
					g.cues.PlaySuccess()
					return g, func() tea.Msg {
						return statusMsg{text: "Meta concluída! 🎉"}
					}
				}
			}
		case key.Matches(msg, keys.Delete):
			if len(goals) > 0 {
				if err := g.state.RemoveGoal(goals[g.cursor].ID); err != nil {
					return g, func() tea.Msg {
						return statusMsg{text: fmt.Sprintf("Erro: %v", err), isError: true}
					}
				}
				if g.cursor >= len(goals)-1 {
					g.cursor = max(0, len(goals)-2)
				}
			}
		}
	}
	return g, nil
}

func (g goalsModel) showAddForm() (goalsModel, tea.Cmd) {
	*g.formText = ""

	g.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nova Meta").
				Placeholder("Ler capítulo 3 de Biologia").
				Value(g.formText),
		),
	).WithShowHelp(true).WithShowErrors(true)

	g.formActive = true
	return g, g.form.Init()
}

func (g goalsModel) updateForm(msg tea.Msg) (goalsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			g.formActive = false
			g.form = nil
			return g, nil
		}
	}

	form, cmd := g.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		g.form = f
	}

	if g.form.State == huh.StateCompleted {
		g.formActive = false
		if strings.TrimSpace(*g.formText) != "" {
			if err := g.state.AddGoal(*g.formText); err != nil {
				return g, func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Erro: %v", err), isError: true}
				}
			}
			g.cursor = 0
			return g, func() tea.Msg {
				return statusMsg{text: "Meta adicionada"}
			}
		}
	}

	return g, cmd
}

func (g goalsModel) view() string {
	w := g.width - 4

	if g.formActive && g.form != nil {
		title := titleStyle.Render("Adicionar Meta")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", g.form.View())
		return panelStyle.Width(w).Render(content)
	}

	goals := g.state.Goals()
	completed := g.state.CompletedGoals()

	title := titleStyle.Render("Metas Diárias")
	counter := mutedStyle.Render(fmt.Sprintf("  %d/%d concluídas", completed, len(goals)))

	if len(goals) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Nenhuma meta ainda. Pressione n para adicionar."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title+counter)
	rows = append(rows, renderGoalProgress(completed, len(goals), min(w-8, 40)))
	rows = append(rows, "")

	for i, goal := range goals {
		cursor := "  "
		if i == g.cursor {
			cursor = selectedItemStyle.Render("> ")
		}
		rows = append(rows, cursor+renderGoalLine(goal))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: nova  enter: concluir  d: remover"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func renderGoalProgress(done, total, width int) string {
	if total == 0 || width < 4 {
		return ""
	}
	filled := width * done / total
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteString(successStyle.Render("█"))
		} else {
			b.WriteString(mutedStyle.Render("░"))
		}
	}
	return b.String() + mutedStyle.Render(fmt.Sprintf(" %d%%", 100*done/total))
}
