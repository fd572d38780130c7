package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/state"
	"focusflow/internal/store"
)

// dashboardModel is the landing view: today's stats plus previews of
// the schedule and goals.
type dashboardModel struct {
	width  int
	height int
}

func newDashboardModel() dashboardModel {
	return dashboardModel{}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) view(st *state.State) string {
	if d.width < 20 {
		return "Terminal muito pequeno"
	}

	contentWidth := d.width - 4

	cards := d.renderStatCards(st, contentWidth)
	schedule := d.renderSchedulePreview(st, contentWidth)
	goals := d.renderGoalsPreview(st, contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, cards, schedule, goals)
}

func (d dashboardModel) renderStatCards(st *state.State, w int) string {
	cardWidth := (w - 6) / 3
	if cardWidth < 14 {
		cardWidth = 14
	}

	goals := st.Goals()
	study := statCard(cardWidth, "Tempo de Estudo",
		highlightStyle.Bold(true).Render(formatMinutes(st.TotalStudyMinutes())))
	completed := statCard(cardWidth, "Metas Concluídas",
		successStyle.Bold(true).Render(fmt.Sprintf("%d/%d", st.CompletedGoals(), len(goals))))
	sessions := statCard(cardWidth, "Sessões de Foco",
		accentStyle.Bold(true).Render(fmt.Sprintf("%d", st.SessionCount())))

	return lipgloss.JoinHorizontal(lipgloss.Top, study, " ", completed, " ", sessions)
}

func statCard(w int, label, value string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		mutedStyle.Render(label),
		value,
	)
	return panelStyle.Width(w).Align(lipgloss.Center).Render(content)
}

func (d dashboardModel) renderSchedulePreview(st *state.State, w int) string {
	title := titleStyle.Render("Próximas Atividades")

	items := st.Schedule()
	if len(items) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("Nenhuma atividade agendada"),
		)
		return panelStyle.Width(w).Render(content)
	}

	rows := []string{title}
	next := st.NextUp()
	limit := len(items)
	if limit > 4 {
		limit = 4
	}
	for _, item := range items[:limit] {
		marker := "  "
		style := normalItemStyle
		if next != nil && item.ID == next.ID {
			marker = "▸ "
			style = selectedItemStyle
		}
		row := fmt.Sprintf("%s%s  %-24s %s",
			marker,
			highlightStyle.Render(item.Time),
			item.Subject,
			categoryBadge(item.Category),
		)
		rows = append(rows, style.Render(row))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderGoalsPreview(st *state.State, w int) string {
	title := titleStyle.Render("Metas de Hoje")

	goals := st.Goals()
	if len(goals) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("Nenhuma meta ainda. Pressione 4 para adicionar."),
		)
		return panelStyle.Width(w).Render(content)
	}

	rows := []string{title}
	limit := len(goals)
	if limit > 4 {
		limit = 4
	}
	for _, g := range goals[:limit] {
		rows = append(rows, "  "+renderGoalLine(g))
	}
	if len(goals) > limit {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … e mais %d", len(goals)-limit)))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func renderGoalLine(g store.Goal) string {
	if g.Completed {
		return successStyle.Render("✓ ") + mutedStyle.Strikethrough(true).Render(g.Text)
	}
	return mutedStyle.Render("○ ") + normalItemStyle.Render(g.Text)
}

func categoryBadge(category string) string {
	switch category {
	case store.CategoryStudy:
		return highlightStyle.Render("[" + category + "]")
	case store.CategoryReview:
		return warningStyle.Render("[" + category + "]")
	case store.CategoryExercises:
		return accentStyle.Render("[" + category + "]")
	case store.CategoryBreak:
		return successStyle.Render("[" + category + "]")
	}
	return mutedStyle.Render("[" + category + "]")
}
