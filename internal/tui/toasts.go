package tui

import (
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/notify"
)

// renderToasts stacks the visible notifications, newest on top,
// right-aligned to the given width.
func renderToasts(queue *notify.Queue, width int) string {
	items := queue.Items()
	if len(items) == 0 {
		return ""
	}

	boxWidth := min(width-4, 44)
	var boxes []string
	for _, n := range items {
		style := toastStyle
		if n.Kind == notify.KindMotivation {
			style = toastAccentStyle
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(n.Title),
			normalItemStyle.Width(boxWidth-4).Render(n.Message),
		)
		boxes = append(boxes, style.Width(boxWidth).Render(body))
	}

	stack := lipgloss.JoinVertical(lipgloss.Right, boxes...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}
