package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/state"
	"focusflow/internal/store"
)

// progressModel charts study minutes per day over a 7-day window.
type progressModel struct {
	state  *state.State
	width  int
	height int

	days   []store.DailyMinutes
	offset int // 7-day blocks back from today (0 = current)

	chart barchart.Model
}

func newProgressModel(st *state.State) progressModel {
	return progressModel{
		state: st,
		chart: barchart.New(60, 12),
	}
}

func (p *progressModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p progressModel) refresh() tea.Cmd {
	return func() tea.Msg {
		from, to := p.dateRange()
		days, _ := p.state.Store().WorkMinutesByDay(from, to)
		return progressDataMsg{days: days}
	}
}

func (p progressModel) dateRange() (time.Time, time.Time) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := today.AddDate(0, 0, 1-7*p.offset)
	return end.AddDate(0, 0, -7), end
}

func (p progressModel) update(msg tea.Msg) (progressModel, tea.Cmd) {
	switch msg := msg.(type) {
	case progressDataMsg:
		p.days = msg.days
		p.buildChart()
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			p.offset++
			return p, p.refresh()
		case key.Matches(msg, keys.Right):
			if p.offset > 0 {
				p.offset--
			}
			return p, p.refresh()
		}
	}
	return p, nil
}

func (p *progressModel) buildChart() {
	chartWidth := max(p.width-8, 20)
	chartHeight := 12
	if p.height > 30 {
		chartHeight = 16
	}

	p.chart = barchart.New(chartWidth, chartHeight)

	byDate := make(map[string]int, len(p.days))
	for _, d := range p.days {
		byDate[d.Date] = d.Minutes
	}

	from, to := p.dateRange()
	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		minutes := byDate[d.Format("2006-01-02")]
		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if minutes == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: d.Format("Mon 02"),
			Values: []barchart.BarValue{
				{Name: d.Format("2006-01-02"), Value: float64(minutes), Style: style},
			},
		})
	}

	p.chart.PushAll(bars)
	p.chart.Draw()
}

func (p progressModel) view() string {
	w := p.width - 4

	from, to := p.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s — %s",
		from.Format("02 Jan"), to.AddDate(0, 0, -1).Format("02 Jan 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Progresso Semanal"), "  ", dateLabel,
	)

	chartView := p.chart.View()
	summary := p.renderSummary()
	nav := mutedStyle.Render("  ←/→: semana anterior/seguinte")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", summary, "", nav,
		),
	)
}

func (p progressModel) renderSummary() string {
	total := 0
	best := store.DailyMinutes{}
	for _, d := range p.days {
		total += d.Minutes
		if d.Minutes > best.Minutes {
			best = d
		}
	}

	if total == 0 {
		return mutedStyle.Render("  Nenhuma sessão de foco neste período")
	}

	var rows []string
	rows = append(rows, fmt.Sprintf("  Total na semana: %s", highlightStyle.Render(formatMinutes(total))))
	rows = append(rows, fmt.Sprintf("  Média diária:    %s", formatMinutes(total/7)))
	if best.Date != "" {
		rows = append(rows, fmt.Sprintf("  Melhor dia:      %s (%s)", best.Date, formatMinutes(best.Minutes)))
	}
	return strings.Join(rows, "\n")
}
