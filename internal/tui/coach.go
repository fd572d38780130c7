package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/coach"
)

var difficulties = []string{"Fácil", "Médio", "Difícil"}

// coachModel is the AI tab: tips on demand plus whole-schedule
// generation from a free-form goal.
type coachModel struct {
	ai     *coach.Client
	width  int
	height int

	advice     string
	isLoading  bool
	isPlanning bool

	formActive bool
	form       *huh.Form
	formType   string // "advice", "plan"

	formSubject    *string
	formDifficulty *string
	formGoal       *string
}

func newCoachModel(ai *coach.Client) coachModel {
	subject, difficulty, goal := "", "Médio", ""
	return coachModel{
		ai:             ai,
		formSubject:    &subject,
		formDifficulty: &difficulty,
		formGoal:       &goal,
	}
}

func (c *coachModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c coachModel) update(msg tea.Msg) (coachModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case adviceMsg:
		c.isLoading = false
		c.advice = msg.text
		return c, nil

	case planMsg:
		c.isPlanning = false
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.New):
			if !c.isLoading {
				return c.showAdviceForm()
			}
		case key.Matches(msg, keys.Enter):
			if !c.isPlanning {
				return c.showPlanForm()
			}
		}
	}
	return c, nil
}

func (c coachModel) showAdviceForm() (coachModel, tea.Cmd) {
	*c.formSubject = ""
	*c.formDifficulty = "Médio"
	c.formType = "advice"

	diffOptions := make([]huh.Option[string], len(difficulties))
	for i, d := range difficulties {
		diffOptions[i] = huh.NewOption(d, d)
	}

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Matéria").Placeholder("Matemática").Value(c.formSubject),
			huh.NewSelect[string]().Title("Dificuldade").Options(diffOptions...).Value(c.formDifficulty),
		),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c coachModel) showPlanForm() (coachModel, tea.Cmd) {
	*c.formGoal = ""
	c.formType = "plan"

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Objetivo de Estudo").
				Placeholder("Passar no vestibular de Medicina").
				Value(c.formGoal),
		),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c coachModel) updateForm(msg tea.Msg) (coachModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		switch c.formType {
		case "advice":
			if strings.TrimSpace(*c.formSubject) == "" {
				return c, nil
			}
			c.isLoading = true
			subject, difficulty := *c.formSubject, *c.formDifficulty
			return c, c.fetchAdvice(subject, difficulty)
		case "plan":
			if strings.TrimSpace(*c.formGoal) == "" {
				return c, nil
			}
			c.isPlanning = true
			goal := *c.formGoal
			return c, c.fetchPlan(goal)
		}
	}

	return c, cmd
}

func (c coachModel) fetchAdvice(subject, difficulty string) tea.Cmd {
	return func() tea.Msg {
		return adviceMsg{text: c.ai.Advice(context.Background(), subject, difficulty)}
	}
}

func (c coachModel) fetchPlan(goal string) tea.Cmd {
	return func() tea.Msg {
		return planMsg{items: c.ai.GenerateSchedule(context.Background(), goal)}
	}
}

func (c coachModel) view() string {
	w := c.width - 4

	if c.formActive && c.form != nil {
		title := titleStyle.Render("Dicas de Estudo")
		if c.formType == "plan" {
			title = titleStyle.Render("Gerar Cronograma")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("IA Coach")

	var body string
	switch {
	case c.isLoading:
		body = mutedStyle.Render("Consultando a IA…")
	case c.isPlanning:
		body = mutedStyle.Render("Gerando cronograma…")
	case c.advice != "":
		body = normalItemStyle.Width(w - 8).Render(c.advice)
	default:
		body = mutedStyle.Render("Peça uma dica de estudo ou gere um cronograma completo.")
	}

	if c.ai.Offline() {
		body += "\n\n" + warningStyle.Render("Modo offline: defina GEMINI_API_KEY para ativar a IA.")
	}

	controls := mutedStyle.Render("  n: pedir dica  enter: gerar cronograma")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", controls),
	)
}
