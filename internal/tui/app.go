package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/audio"
	"focusflow/internal/coach"
	"focusflow/internal/export"
	"focusflow/internal/notify"
	"focusflow/internal/player"
	"focusflow/internal/state"
)

const periodicInterval = 3 * time.Minute

// App is the root Bubble Tea model.
type App struct {
	state  *state.State
	width  int
	height int

	activeView     viewState
	showHelp       bool
	settingsActive bool
	exportPicking  bool
	exportCursor   int

	source      *notify.Source
	queue       notify.Queue
	sink        notify.SystemSink
	sinkEnabled bool

	dashboard dashboardModel
	timer     timerModel
	schedule  scheduleModel
	goals     goalsModel
	progress  progressModel
	coach     coachModel
	settings  settingsModel
	music     musicModel

	help   help.Model
	status string
}

func NewApp(st *state.State, ai *coach.Client, pl *player.Player, cues audio.Cues, sink notify.SystemSink) App {
	h := help.New()
	h.ShowAll = false

	return App{
		state:       st,
		activeView:  viewDashboard,
		source:      notify.NewSource(nil),
		sink:        sink,
		sinkEnabled: st.Store().GetSettingBool("notifications_enabled"),
		dashboard:   newDashboardModel(),
		timer:       newTimerModel(st.Store(), cues),
		schedule:    newScheduleModel(st),
		goals:       newGoalsModel(st, cues),
		progress:    newProgressModel(st),
		coach:       newCoachModel(ai),
		settings:    newSettingsModel(st.Store()),
		music:       newMusicModel(pl),
		help:        h,
	}
}

func (a App) Init() tea.Cmd {
	applyTheme(a.state.Theme())
	return tea.Batch(tickCmd(), periodicCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func periodicCmd() tea.Cmd {
	return tea.Tick(periodicInterval, func(t time.Time) tea.Msg {
		return periodicNoticeMsg(t)
	})
}

// push enqueues a notification, mirrors it to the system sink when
// enabled, and arms its expiry.
func (a *App) push(n notify.Notification) tea.Cmd {
	a.queue.Push(n)
	if a.sinkEnabled {
		a.sink.Send(n.Title, n.Message)
	}
	id := n.ID
	return tea.Tick(n.TTL(), func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 5 // header + music strip + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.timer.setSize(a.width, contentHeight)
		a.schedule.setSize(a.width, contentHeight)
		a.goals.setSize(a.width, contentHeight)
		a.progress.setSize(a.width, contentHeight)
		a.coach.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.settingsActive {
			return a.updateSettings(msg)
		}
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Bell):
			return a, a.push(a.source.Manual())
		case key.Matches(msg, keys.Settings):
			var cmd tea.Cmd
			a.settings, cmd = a.settings.open()
			a.settingsActive = true
			return a, cmd
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Music), key.Matches(msg, keys.Mute),
			key.Matches(msg, keys.NextTrack), key.Matches(msg, keys.PrevTrack),
			key.Matches(msg, keys.VolUp), key.Matches(msg, keys.VolDown):
			var cmd tea.Cmd
			a.music, cmd = a.music.update(msg)
			return a, cmd
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewTimer
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewSchedule
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewGoals
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewProgress
			return a, a.progress.refresh()
		case key.Matches(msg, keys.Tab6):
			a.activeView = viewCoach
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewCount
			if a.activeView == viewProgress {
				return a, a.progress.refresh()
			}
			return a, nil
		}

	case tickMsg:
		cmds = append(cmds, tickCmd())
		// The countdown runs regardless of which tab is visible.
		var cmd tea.Cmd
		a.timer, cmd = a.timer.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case periodicNoticeMsg:
		return a, tea.Batch(periodicCmd(), a.push(a.source.Periodic()))

	case toastExpiredMsg:
		a.queue.Dismiss(msg.id)
		return a, nil

	case sessionCompletedMsg:
		if err := a.state.AppendSession(msg.minutes, msg.sessionType); err != nil {
			a.status = fmt.Sprintf("Erro ao salvar sessão: %v", err)
			return a, nil
		}
		a.status = fmt.Sprintf("Sessão de %s registrada", formatMinutes(msg.minutes))
		return a, a.push(notify.SessionComplete())

	case planMsg:
		var cmd tea.Cmd
		a.coach, cmd = a.coach.update(msg)
		if msg.items == nil {
			a.status = "A IA não conseguiu gerar um cronograma"
			return a, cmd
		}
		plan := make([]state.PlanItem, len(msg.items))
		for i, item := range msg.items {
			plan[i] = state.PlanItem{Time: item.Time, Subject: item.Subject}
		}
		if err := a.state.ReplaceSchedule(plan); err != nil {
			a.status = fmt.Sprintf("Erro: %v", err)
			return a, cmd
		}
		a.schedule.cursor = 0
		a.activeView = viewSchedule
		return a, tea.Batch(cmd, a.push(notify.ScheduleGenerated()))

	case adviceMsg:
		var cmd tea.Cmd
		a.coach, cmd = a.coach.update(msg)
		return a, cmd

	case settingsSavedMsg:
		return a.applySettings(msg)

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exportado para " + msg.path
		a.exportPicking = false
		return a, nil
	}

	if a.settingsActive {
		return a.updateSettings(msg)
	}
	return a.updateActiveView(msg)
}

func (a App) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var done bool
	a.settings, cmd, done = a.settings.update(msg)
	if done {
		a.settingsActive = false
	}
	return a, cmd
}

func (a App) applySettings(msg settingsSavedMsg) (tea.Model, tea.Cmd) {
	theme := state.ThemeLight
	if msg.theme == "dark" {
		theme = state.ThemeDark
	}
	if err := a.state.SetTheme(theme); err != nil {
		a.status = fmt.Sprintf("Erro: %v", err)
		return a, nil
	}
	applyTheme(theme)

	// Durations may have changed.
	a.timer = newTimerModel(a.state.Store(), a.timer.countdown.cues)

	switch {
	case msg.notifications && !a.sinkEnabled:
		// The sink is checked once, on opt-in. Delivery after that
		// is fire-and-forget.
		if !a.sink.Available() {
			a.status = "Notificações do sistema indisponíveis neste ambiente"
			a.state.Store().SetSettingBool("notifications_enabled", false)
			return a, nil
		}
		a.sinkEnabled = true
		return a, a.push(notify.NotificationsEnabled())
	case !msg.notifications:
		a.sinkEnabled = false
	}
	a.status = "Configurações salvas"
	return a, nil
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewTimer:
		a.timer, cmd = a.timer.update(msg)
	case viewSchedule:
		a.schedule, cmd = a.schedule.update(msg)
	case viewGoals:
		a.goals, cmd = a.goals.update(msg)
	case viewProgress:
		a.progress, cmd = a.progress.update(msg)
	case viewCoach:
		a.coach, cmd = a.coach.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewSchedule:
		return a.schedule.formActive
	case viewGoals:
		return a.goals.formActive
	case viewCoach:
		return a.coach.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Carregando..."
	}

	header := a.renderHeader()
	musicStrip := a.music.view()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view(a.state)
	case viewTimer:
		content = a.timer.view()
	case viewSchedule:
		content = a.schedule.view()
	case viewGoals:
		content = a.goals.view()
	case viewProgress:
		content = a.progress.view()
	case viewCoach:
		content = a.coach.view()
	}

	if a.settingsActive {
		content = a.settings.view()
	} else if a.exportPicking {
		content = a.renderExportPicker()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer) + lipgloss.Height(musicStrip)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if toasts := renderToasts(&a.queue, a.width); toasts != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, toasts, content)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, musicStrip, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("FocusFlow")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Countdown indicator, visible from every tab
	timerInfo := ""
	if a.timer.countdown.running {
		timerInfo = successStyle.Render(" ● " + formatCountdown(a.timer.countdown.remaining))
	} else if a.timer.countdown.remaining < a.timer.countdown.fullDuration() {
		timerInfo = warningStyle.Render(" ⏸ " + formatCountdown(a.timer.countdown.remaining))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Formato de Exportação")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: exportar  esc: cancelar"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	sessions := a.state.Sessions()
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("focusflow-export-%s.csv", dateStr))
			if err := export.ToCSV(sessions, path); err != nil {
				return statusMsg{text: fmt.Sprintf("Erro no CSV: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("focusflow-export-%s.json", dateStr))
			if err := export.ToJSON(sessions, path); err != nil {
				return statusMsg{text: fmt.Sprintf("Erro no JSON: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
