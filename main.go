package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/audio"
	"focusflow/internal/coach"
	"focusflow/internal/notify"
	"focusflow/internal/player"
	"focusflow/internal/state"
	"focusflow/internal/store"
	"focusflow/internal/tui"
)

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	st, err := state.New(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading data: %v\n", err)
		os.Exit(1)
	}

	ai := coach.NewClient(os.Getenv("GEMINI_API_KEY"))
	pl := player.New(player.NewExecSink())

	app := tui.NewApp(st, ai, pl, audio.BeepCues{}, notify.DesktopSink{})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
