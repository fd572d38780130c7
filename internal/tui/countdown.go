package tui

import (
	"focusflow/internal/audio"
	"focusflow/internal/store"
)

type countdownMode int

const (
	modeWork countdownMode = iota
	modeShortBreak
	modeLongBreak
)

var modeNames = map[countdownMode]string{
	modeWork:       "Foco",
	modeShortBreak: "Pausa Curta",
	modeLongBreak:  "Pausa Longa",
}

var modeSessionTypes = map[countdownMode]string{
	modeWork:       store.SessionWork,
	modeShortBreak: store.SessionShortBreak,
	modeLongBreak:  store.SessionLongBreak,
}

// countdownModel is the timer's state machine: a single mode counting
// down to zero. It owns only transient state; completed runs are
// reported to the caller, never stored here.
type countdownModel struct {
	mode      countdownMode
	remaining int // seconds
	running   bool

	durations map[countdownMode]int
	cues      audio.Cues
}

func newCountdownModel(s *store.Store, cues audio.Cues) countdownModel {
	durations := map[countdownMode]int{
		modeWork:       s.GetSettingInt("work_seconds", 1500),
		modeShortBreak: s.GetSettingInt("short_break_seconds", 300),
		modeLongBreak:  s.GetSettingInt("long_break_seconds", 900),
	}
	return countdownModel{
		mode:      modeWork,
		remaining: durations[modeWork],
		durations: durations,
		cues:      cues,
	}
}

func (c *countdownModel) start() {
	if c.running || c.remaining == 0 {
		return
	}
	c.running = true
	c.cues.PlayStart()
}

// toggle flips running, cueing the direction of the transition.
func (c *countdownModel) toggle() {
	if c.running {
		c.running = false
		c.cues.PlayPause()
		return
	}
	c.start()
}

func (c *countdownModel) reset() {
	c.running = false
	c.remaining = c.durations[c.mode]
	c.cues.PlayPause()
}

// switchMode stops the countdown and loads the new mode's full
// duration. It never auto-starts.
func (c *countdownModel) switchMode(m countdownMode) {
	c.mode = m
	c.running = false
	c.remaining = c.durations[m]
	c.cues.PlayStart()
}

// tick advances one second. The 1→0 edge completes the run exactly
// once: running drops, the completion cue sounds, and the finished
// session is returned. Later ticks at zero do nothing.
func (c *countdownModel) tick() (done bool, minutes int, sessionType string) {
	if !c.running || c.remaining == 0 {
		return false, 0, ""
	}
	c.remaining--
	if c.remaining > 0 {
		return false, 0, ""
	}
	c.running = false
	c.cues.PlayComplete()
	return true, c.durations[c.mode] / 60, modeSessionTypes[c.mode]
}

func (c countdownModel) fullDuration() int {
	return c.durations[c.mode]
}
