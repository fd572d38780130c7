package tui

import (
	"testing"

	"focusflow/internal/audio"
	"focusflow/internal/store"
)

// cueRecorder counts which cues fired.
type cueRecorder struct {
	start, pause, complete, success int
}

func (c *cueRecorder) PlayStart()    { c.start++ }
func (c *cueRecorder) PlayPause()    { c.pause++ }
func (c *cueRecorder) PlayComplete() { c.complete++ }
func (c *cueRecorder) PlaySuccess()  { c.success++ }

var _ audio.Cues = (*cueRecorder)(nil)

func newTestCountdown(t *testing.T) (*countdownModel, *cueRecorder) {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	rec := &cueRecorder{}
	c := newCountdownModel(s, rec)
	return &c, rec
}

func TestCountdownDefaults(t *testing.T) {
	c, _ := newTestCountdown(t)
	if c.mode != modeWork {
		t.Fatal("should start in work mode")
	}
	if c.remaining != 1500 {
		t.Fatalf("expected 1500s, got %d", c.remaining)
	}
	if c.running {
		t.Fatal("should start paused")
	}
}

func TestToggleReflectsLastIntent(t *testing.T) {
	c, rec := newTestCountdown(t)

	c.toggle()
	if !c.running {
		t.Fatal("toggle should start")
	}
	if rec.start != 1 {
		t.Fatalf("expected 1 start cue, got %d", rec.start)
	}

	c.toggle()
	if c.running {
		t.Fatal("toggle should pause")
	}
	if rec.pause != 1 {
		t.Fatalf("expected 1 pause cue, got %d", rec.pause)
	}

	c.start()
	if !c.running {
		t.Fatal("start should resume")
	}
	c.start() // already running: no-op
	if rec.start != 2 {
		t.Fatalf("start while running should not re-cue, got %d", rec.start)
	}
}

func TestStartAtZeroIsNoop(t *testing.T) {
	c, _ := newTestCountdown(t)
	c.remaining = 0
	c.start()
	if c.running {
		t.Fatal("start at zero must be a no-op until reset")
	}
}

func TestTickDecrementsOnlyWhileRunning(t *testing.T) {
	c, _ := newTestCountdown(t)

	if done, _, _ := c.tick(); done {
		t.Fatal("paused tick should not complete")
	}
	if c.remaining != 1500 {
		t.Fatal("paused tick should not decrement")
	}

	c.toggle()
	c.tick()
	if c.remaining != 1499 {
		t.Fatalf("expected 1499, got %d", c.remaining)
	}
}

func TestCompletionFiresExactlyOnce(t *testing.T) {
	c, rec := newTestCountdown(t)
	c.remaining = 1
	c.running = true

	done, minutes, sessionType := c.tick()
	if !done {
		t.Fatal("1→0 tick should complete")
	}
	if c.remaining != 0 {
		t.Fatalf("expected 0 remaining, got %d", c.remaining)
	}
	if c.running {
		t.Fatal("completion should stop the countdown")
	}
	if minutes != 25 || sessionType != store.SessionWork {
		t.Fatalf("expected 25min work session, got %d %s", minutes, sessionType)
	}
	if rec.complete != 1 {
		t.Fatalf("expected 1 completion cue, got %d", rec.complete)
	}

	// Further ticks at zero must not re-fire.
	for i := 0; i < 5; i++ {
		if done, _, _ := c.tick(); done {
			t.Fatal("completion re-fired")
		}
	}
	if c.remaining != 0 {
		t.Fatal("remaining went negative")
	}
	if rec.complete != 1 {
		t.Fatal("completion cue re-fired")
	}
}

func TestCompletionMinutesPerMode(t *testing.T) {
	tests := []struct {
		mode    countdownMode
		minutes int
		typ     string
	}{
		{modeWork, 25, store.SessionWork},
		{modeShortBreak, 5, store.SessionShortBreak},
		{modeLongBreak, 15, store.SessionLongBreak},
	}
	for _, tt := range tests {
		c, _ := newTestCountdown(t)
		c.switchMode(tt.mode)
		c.remaining = 1
		c.running = true
		done, minutes, typ := c.tick()
		if !done || minutes != tt.minutes || typ != tt.typ {
			t.Fatalf("mode %v: got done=%v minutes=%d type=%s", tt.mode, done, minutes, typ)
		}
	}
}

func TestSwitchModeResets(t *testing.T) {
	c, _ := newTestCountdown(t)
	c.toggle()
	c.tick()
	c.tick()

	c.switchMode(modeShortBreak)
	if c.running {
		t.Fatal("switchMode must not auto-start")
	}
	if c.remaining != 300 {
		t.Fatalf("expected 300s, got %d", c.remaining)
	}
	if c.mode != modeShortBreak {
		t.Fatal("mode not switched")
	}

	c.switchMode(modeLongBreak)
	if c.remaining != 900 {
		t.Fatalf("expected 900s, got %d", c.remaining)
	}
}

func TestReset(t *testing.T) {
	c, rec := newTestCountdown(t)
	c.toggle()
	c.tick()
	c.tick()

	c.reset()
	if c.running {
		t.Fatal("reset should stop the countdown")
	}
	if c.remaining != 1500 {
		t.Fatalf("expected full duration, got %d", c.remaining)
	}
	if rec.pause == 0 {
		t.Fatal("reset should cue pause")
	}
}

func TestResetAfterCompletionAllowsRestart(t *testing.T) {
	c, _ := newTestCountdown(t)
	c.remaining = 1
	c.running = true
	c.tick()

	c.start()
	if c.running {
		t.Fatal("start at zero should still be refused")
	}
	c.reset()
	c.start()
	if !c.running {
		t.Fatal("after reset, start should work")
	}
}

func TestDurationsFromSettings(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	s.SetSetting("work_seconds", "600")

	c := newCountdownModel(s, audio.NoopCues{})
	if c.remaining != 600 {
		t.Fatalf("expected configured 600s, got %d", c.remaining)
	}
	c.remaining = 1
	c.running = true
	_, minutes, _ := c.tick()
	if minutes != 10 {
		t.Fatalf("expected 10 minutes, got %d", minutes)
	}
}
