package player

import (
	"fmt"
	"os/exec"
)

// ExecSink streams through an external mpv process. mpv has no
// in-process volume control here, so volume changes restart playback
// with the new level.
type ExecSink struct {
	cmd    *exec.Cmd
	url    string
	volume float64
}

func NewExecSink() *ExecSink {
	return &ExecSink{volume: 0.4}
}

func (s *ExecSink) Play(url string, volume float64) error {
	s.stop()
	if _, err := exec.LookPath("mpv"); err != nil {
		return fmt.Errorf("mpv not found: %w", err)
	}
	s.url = url
	s.volume = volume
	cmd := exec.Command("mpv", "--no-video", "--really-quiet", "--loop",
		fmt.Sprintf("--volume=%d", int(volume*100)), url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}
	s.cmd = cmd
	go cmd.Wait()
	return nil
}

func (s *ExecSink) Pause() {
	s.stop()
}

func (s *ExecSink) SetVolume(volume float64) {
	s.volume = volume
	if s.cmd != nil && s.url != "" {
		s.Play(s.url, volume)
	}
}

func (s *ExecSink) stop() {
	if s.cmd != nil && s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.cmd = nil
}

// NoopSink silently accepts everything; used when no player binary is
// wanted and in tests.
type NoopSink struct{}

func (NoopSink) Play(url string, volume float64) error { return nil }
func (NoopSink) Pause()                                {}
func (NoopSink) SetVolume(volume float64)              {}
