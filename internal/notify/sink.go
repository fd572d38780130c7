package notify

import "github.com/gen2brain/beeep"

// SystemSink mirrors queue insertions to the operating system's
// notification facility. Delivery is fire-and-forget: a failing sink
// must never affect the on-screen queue.
type SystemSink interface {
	// Available reports whether this sink can deliver at all. It runs
	// once, when the user turns the settings toggle on.
	Available() bool
	Send(title, body string)
}

// DesktopSink delivers through the desktop notification daemon.
type DesktopSink struct{}

func (DesktopSink) Available() bool {
	// There is no separate permission API on the desktop, so check
	// with an actual delivery attempt.
	return beeep.Notify("FocusFlow", "Notificações do sistema ativadas.", "") == nil
}

func (DesktopSink) Send(title, body string) {
	_ = beeep.Notify(title, body, "")
}

// NoopSink is the fallback when system delivery is off or unsupported.
type NoopSink struct{}

func (NoopSink) Available() bool         { return false }
func (NoopSink) Send(title, body string) {}
