package player

import (
	"errors"
	"testing"
)

// fakeSink records calls and can refuse playback.
type fakeSink struct {
	playErr    error
	playedURL  string
	playedVol  float64
	playCalls  int
	pauseCalls int
	volumes    []float64
}

func (f *fakeSink) Play(url string, volume float64) error {
	f.playCalls++
	f.playedURL = url
	f.playedVol = volume
	return f.playErr
}

func (f *fakeSink) Pause() { f.pauseCalls++ }

func (f *fakeSink) SetVolume(v float64) { f.volumes = append(f.volumes, v) }

func TestTogglePlay(t *testing.T) {
	sink := &fakeSink{}
	p := New(sink)

	if p.Playing() {
		t.Fatal("player should start paused")
	}
	p.TogglePlay()
	if !p.Playing() {
		t.Fatal("toggle should start playback")
	}
	if sink.playedURL != Catalog[0].URL {
		t.Fatalf("wrong url: %s", sink.playedURL)
	}
	p.TogglePlay()
	if p.Playing() {
		t.Fatal("second toggle should pause")
	}
	if sink.pauseCalls != 1 {
		t.Fatalf("expected 1 pause, got %d", sink.pauseCalls)
	}
}

func TestPlayRejectionForcesPaused(t *testing.T) {
	sink := &fakeSink{playErr: errors.New("autoplay blocked")}
	p := New(sink)

	p.TogglePlay()
	if p.Playing() {
		t.Fatal("rejected play must force playing=false")
	}
}

func TestSelectOtherTrackForcesPlaying(t *testing.T) {
	sink := &fakeSink{}
	p := New(sink)

	p.Select("3")
	if !p.Playing() {
		t.Fatal("selecting another track should start playback")
	}
	if p.Current().ID != "3" {
		t.Fatalf("expected track 3, got %s", p.Current().ID)
	}
	if sink.playedURL != Catalog[2].URL {
		t.Fatalf("wrong url: %s", sink.playedURL)
	}
}

func TestSelectCurrentTrackToggles(t *testing.T) {
	sink := &fakeSink{}
	p := New(sink)

	p.Select("1")
	if !p.Playing() {
		t.Fatal("first select should play")
	}
	p.Select("1")
	if p.Playing() {
		t.Fatal("selecting the playing track should pause")
	}
}

func TestSelectUnknownTrackIgnored(t *testing.T) {
	sink := &fakeSink{}
	p := New(sink)
	p.Select("99")
	if p.Playing() || sink.playCalls != 0 {
		t.Fatal("unknown id should be ignored")
	}
}

func TestSetVolumeClearsMute(t *testing.T) {
	sink := &fakeSink{}
	p := New(sink)

	p.ToggleMute()
	if !p.Muted() {
		t.Fatal("expected muted")
	}
	p.SetVolume(0.8)
	if p.Muted() {
		t.Fatal("SetVolume should clear mute")
	}
	if p.Volume() != 0.8 {
		t.Fatalf("expected volume 0.8, got %f", p.Volume())
	}
}

func TestSetVolumeClamps(t *testing.T) {
	p := New(&fakeSink{})
	p.SetVolume(1.5)
	if p.Volume() != 1 {
		t.Fatalf("expected clamp to 1, got %f", p.Volume())
	}
	p.SetVolume(-0.2)
	if p.Volume() != 0 {
		t.Fatalf("expected clamp to 0, got %f", p.Volume())
	}
}

func TestMutePreservesVolume(t *testing.T) {
	sink := &fakeSink{}
	p := New(sink)

	p.SetVolume(0.7)
	p.ToggleMute()
	if p.Effective() != 0 {
		t.Fatalf("muted effective volume should be 0, got %f", p.Effective())
	}
	if p.Volume() != 0.7 {
		t.Fatalf("mute must not change stored volume, got %f", p.Volume())
	}
	p.ToggleMute()
	if p.Effective() != 0.7 {
		t.Fatalf("unmute should restore 0.7, got %f", p.Effective())
	}
}

func TestEffectiveVolumePushedToSink(t *testing.T) {
	sink := &fakeSink{}
	p := New(sink)

	p.SetVolume(0.5)
	p.ToggleMute()
	want := []float64{0.5, 0}
	if len(sink.volumes) != len(want) {
		t.Fatalf("expected %d volume pushes, got %d", len(want), len(sink.volumes))
	}
	for i, w := range want {
		if sink.volumes[i] != w {
			t.Fatalf("push %d: expected %f, got %f", i, w, sink.volumes[i])
		}
	}
}

func TestMutedPlayUsesZeroVolume(t *testing.T) {
	sink := &fakeSink{}
	p := New(sink)
	p.ToggleMute()
	p.TogglePlay()
	if sink.playedVol != 0 {
		t.Fatalf("muted playback should start at volume 0, got %f", sink.playedVol)
	}
}
