// Package player holds the ambient music state machine. The actual
// audio backend sits behind the Sink interface; the coordinator never
// assumes a play request succeeded.
package player

type Track struct {
	ID     string
	Title  string
	Author string
	URL    string
	Color  string // accent color for the widget
}

// Catalog is the fixed track list; the player has no notion of adding
// or removing tracks.
var Catalog = []Track{
	{ID: "1", Title: "Lofi Study Beats", Author: "FocusFlow Mix", URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3", Color: "#6366F1"},
	{ID: "2", Title: "Coffee Shop Jazz", Author: "Chill Vibes", URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3", Color: "#F59E0B"},
	{ID: "3", Title: "Rainy Night Ambient", Author: "Nature Sounds", URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3", Color: "#3B82F6"},
	{ID: "4", Title: "Deep Focus Alpha", Author: "Ambient Brainwave", URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-4.mp3", Color: "#10B981"},
}

// Sink is the media backend. Play may fail (no player binary, bad
// stream); Pause and SetVolume are best-effort.
type Sink interface {
	Play(url string, volume float64) error
	Pause()
	SetVolume(volume float64)
}

type Player struct {
	sink   Sink
	tracks []Track

	current int
	playing bool
	volume  float64
	muted   bool
}

func New(sink Sink) *Player {
	return &Player{
		sink:   sink,
		tracks: Catalog,
		volume: 0.4,
	}
}

func (p *Player) Tracks() []Track { return p.tracks }
func (p *Player) Current() Track  { return p.tracks[p.current] }
func (p *Player) Playing() bool   { return p.playing }
func (p *Player) Volume() float64 { return p.volume }
func (p *Player) Muted() bool     { return p.muted }

// Effective is the only volume ever pushed to the sink.
func (p *Player) Effective() float64 {
	if p.muted {
		return 0
	}
	return p.volume
}

func (p *Player) TogglePlay() {
	if p.playing {
		p.playing = false
		p.sink.Pause()
		return
	}
	p.startPlayback()
}

// Select switches to the track with the given id and starts playing.
// Selecting the current track behaves like TogglePlay. Unknown ids are
// ignored.
func (p *Player) Select(id string) {
	idx := -1
	for i := range p.tracks {
		if p.tracks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if idx == p.current {
		p.TogglePlay()
		return
	}
	p.current = idx
	p.startPlayback()
}

func (p *Player) startPlayback() {
	p.playing = true
	if err := p.sink.Play(p.tracks[p.current].URL, p.Effective()); err != nil {
		// Playback was refused; state must not claim otherwise.
		p.playing = false
	}
}

// SetVolume clamps to [0,1] and clears mute.
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume = v
	p.muted = false
	p.sink.SetVolume(p.Effective())
}

// ToggleMute flips mute without touching the stored volume.
func (p *Player) ToggleMute() {
	p.muted = !p.muted
	p.sink.SetVolume(p.Effective())
}
