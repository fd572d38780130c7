package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/player"
)

const volumeStep = 0.1

// musicModel is the ambient player strip rendered above the footer.
type musicModel struct {
	player *player.Player
}

func newMusicModel(p *player.Player) musicModel {
	return musicModel{player: p}
}

func (m musicModel) update(msg tea.KeyMsg) (musicModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Music):
		m.player.TogglePlay()
	case key.Matches(msg, keys.Mute):
		m.player.ToggleMute()
	case key.Matches(msg, keys.NextTrack):
		m.player.Select(m.neighbor(1).ID)
	case key.Matches(msg, keys.PrevTrack):
		m.player.Select(m.neighbor(-1).ID)
	case key.Matches(msg, keys.VolUp):
		m.player.SetVolume(m.player.Volume() + volumeStep)
	case key.Matches(msg, keys.VolDown):
		m.player.SetVolume(m.player.Volume() - volumeStep)
	}
	return m, nil
}

// neighbor returns the track offset steps from the current one,
// wrapping around the catalog.
func (m musicModel) neighbor(offset int) player.Track {
	tracks := m.player.Tracks()
	current := m.player.Current()
	for i, t := range tracks {
		if t.ID == current.ID {
			return tracks[(i+offset+len(tracks))%len(tracks)]
		}
	}
	return current
}

func (m musicModel) view() string {
	track := m.player.Current()

	icon := "♪"
	label := mutedStyle.Render("pausado")
	if m.player.Playing() {
		icon = "▶"
		label = successStyle.Render("tocando")
	}

	volume := fmt.Sprintf("vol %d%%", int(m.player.Volume()*100+0.5))
	if m.player.Muted() {
		volume = "mudo"
	}

	return footerStyle.Render(fmt.Sprintf("%s %s — %s  [%s]  %s",
		icon, track.Title, track.Author, label, mutedStyle.Render(volume)))
}
