// Package audio is the fire-and-forget cue sink for timer and goal
// events. Nothing here returns an error to the caller; a machine with
// no sound device simply stays silent.
package audio

import (
	"time"

	"github.com/gen2brain/beeep"
)

type Cues interface {
	PlayStart()
	PlayPause()
	PlayComplete()
	PlaySuccess()
}

// BeepCues renders the cues as short system tones. Frequencies follow
// the app's original sound design: a rising pair for start, a single
// mid tone for pause, a C-major chime for completion.
type BeepCues struct{}

func (BeepCues) PlayStart() {
	go func() {
		beeep.Beep(880, 100)
		time.Sleep(50 * time.Millisecond)
		beeep.Beep(1320, 100)
	}()
}

func (BeepCues) PlayPause() {
	go beeep.Beep(440, 100)
}

func (BeepCues) PlayComplete() {
	go func() {
		for _, freq := range []float64{523.25, 659.25, 783.99, 1046.50} {
			beeep.Beep(freq, 150)
			time.Sleep(150 * time.Millisecond)
		}
	}()
}

func (BeepCues) PlaySuccess() {
	go func() {
		beeep.Beep(660, 100)
		time.Sleep(100 * time.Millisecond)
		beeep.Beep(880, 200)
	}()
}

// NoopCues keeps tests and silent environments quiet.
type NoopCues struct{}

func (NoopCues) PlayStart()    {}
func (NoopCues) PlayPause()    {}
func (NoopCues) PlayComplete() {}
func (NoopCues) PlaySuccess()  {}
