package host

import (
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// beepAssetPath is where the single square-wave beep tone is loaded from,
// matching the teacher's own asset layout.
const beepAssetPath = "assets/beep.mp3"

// beeper plays a single looped tone, gated on/off by Paused rather than
// replayed on every sound-timer edge: ST>0 means "beep active" for as long
// as it stays nonzero (spec §3), not a one-shot decode-and-play per tick.
type beeper struct {
	ctrl  *beep.Ctrl
	ready bool
}

// newBeeper opens and decodes the beep asset and initializes the speaker.
// A missing or undecodable asset leaves the beeper permanently silent
// rather than failing adapter construction — a beeper is not essential to
// correct emulation (spec treats audio as an external collaborator, §1).
func newBeeper() *beeper {
	f, err := os.Open(beepAssetPath)
	if err != nil {
		return &beeper{}
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return &beeper{}
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(format.SampleRate.D(10))); err != nil {
		return &beeper{}
	}

	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: true}
	speaker.Play(ctrl)

	return &beeper{ctrl: ctrl, ready: true}
}

// resume unmutes the looped tone.
func (b *beeper) resume() {
	if !b.ready {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = false
	speaker.Unlock()
}

// pause mutes the looped tone without stopping playback, so it resumes
// in-sync the next time ST becomes nonzero.
func (b *beeper) pause() {
	if !b.ready {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
}
