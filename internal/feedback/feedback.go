// Package feedback plays short tones when the menu finishes opening or
// closing.
package feedback

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gogpu/cyclemenu"
)

const sampleRate = beep.SampleRate(48000)

// Note frequencies of the open (rising) and close (falling) chimes.
var (
	openNotes  = []float64{659.25, 987.77}
	closeNotes = []float64{987.77, 659.25}
)

// Player is a cyclemenu.StateListener that chimes on open and close
// completion.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	tone        time.Duration
	initialized bool
}

var _ cyclemenu.StateListener = (*Player)(nil)

// New returns a silent player. Call Init to start audio output.
func New(volume float64, tone time.Duration) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		tone:   tone,
	}
}

// Init opens the speaker and starts mixing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops every queued tone.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// OnStateChanged implements cyclemenu.StateListener.
func (p *Player) OnStateChanged(cyclemenu.State) {}

// OnOpenComplete implements cyclemenu.StateListener.
func (p *Player) OnOpenComplete() { p.play(openNotes) }

// OnCloseComplete implements cyclemenu.StateListener.
func (p *Player) OnCloseComplete() { p.play(closeNotes) }

// play queues a chime. Before Init the player stays silent.
func (p *Player) play(notes []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	s := chime(sampleRate, p.tone, p.volume, notes...)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
