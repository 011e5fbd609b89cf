package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/sky-fight/internal/combat"
)

// SampleRate is the rate cues are synthesized at.
const SampleRate = beep.SampleRate(44100)

// Player plays cues through the system speaker. A nil or uninitialized
// Player is silent, so callers never need to check.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given volume (0..1).
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for logging.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue on the mixer.
func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	s := Build(c, SampleRate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents plays the cue of every event, one cue per kind per batch.
func (p *Player) HandleEvents(events []combat.Event) {
	if !p.Enabled() {
		return
	}
	var played [CuePlayerHit + 1]bool
	for _, ev := range events {
		c := CueFor(ev)
		if c == CueNone || played[c] {
			continue
		}
		played[c] = true
		log.Debug("audio cue", "cue", c)
		p.Play(c)
	}
}

// Close stops every cue and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
