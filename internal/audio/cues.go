// Package audio turns combat events into short synthesized sound cues played
// through the beep speaker.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/sky-fight/internal/combat"
)

// Cue is a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueAttack
	CueEnemyDamaged
	CueDefeat
	CuePlayerHit
)

func (c Cue) String() string {
	switch c {
	case CueAttack:
		return "attack"
	case CueEnemyDamaged:
		return "enemy-damaged"
	case CueDefeat:
		return "defeat"
	case CuePlayerHit:
		return "player-hit"
	default:
		return "none"
	}
}

// CueFor maps a combat event to its cue. Events without a sound map to CueNone.
func CueFor(ev combat.Event) Cue {
	switch ev.(type) {
	case combat.EnemyAttacked:
		return CueAttack
	case combat.EnemyDamaged:
		return CueEnemyDamaged
	case combat.EnemyDefeated:
		return CueDefeat
	case combat.PlayerHit:
		return CuePlayerHit
	default:
		return CueNone
	}
}

// Cue timings
const (
	attackDuration  = 40 * time.Millisecond
	damageDuration  = 120 * time.Millisecond
	chimeNote       = 180 * time.Millisecond
	hitDuration     = 250 * time.Millisecond
	shortAttack     = 5 * time.Millisecond
	shortRelease    = 20 * time.Millisecond
	chimeRelease    = 120 * time.Millisecond
	hitNoiseRelease = 200 * time.Millisecond
)

// Build returns a finite streamer for the cue at the given volume, or nil
// for CueNone.
func Build(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueAttack:
		osc := NewOscillator(660, attackDuration, WaveSquare, rate)
		s = newVolume(NewEnvelope(osc, attackDuration, shortAttack, shortRelease, rate), 0.3)
	case CueEnemyDamaged:
		osc := NewOscillator(110, damageDuration, WaveSaw, rate)
		s = newVolume(NewEnvelope(osc, damageDuration, shortAttack, shortRelease, rate), 0.5)
	case CueDefeat:
		s = chime(rate, 880, 660, 440)
	case CuePlayerHit:
		noise := NewOscillator(0, hitDuration, WaveNoise, rate)
		s = newVolume(NewEnvelope(noise, hitDuration, shortAttack, hitNoiseRelease, rate), 0.6)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// chime plays a descending run of sine notes.
func chime(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(rate, f)
		if err != nil {
			// Frequencies above Nyquist; fall back to the oscillator
			tone = NewOscillator(f, chimeNote, WaveSine, rate)
		}
		note := beep.Take(rate.N(chimeNote), tone)
		notes = append(notes, NewEnvelope(note, chimeNote, shortAttack, chimeRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5)
}
