package chime

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog/log"
)

// SampleRate is the rate the speaker is opened at.
const SampleRate beep.SampleRate = 44100

// Config describes the tap tone.
type Config struct {
	Enabled   bool
	Frequency float64
	Duration  time.Duration
	Gain      float64
	// Sample optionally replaces the tone with a wav, mp3 or flac file.
	Sample string
}

// Player plays the tap tone on the system speaker. The speaker is opened
// on the first Play; if that fails the player disables itself.
type Player struct {
	cfg      Config
	sample   *beep.Buffer
	initDone bool
	failed   bool
}

// defaultGain is the tone amplitude used when cfg.Gain is unset.
const defaultGain = 0.3

// New returns a player for cfg. A sample that cannot be loaded is logged
// and the tone is used instead.
func New(cfg Config) *Player {
	if cfg.Gain <= 0 {
		cfg.Gain = defaultGain
	}
	p := &Player{cfg: cfg}
	if cfg.Enabled && cfg.Sample != "" {
		buf, err := LoadSample(cfg.Sample)
		if err != nil {
			log.Warn().Err(err).Str("sample", cfg.Sample).Msg("falling back to tone")
		} else {
			p.sample = buf
		}
	}
	return p
}

// Enabled reports whether Play produces sound.
func (p *Player) Enabled() bool {
	return p != nil && p.cfg.Enabled && !p.failed
}

// Play starts one tone. It returns immediately; the speaker mixes the
// tone on its own goroutine.
func (p *Player) Play() error {
	if !p.Enabled() {
		return nil
	}
	if !p.initDone {
		bufferSize := SampleRate.N(time.Second / 20)
		if err := speaker.Init(SampleRate, bufferSize); err != nil {
			p.failed = true
			return fmt.Errorf("error opening speaker: %w", err)
		}
		p.initDone = true
		log.Debug().Int("sample_rate", int(SampleRate)).Msg("speaker opened")
	}
	speaker.Play(p.Tone())
	return nil
}

// Tone returns a fresh streamer for the configured sample or tone.
func (p *Player) Tone() beep.Streamer {
	if p.sample != nil {
		return p.sample.Streamer(0, p.sample.Len())
	}
	return newTone(SampleRate, p.cfg.Frequency, p.cfg.Duration, p.cfg.Gain)
}

// Close stops playback.
func (p *Player) Close() {
	if p == nil || !p.initDone {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
