package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
)

// Player plays cues through the system speaker. Each cue owns one voice:
// emitting a cue that is still sounding restarts it from the beginning,
// while different cues overlap freely.
//
// Player never fails the caller. If the audio device cannot be opened it
// logs once and stays silent.
type Player struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	voices map[core.Cue]*beep.Ctrl
	live   bool
	logger *log.Logger

	// Guard the mixer against the speaker goroutine
	lock, unlock func()
}

// NewPlayer creates a silent player. Call Open to start output.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		voices: make(map[core.Cue]*beep.Ctrl),
		logger: logger,
		lock:   func() {},
		unlock: func() {},
	}
}

// Open initializes the speaker. Failures are logged and returned; the
// player remains usable and silent either way.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, continuing silently", "err", err)
		return err
	}

	speaker.Play(p.mixer)
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	p.live = true
	p.logger.Debug("audio started", "rate", int(p.rate))
	return nil
}

// Emit starts (or restarts) the sound for cue.
func (p *Player) Emit(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		return
	}

	recipe, ok := Recipes[cue]
	if !ok {
		return
	}
	vol := p.cfg.MasterVolume * p.volumeFor(cue)
	if vol <= 0 {
		return
	}
	voice := &beep.Ctrl{Streamer: gain(recipe(p.rate), vol)}

	p.lock()
	if prev := p.voices[cue]; prev != nil {
		// A nil streamer drains, so the mixer drops the old voice
		prev.Streamer = nil
	}
	p.voices[cue] = voice
	p.mixer.Add(voice)
	p.unlock()
}

// volumeFor returns the configured per-cue volume, defaulting to 1.
func (p *Player) volumeFor(cue core.Cue) float64 {
	if v, ok := p.cfg.CueVolumes[string(cue)]; ok {
		return v
	}
	return 1
}

// Close silences all voices and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		return
	}

	p.lock()
	p.mixer.Clear()
	clear(p.voices)
	p.unlock()

	speaker.Close()
	p.live = false
	p.lock, p.unlock = func() {}, func() {}
}
