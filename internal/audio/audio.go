// Package audio plays the short cue a wheel makes when the item under the
// center line changes.
package audio

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"wheelview/internal/logger"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 18 * time.Millisecond
	clickFreq     = 1800.0
)

// Player mixes cues onto the speaker. A player that failed to open the
// audio device stays silent and every Play is a no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cue         *beep.Buffer
	initialized bool
	log         *slog.Logger
}

// NewPlayer returns an uninitialized, silent player.
func NewPlayer(log *slog.Logger) *Player {
	return &Player{
		mixer: &beep.Mixer{},
		log:   logger.Or(log),
	}
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for the caller to log.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// LoadFile replaces the synthesized click with a WAV file.
func (p *Player) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open sound %s: %w", path, err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
		format.SampleRate = sampleRate
	}
	buf := beep.NewBuffer(format)
	buf.Append(src)

	p.mu.Lock()
	p.cue = buf
	p.mu.Unlock()
	p.log.Debug("sound loaded", "path", path, "samples", buf.Len())
	return nil
}

// Play queues one cue at volume, clamped to [0, 1].
func (p *Player) Play(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := p.streamer(volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences anything still playing.
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

// streamer builds the cue at volume. Callers hold p.mu.
func (p *Player) streamer(volume float64) beep.Streamer {
	var s beep.Streamer
	if p.cue != nil {
		s = p.cue.Streamer(0, p.cue.Len())
	} else {
		s = NewClick(sampleRate)
	}
	return withVolume(s, volume)
}

// withVolume maps a linear volume onto effects.Volume's log2 scale. Zero
// needs the Silent flag since log2(0) is -Inf.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	volume = min(max(volume, 0), 1)
	if volume == 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// click is a short decaying sine, the default tick.
type click struct {
	rate  beep.SampleRate
	pos   int
	total int
}

// NewClick returns the synthesized tick.
func NewClick(rate beep.SampleRate) beep.Streamer {
	return &click{rate: rate, total: rate.N(clickDuration)}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.total {
			return i, i > 0
		}
		t := float64(c.pos) / float64(c.rate)
		env := math.Exp(-t * 250)
		v := 0.5 * env * math.Sin(2*math.Pi*clickFreq*t)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *click) Err() error { return nil }

// Open returns an initialized player with the cue at file, or the default
// click when file is empty. It returns nil when the speaker cannot be
// opened so callers never hold a silent player behind the interface.
func Open(file string, log *slog.Logger) *Player {
	p := NewPlayer(log)
	if err := p.Init(); err != nil {
		p.log.Warn("sound disabled", "error", err)
		return nil
	}
	if file != "" {
		if err := p.LoadFile(file); err != nil {
			p.log.Warn("keeping default click", "error", err)
		}
	}
	return p
}
