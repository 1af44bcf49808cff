// Package alert plays the sound cue for an upcoming special attack.
package alert

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"

	"VorkathHelper/config"
	"VorkathHelper/encounter"
)

const sampleRate = beep.SampleRate(44100)

// chime pitches per special, first and second note in Hz
var chimes = map[encounter.Special][2]float64{
	encounter.SpecialUnknown:    {660, 660},
	encounter.SpecialIceBarrage: {880, 1175},
	encounter.SpecialPoisonPool: {440, 330},
}

// Player owns the speaker. The zero value is a silent player.
type Player struct {
	mu     sync.Mutex
	cfg    config.Alert
	ready  bool
	buffer *beep.Buffer
}

// NewPlayer creates a player; call Init before Play.
func NewPlayer(cfg config.Alert) *Player {
	return &Player{cfg: cfg}
}

// Init opens the speaker and decodes the configured sound file. When the
// speaker cannot be opened the player stays silent and the error is returned
// for logging.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	p.ready = true

	if p.cfg.SoundFile != "" {
		buf, err := decodeFile(p.cfg.SoundFile)
		if err != nil {
			slog.Warn("custom alert unavailable, using chime", "path", p.cfg.SoundFile, "err", err)
		} else {
			p.buffer = buf
		}
	}
	return nil
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := vorbis.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	return buf, nil
}

// Play sounds the cue for s. It never blocks on playback.
func (p *Player) Play(s encounter.Special) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Play(p.streamer(s))
}

func (p *Player) streamer(s encounter.Special) beep.Streamer {
	if p.buffer != nil {
		return p.buffer.Streamer(0, p.buffer.Len())
	}
	notes := chimes[s]
	return beep.Seq(
		beep.Take(sampleRate.N(120*time.Millisecond), NewChime(sampleRate, notes[0], p.cfg.Volume)),
		beep.Take(sampleRate.N(180*time.Millisecond), NewChime(sampleRate, notes[1], p.cfg.Volume)),
	)
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		speaker.Clear()
	}
}

// Chime is a decaying sine tone.
type Chime struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

// NewChime creates a chime generator at freq Hz with peak amplitude volume.
func NewChime(sr beep.SampleRate, freq, volume float64) *Chime {
	return &Chime{sr: sr, freq: freq, volume: volume}
}

func (c *Chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(c.pos) / float64(c.sr)

		// short attack, exponential decay
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*8)
		sample := c.volume * envelope * math.Sin(2*math.Pi*c.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		c.pos++
	}
	return len(samples), true
}

func (c *Chime) Err() error {
	return nil
}
