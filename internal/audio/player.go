package audio

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

const (
	tapRingSize = 8192
	levelWindow = 40 * time.Millisecond
)

// Player mixes burst pops into a single speaker stream. Until Init succeeds
// every method is a no-op, so the effect runs silently without an audio device.
type Player struct {
	rate   beep.SampleRate
	volume float64
	log    *zap.Logger
	rng    *rand.Rand

	mixer *beep.Mixer
	tap   *levelTap

	ready bool
	muted bool
}

// NewPlayer prepares a player; it does not touch the audio device.
func NewPlayer(sampleRate int, volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	mixer := &beep.Mixer{}
	return &Player{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		log:    log,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		mixer:  mixer,
		tap:    newLevelTap(mixer, tapRingSize),
	}
}

// Init opens the speaker and starts the mixer stream.
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.tap)
	p.ready = true
	p.log.Info("audio ready", zap.Int("sample_rate", int(p.rate)))
	return nil
}

// Pop queues the sound for a burst of the given hue.
func (p *Player) Pop(hue float64) {
	if !p.ready || p.muted {
		return
	}
	s := newPop(p.rate, hue, p.volume, p.rng.Int63())
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Level is the loudness of what was played most recently, roughly 0-1.
func (p *Player) Level() float64 {
	if !p.ready {
		return 0
	}
	return p.tap.level(p.rate.N(levelWindow))
}

func (p *Player) Muted() bool { return p.muted }

// SetMuted silences new pops and drops the queued ones.
func (p *Player) SetMuted(m bool) {
	p.muted = m
	if m && p.ready {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// Close stops playback.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.ready = false
}
