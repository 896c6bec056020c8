// Package player controls audio playback. The daemon drives an
// external player process; Local keeps the same state machine in
// memory and is what tests and headless deployments run against.
package player

import (
	"fmt"
	"log/slog"
	"sync"
)

// Volume bounds. Eleven, naturally.
const (
	MinVolume = 0
	MaxVolume = 11
)

// Player is the playback state machine command handlers drive.
// Implementations must be safe for concurrent use.
type Player interface {
	// Play replaces the queue with the given locators and starts
	// playing from the first.
	Play(locators []string) error

	// Pause suspends playback. Pausing while not playing is a no-op.
	Pause()

	// Unpause resumes paused playback. A no-op unless paused.
	Unpause()

	// IsPlaying reports whether audio is actively playing.
	IsPlaying() bool

	// IsPaused reports whether playback is suspended mid-queue.
	IsPaused() bool

	// SetVolume sets the output level, clamped to [MinVolume, MaxVolume].
	SetVolume(level int)

	// Volume returns the current output level.
	Volume() int
}

// Local is an in-process Player. It tracks queue and transport state
// without touching an audio device.
type Local struct {
	mu      sync.Mutex
	queue   []string
	playing bool
	paused  bool
	volume  int
}

// NewLocal returns a stopped player at the given volume.
func NewLocal(volume int) *Local {
	return &Local{volume: clamp(volume)}
}

// Play implements Player.
func (p *Local) Play(locators []string) error {
	if len(locators) == 0 {
		return fmt.Errorf("player: nothing to play")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue[:0], locators...)
	p.playing = true
	p.paused = false
	slog.Info("playback started", "queued", len(p.queue), "first", p.queue[0])
	return nil
}

// Pause implements Player.
func (p *Local) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	p.playing = false
	p.paused = true
	slog.Debug("playback paused")
}

// Unpause implements Player.
func (p *Local) Unpause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paused {
		return
	}
	p.playing = true
	p.paused = false
	slog.Debug("playback resumed")
}

// IsPlaying implements Player.
func (p *Local) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// IsPaused implements Player.
func (p *Local) IsPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// SetVolume implements Player.
func (p *Local) SetVolume(level int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clamp(level)
	slog.Debug("volume set", "level", p.volume)
}

// Volume implements Player.
func (p *Local) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Queue returns a copy of the current queue.
func (p *Local) Queue() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.queue))
	copy(out, p.queue)
	return out
}

func clamp(level int) int {
	if level < MinVolume {
		return MinVolume
	}
	if level > MaxVolume {
		return MaxVolume
	}
	return level
}
