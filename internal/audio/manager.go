// Package audio plays the racer's music and sound effects through the system
// speaker. Everything is synthesised; there are no audio files.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/road-racer/internal/engine"
)

const (
	sampleRate   = beep.SampleRate(44100)
	bufferLength = 100 * time.Millisecond
	musicStep    = 180 * time.Millisecond
)

// Manager implements engine.AudioManager on top of a beep mixer.
// Calls before Init, or after Close, are silently ignored.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	sfxCount    int64 // Seeds impact noise so consecutive hits differ
}

var _ engine.AudioManager = (*Manager)(nil)

// NewManager creates a manager. Call Init before playing anything.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	m.music = nil
	m.initialized = false
}

// PlayMusic starts a looping background track, replacing the current one.
func (m *Manager) PlayMusic(track engine.MusicPreset, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(musicStreamer(track), volume)}

	speaker.Lock()
	if m.music != nil {
		m.music.Paused = true
		m.music.Streamer = nil // Lets the mixer drop the old track
	}
	m.music = ctrl
	m.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic silences the background track.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}

	speaker.Lock()
	m.music.Paused = true
	m.music.Streamer = nil
	speaker.Unlock()
	m.music = nil
}

// PlaySFX mixes in a one-shot effect.
func (m *Manager) PlaySFX(sfx engine.SfxPreset, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.sfxCount++
	s := newVolume(sfxStreamer(sfx, m.sfxCount), volume)

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// musicStreamer builds an endless stream for a track.
func musicStreamer(track engine.MusicPreset) beep.Streamer {
	switch track {
	case engine.MusicWhimsicalPopsicle:
		return newChiptune(sampleRate, popsicleMelody, popsicleBass, musicStep)
	default:
		return newChiptune(sampleRate, classyMelody, classyBass, musicStep)
	}
}

// sfxStreamer builds a finite stream for an effect.
func sfxStreamer(sfx engine.SfxPreset, seed int64) beep.Streamer {
	switch sfx {
	case engine.SfxJingle:
		return newJingle(sampleRate)
	default:
		return newImpact(sampleRate, 60, 400*time.Millisecond, 90*time.Millisecond, seed)
	}
}
