package engine

// MusicPreset names a background track.
type MusicPreset int

const (
	MusicClassy8Bit MusicPreset = iota
	MusicWhimsicalPopsicle
)

func (m MusicPreset) String() string {
	switch m {
	case MusicClassy8Bit:
		return "classy_8bit"
	case MusicWhimsicalPopsicle:
		return "whimsical_popsicle"
	default:
		return "unknown"
	}
}

// SfxPreset names a one-shot sound effect.
type SfxPreset int

const (
	SfxImpact3 SfxPreset = iota
	SfxJingle
)

func (s SfxPreset) String() string {
	switch s {
	case SfxImpact3:
		return "impact3"
	case SfxJingle:
		return "jingle"
	default:
		return "unknown"
	}
}

// AudioManager plays music and sound effects. Volumes are linear in [0, 1].
// Implementations must not block the frame.
type AudioManager interface {
	PlayMusic(track MusicPreset, volume float64)
	StopMusic()
	PlaySFX(sfx SfxPreset, volume float64)
}

// NopAudio discards every request. Used for SSH sessions and muted play.
type NopAudio struct{}

func (NopAudio) PlayMusic(MusicPreset, float64) {}
func (NopAudio) StopMusic()                     {}
func (NopAudio) PlaySFX(SfxPreset, float64)     {}

var _ AudioManager = NopAudio{}
