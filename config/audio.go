package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundExplosion
	SoundImpact
	SoundCrateBreak
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to embedded files and per-sound volume
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundExplosion:  "audio/explosion.wav",
			SoundImpact:     "audio/impact.wav",
			SoundCrateBreak: "audio/crate_break.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundExplosion: 1.0,
			SoundImpact:    0.4,
		},
	}
}
