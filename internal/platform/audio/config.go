package audio

// Config holds the audio settings.
type Config struct {
	SampleRate int
	Volume     float64 // master, 0..1

	// Effects scales individual sounds. Missing entries play at 1.
	Effects map[Sound]float64
}

// DefaultConfig returns the default audio settings.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Volume:     0.5,
		Effects: map[Sound]float64{
			SoundShoot: 0.3,
			SoundHit:   0.5,
		},
	}
}

func (c Config) volumeOf(s Sound) float64 {
	if v, ok := c.Effects[s]; ok {
		return v
	}
	return 1
}
