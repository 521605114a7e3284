package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/retro-gunner/internal/games/gunner"
)

// Sound is one synthesized effect.
type Sound int

const (
	SoundShoot Sound = iota
	SoundHit
	SoundKill
	SoundPlayerHit
	SoundShield
	SoundCollect
	SoundBoss
)

func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundHit:
		return "hit"
	case SoundKill:
		return "kill"
	case SoundPlayerHit:
		return "player_hit"
	case SoundShield:
		return "shield"
	case SoundCollect:
		return "collect"
	case SoundBoss:
		return "boss"
	default:
		return "unknown"
	}
}

var eventSounds = map[gunner.EventKind]Sound{
	gunner.EventShoot:       SoundShoot,
	gunner.EventHit:         SoundHit,
	gunner.EventKill:        SoundKill,
	gunner.EventPlayerHit:   SoundPlayerHit,
	gunner.EventShieldBlock: SoundShield,
	gunner.EventCollect:     SoundCollect,
	gunner.EventBossSpawn:   SoundBoss,
}

// SoundFor returns the effect played for an event kind.
func SoundFor(kind gunner.EventKind) (Sound, bool) {
	s, ok := eventSounds[kind]
	return s, ok
}

// soundsFor maps one tick's events to the effects to play, each effect at
// most once and in first-seen order. A spread shot is one blip, not three.
func soundsFor(events []gunner.Event) []Sound {
	var out []Sound
	seen := make(map[Sound]bool, len(events))
	for _, e := range events {
		s, ok := SoundFor(e.Kind)
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Build synthesizes s at the configured rate and volume.
func Build(s Sound, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	ms := time.Millisecond

	var streamer beep.Streamer
	switch s {
	case SoundShoot:
		d := 60 * ms
		streamer = NewEnvelope(NewSweep(1200, 500, d, WaveSquare, rate), d, 2*ms, 30*ms, rate)
	case SoundHit:
		d := 50 * ms
		streamer = NewEnvelope(NewTone(300, d, WaveSquare, rate), d, 2*ms, 20*ms, rate)
	case SoundKill:
		d := 250 * ms
		noise := NewEnvelope(NewTone(0, d, WaveNoise, rate), d, 5*ms, 200*ms, rate)
		thump := NewEnvelope(NewSweep(180, 40, d, WaveSine, rate), d, 5*ms, 150*ms, rate)
		streamer = beep.Mix(withVolume(noise, 0.6), withVolume(thump, 0.8))
	case SoundPlayerHit:
		d := 200 * ms
		streamer = NewEnvelope(NewSweep(400, 90, d, WaveSaw, rate), d, 5*ms, 80*ms, rate)
	case SoundShield:
		d := 120 * ms
		streamer = NewEnvelope(NewTone(1500, d, WaveSine, rate), d, 2*ms, 100*ms, rate)
	case SoundCollect:
		// B5 then E6
		n1 := NewEnvelope(NewTone(987.77, 70*ms, WaveSquare, rate), 70*ms, 2*ms, 20*ms, rate)
		n2 := NewEnvelope(NewTone(1318.51, 150*ms, WaveSquare, rate), 150*ms, 2*ms, 100*ms, rate)
		streamer = beep.Seq(n1, n2)
	case SoundBoss:
		d := 600 * ms
		streamer = NewEnvelope(NewSweep(60, 120, d, WaveSaw, rate), d, 50*ms, 300*ms, rate)
	default:
		return nil
	}

	return withVolume(streamer, cfg.Volume*cfg.volumeOf(s))
}
