package gunner

import "github.com/vovakirdan/retro-gunner/internal/core"

// EventKind classifies a fire-and-forget notification raised during a tick.
type EventKind string

const (
	EventShoot       EventKind = "shoot"        // player fired
	EventHit         EventKind = "hit"          // enemy damaged, still alive
	EventPlayerHit   EventKind = "player_hit"   // player lost health
	EventKill        EventKind = "kill"         // enemy or boss destroyed
	EventShieldBlock EventKind = "shield_block" // shield absorbed a bullet
	EventCollect     EventKind = "collect"      // power-up picked up
	EventBossSpawn   EventKind = "boss_spawn"
)

// Event is one notification for the presentation and audio layers.
// Source is the acting entity (bullet, player) and Target the affected one.
type Event struct {
	Kind   EventKind
	Pos    core.Vec2
	Source EntityID
	Target EntityID
}

// eventQueue collects events during a tick and hands them out once.
type eventQueue struct {
	pending []Event
}

func (q *eventQueue) emit(kind EventKind, pos core.Vec2, source, target EntityID) {
	q.pending = append(q.pending, Event{Kind: kind, Pos: pos, Source: source, Target: target})
}

// drain returns the queued events and empties the queue. The returned slice
// is owned by the caller.
func (q *eventQueue) drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}

// CountEvents returns how many events of kind are in events.
func CountEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
