package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DamageType identifies a kind of damage. Two damage types are the same kind
// when their names match.
type DamageType struct {
	Name string
	// CausedByWorld damage has no meaningful direction (falls, drowning).
	CausedByWorld bool
}

// DamageEventData is queued on an entity and consumed by the combat system.
type DamageEventData struct {
	Amount float64
	Type   *DamageType
	Causer *donburi.Entry // nil when nothing in the world caused it
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// DamageTakenEvent is published after damage has been applied to Damaged.
type DamageTakenEvent struct {
	Damaged *donburi.Entry
	Causer  *donburi.Entry
	Amount  float64
	Type    *DamageType
}

// DamageTaken is raised by the combat system for every applied damage event.
var DamageTaken = events.NewEventType[DamageTakenEvent]()
