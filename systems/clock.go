package systems

import (
	"github.com/automoto/doomerang-hud/archetypes"
	"github.com/automoto/doomerang-hud/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances world time by one tick.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	clock.Seconds += 1 / float64(ebiten.TPS())
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(e.World); !ok {
		ent := archetypes.Clock.Spawn(e)
		components.Clock.SetValue(ent, components.ClockData{})
	}

	ent, _ := components.Clock.First(e.World)
	return components.Clock.Get(ent)
}

// WorldTime returns the seconds elapsed since the scene started.
func WorldTime(e *ecs.ECS) float64 {
	return GetOrCreateClock(e).Seconds
}

// TimeSince returns the seconds elapsed since world time t.
func TimeSince(e *ecs.ECS, t float64) float64 {
	return WorldTime(e) - t
}
