package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// UpdateEvents delivers queued events to their subscribers. It runs after
// combat so the HUD hears about damage in the frame it was applied.
func UpdateEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
