package factory

import (
	"github.com/automoto/doomerang-hud/archetypes"
	"github.com/automoto/doomerang-hud/components"
	cfg "github.com/automoto/doomerang-hud/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the ground-plane collision space covering the arena.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	size := int(cfg.Arena.Size)
	spaceData := resolv.NewSpace(size, size, cfg.Arena.CellSize, cfg.Arena.CellSize)
	components.Space.Set(space, spaceData)
	return space
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
