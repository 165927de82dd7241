package factory

import (
	"github.com/automoto/doomerang-hud/archetypes"
	"github.com/automoto/doomerang-hud/components"
	"github.com/automoto/doomerang-hud/prefabs"
	"github.com/automoto/doomerang-hud/systems"
	"github.com/automoto/doomerang-hud/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard spawns a damaging footprint on the ground plane.
func CreateHazard(ecs *ecs.ECS, spec prefabs.HazardSpec, damageType *components.DamageType) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	position := mgl64.Vec3{spec.X, 0, spec.Z}
	components.Transform.SetValue(hazard, components.TransformData{Position: position})
	components.Hazard.SetValue(hazard, components.HazardData{
		Name:     spec.Name,
		Damage:   spec.Damage,
		Type:     damageType,
		Cooldown: spec.Cooldown,
		LastHit:  -1,
	})

	sx, sy := systems.ToSpace(position)
	obj := resolv.NewObject(sx-spec.Size/2, sy-spec.Size/2, spec.Size, spec.Size, tags.ResolvHazard)
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return hazard
}

// CreateArenaHazards spawns every hazard in the arena spec, resolving damage
// types through catalog.
func CreateArenaHazards(ecs *ecs.ECS, arena prefabs.ArenaSpec, catalog prefabs.DamageTypeCatalog) error {
	for _, spec := range arena.Hazards {
		dt, err := catalog.Get(spec.DamageType)
		if err != nil {
			return err
		}
		CreateHazard(ecs, spec, dt)
	}
	return nil
}
