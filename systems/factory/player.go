package factory

import (
	"github.com/automoto/doomerang-hud/archetypes"
	"github.com/automoto/doomerang-hud/components"
	cfg "github.com/automoto/doomerang-hud/config"
	"github.com/automoto/doomerang-hud/systems"
	"github.com/automoto/doomerang-hud/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the locally controlled player at x, z facing yaw degrees.
func CreatePlayer(ecs *ecs.ECS, x, z, yaw float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	position := mgl64.Vec3{x, 0, z}
	components.Transform.SetValue(player, components.TransformData{Position: position})
	components.Player.SetValue(player, components.PlayerData{PlayerIndex: 0})
	components.Controller.SetValue(player, components.ControllerData{DebugKeys: cfg.Debug.DebugKeys})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Camera.SetValue(player, components.CameraData{
		Yaw:       yaw,
		FOV:       cfg.Camera.FOV,
		Near:      cfg.Camera.Near,
		Far:       cfg.Camera.Far,
		EyeHeight: cfg.Camera.EyeHeight,
	})

	size := cfg.Player.CollisionSz
	sx, sy := systems.ToSpace(position)
	obj := resolv.NewObject(sx-size/2, sy-size/2, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}
