package systems

import (
	"image/color"

	"github.com/automoto/doomerang-hud/components"
	cfg "github.com/automoto/doomerang-hud/config"
	"github.com/automoto/doomerang-hud/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var hazardColors = map[string]color.RGBA{
	"fire":     cfg.Orange,
	"electric": {R: 64, G: 160, B: 255, A: 255},
	"melee":    cfg.LightRed,
}

// DrawWorld draws the arena ground grid and hazard markers as seen from the
// player's camera.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(playerEntry)
	position := components.Transform.Get(playerEntry).Position
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawGrid(screen, camera, position, w, h)

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		hazard := components.Hazard.Get(entry)
		p := camera.Project(position, components.Transform.Get(entry).Position, w, h)
		if p.Depth <= camera.Near {
			return
		}
		clr := cfg.White
		if hazard.Type != nil {
			if c, ok := hazardColors[hazard.Type.Name]; ok {
				clr = c
			}
		}
		size := cfg.Arena.MarkerSize * float32(10/p.Depth)
		if size < 2 {
			size = 2
		}
		vector.FillRect(screen, float32(p.X)-size*.5, float32(p.Y)-size, size, size, clr, false)
	})
}

func drawGrid(screen *ebiten.Image, camera *components.CameraData, position mgl64.Vec3, w, h int) {
	half := cfg.Arena.Size * .5
	for v := -half; v <= half; v += cfg.Arena.GridStep {
		drawGroundLine(screen, camera, position, mgl64.Vec3{v, 0, -half}, mgl64.Vec3{v, 0, half}, w, h)
		drawGroundLine(screen, camera, position, mgl64.Vec3{-half, 0, v}, mgl64.Vec3{half, 0, v}, w, h)
	}
}

// drawGroundLine clips the segment against the near plane before projecting.
func drawGroundLine(screen *ebiten.Image, camera *components.CameraData, position, a, b mgl64.Vec3, w, h int) {
	eye := camera.Eye(position)
	forward := camera.Forward()
	da := a.Sub(eye).Dot(forward) - camera.Near
	db := b.Sub(eye).Dot(forward) - camera.Near
	if da <= 0 && db <= 0 {
		return
	}
	if da <= 0 {
		a = a.Add(b.Sub(a).Mul(da / (da - db)))
	} else if db <= 0 {
		b = b.Add(a.Sub(b).Mul(db / (db - da)))
	}
	pa := camera.Project(position, a, w, h)
	pb := camera.Project(position, b, w, h)
	vector.StrokeLine(screen, float32(pa.X), float32(pa.Y), float32(pb.X), float32(pb.Y), 1, cfg.Arena.GridColor, false)
}
