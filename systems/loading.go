package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// WithLoadingCheck wraps a system to skip execution while the HUD shows the
// loading overlay.
func WithLoadingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLoading(e) {
			return
		}
		system(e)
	}
}

// WithLoadingCheckRenderer is WithLoadingCheck for renderers.
func WithLoadingCheckRenderer(renderer func(*ecs.ECS, *ebiten.Image)) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if IsLoading(e) {
			return
		}
		renderer(e, screen)
	}
}
