package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's position in world space. Y is up; the ground
// plane is XZ.
type TransformData struct {
	Position mgl64.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
