package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's footprint in the hazard space. The space is
// the arena ground plane shifted so that its corner sits at the origin.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space for ground-plane overlap checks.
var Space = donburi.NewComponentType[resolv.Space]()
