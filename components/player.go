package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	PlayerIndex int
}

// ControllerData marks a player that is possessed by a local controller.
// The HUD only draws for controlled players.
type ControllerData struct {
	DebugKeys bool
}

var Player = donburi.NewComponentType[PlayerData]()
var Controller = donburi.NewComponentType[ControllerData]()
