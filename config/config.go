package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; HUD renderers are added after world renderers.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// HUDConfig contains the built-in HUD style. prefabs/hud.yaml overrides it at load.
type HUDConfig struct {
	// Damage indicators
	IndicatorSizeX float64 // strip thickness as a fraction of canvas width (left/right)
	IndicatorSizeY float64 // strip thickness as a fraction of canvas height (top/bottom)
	FadeTime       float64 // seconds
	FadeEase       string  // gween ease name, see systems.EaseByName

	DeathOverlayColor color.RGBA

	// Loading overlay
	LoadingLabel     string
	LoadingBoxColor  color.RGBA
	LoadingTextColor color.RGBA

	// Indicator gradient texture (generated, not loaded)
	IndicatorTextureWidth  int
	IndicatorTextureHeight int
}

// CameraConfig contains first-person camera configuration
type CameraConfig struct {
	FOV       float64 // vertical field of view in degrees
	Near      float64
	Far       float64
	EyeHeight float64
	MinPitch  float64 // degrees
	MaxPitch  float64 // degrees
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	Health      float64
	MoveSpeed   float64 // world units per tick
	TurnSpeed   float64 // degrees per tick
	PitchSpeed  float64 // degrees per tick
	CollisionSz float64 // side of the square footprint in the hazard space
}

// ArenaConfig contains the ground plane layout shared by hazards and the player
type ArenaConfig struct {
	Size       float64 // arena is [-Size/2, Size/2] on X and Z
	CellSize   int     // resolv space cell size
	GridStep   float64 // spacing of the debug ground grid
	GridColor  color.RGBA
	MarkerSize float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	WatchPrefabs bool // Hot reload prefabs from disk
	DebugKeys    bool // Enable H/K/R/F damage keys
}

// Global configuration instances
var C *Config
var HUD HUDConfig
var Camera CameraConfig
var Player PlayerConfig
var Arena ArenaConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	DeathOverlay = color.RGBA{R: 120, G: 0, B: 0, A: 160}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	HUD = HUDConfig{
		IndicatorSizeX: 0.15,
		IndicatorSizeY: 0.25,
		FadeTime:       1.5,
		FadeEase:       "linear",

		DeathOverlayColor: DeathOverlay,

		LoadingLabel:     "Loading...",
		LoadingBoxColor:  Black,
		LoadingTextColor: White,

		IndicatorTextureWidth:  256,
		IndicatorTextureHeight: 64,
	}

	Camera = CameraConfig{
		FOV:       70,
		Near:      0.1,
		Far:       500,
		EyeHeight: 1.7,
		MinPitch:  -80,
		MaxPitch:  80,
	}

	Player = PlayerConfig{
		Health:      100,
		MoveSpeed:   0.12,
		TurnSpeed:   2.5,
		PitchSpeed:  1.5,
		CollisionSz: 0.8,
	}

	Arena = ArenaConfig{
		Size:       64,
		CellSize:   1,
		GridStep:   4,
		GridColor:  DarkGray,
		MarkerSize: 6,
	}

	Debug = DebugConfig{
		WatchPrefabs: false,
		DebugKeys:    true,
	}
}
