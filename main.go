package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/doomerang-hud/config"
	"github.com/automoto/doomerang-hud/fonts"
	"github.com/automoto/doomerang-hud/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type closer interface {
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	if c, ok := g.scene.(closer); ok {
		c.Close()
	}
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// Close ends the running scene.
func (g *Game) Close() {
	if c, ok := g.scene.(closer); ok {
		c.Close()
	}
}

func main() {
	width := flag.Int("width", config.C.Width, "Logical screen width")
	height := flag.Int("height", config.C.Height, "Logical screen height")
	watch := flag.Bool("watch", config.Debug.WatchPrefabs, "Hot reload prefabs/hud.yaml from disk")
	debugKeys := flag.Bool("debug-keys", config.Debug.DebugKeys, "Enable H/K/R/F damage keys")
	flag.Parse()

	config.C.Width = *width
	config.C.Height = *height
	config.Debug.WatchPrefabs = *watch
	config.Debug.DebugKeys = *debugKeys

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Doomerang HUD")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game := NewGame()
	err := ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
