package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/doomerang-hud/assets"
	"github.com/automoto/doomerang-hud/components"
	cfg "github.com/automoto/doomerang-hud/config"
	"github.com/automoto/doomerang-hud/prefabs"
	"github.com/automoto/doomerang-hud/systems"
	"github.com/automoto/doomerang-hud/systems/factory"
	"github.com/automoto/doomerang-hud/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// arenaLoad is what the background loader hands back to the game loop.
type arenaLoad struct {
	style   components.HUDStyle
	arena   prefabs.ArenaSpec
	catalog prefabs.DamageTypeCatalog
	err     error
}

// ArenaScene is a small first-person arena with damaging hazards, used to
// host the player HUD.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	player  *donburi.Entry
	hud     *donburi.Entry
	loaded  chan arenaLoad
	watcher *prefabs.Watcher
}

func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.pollLoad()
	as.pollReload()
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Close detaches the HUD and stops watching prefabs.
func (as *ArenaScene) Close() {
	if as.ecs != nil {
		systems.DetachHUD(as.ecs, as.hud)
	}
	if as.watcher != nil {
		if err := as.watcher.Close(); err != nil {
			log.Printf("Warning: Could not close prefab watcher: %v", err)
		}
		as.watcher = nil
	}
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.WithLoadingCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithLoadingCheck(systems.UpdateDebugDamage))
	ecs.AddSystem(systems.WithLoadingCheck(systems.UpdateHazards))
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateEvents)

	ecs.AddRenderer(cfg.Default, systems.WithLoadingCheckRenderer(systems.DrawWorld))
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	as.ecs = ecs

	factory.CreateSpace(as.ecs)
	as.player = factory.CreatePlayer(as.ecs, 0, 0, 0)
	as.hud = factory.CreateHUD(as.ecs, systems.DefaultHUDStyle(), assets.DamageIndicatorTexture())
	if !systems.AttachHUD(as.ecs, as.hud, as.player) {
		log.Printf("Warning: HUD has no owner")
	}

	systems.SetLoading(as.ecs, true)
	as.loaded = make(chan arenaLoad, 1)
	go loadArena(components.HUD.Get(as.hud).Style, as.loaded)

	if cfg.Debug.WatchPrefabs {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", prefabs.Dir, err)
		} else {
			as.watcher = w
		}
	}
}

// loadArena reads prefabs off the game loop. It never touches the world.
func loadArena(base components.HUDStyle, out chan<- arenaLoad) {
	var res arenaLoad
	defer func() { out <- res }()

	res.style, res.err = systems.LoadHUDStyle(base)
	if res.err != nil {
		return
	}

	types, err := prefabs.LoadSpec[prefabs.DamageTypesSpec](prefabs.DamageTypesFile)
	if err != nil {
		res.err = err
		return
	}
	res.catalog, res.err = prefabs.NewDamageTypeCatalog(types)
	if res.err != nil {
		return
	}

	res.arena, res.err = prefabs.LoadSpec[prefabs.ArenaSpec](prefabs.ArenaFile)
}

func (as *ArenaScene) pollLoad() {
	if as.loaded == nil {
		return
	}
	var res arenaLoad
	select {
	case res = <-as.loaded:
		as.loaded = nil
	default:
		return
	}

	if res.err != nil {
		// The arena stays empty; the HUD keeps its built-in style.
		log.Printf("Warning: Could not load arena: %v", res.err)
		systems.SetLoading(as.ecs, false)
		return
	}

	systems.ApplyHUDStyle(as.ecs, res.style)
	if fall, err := res.catalog.Get("fall"); err == nil {
		systems.WorldDamageType = fall
	}
	if err := factory.CreateArenaHazards(as.ecs, res.arena, res.catalog); err != nil {
		log.Printf("Warning: Could not spawn hazards: %v", err)
	}
	as.placePlayer(res.arena.PlayerSpawn)

	systems.SetLoading(as.ecs, false)
}

func (as *ArenaScene) placePlayer(spawn prefabs.SpawnSpec) {
	if as.player == nil || !as.player.Valid() || as.player.HasComponent(tags.Dead) {
		return
	}
	components.Transform.Get(as.player).Position = mgl64.Vec3{spawn.X, 0, spawn.Z}
	components.Camera.Get(as.player).Yaw = spawn.Yaw
	systems.SyncFootprint(as.player, cfg.Player.CollisionSz)
}

func (as *ArenaScene) pollReload() {
	if as.watcher == nil {
		return
	}
	for {
		select {
		case err := <-as.watcher.Errors:
			log.Printf("Warning: Prefab watcher error: %v", err)
			continue
		default:
		}

		path, ok := as.watcher.Poll()
		if !ok {
			return
		}
		as.reloadPrefab(path)
	}
}

// reloadPrefab re-applies hud.yaml. Other prefabs only take effect on restart.
func (as *ArenaScene) reloadPrefab(path string) {
	if prefabs.BaseName(path) != prefabs.HUDFile {
		log.Printf("Info: %s changed; restart to apply", path)
		return
	}
	hudEntry, ok := components.HUD.First(as.ecs.World)
	if !ok {
		return
	}
	style, err := systems.LoadHUDStyle(components.HUD.Get(hudEntry).Style)
	if err != nil {
		log.Printf("Warning: Could not reload %s: %v", path, err)
		return
	}
	systems.ApplyHUDStyle(as.ecs, style)
	log.Printf("Info: reloaded %s", path)
}
