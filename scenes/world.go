package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tuning is the hot reload source shared by every world scene.
var tuning struct {
	watcher *cfg.TuningWatcher
	path    string
}

// SetTuningWatcher makes world scenes reload the tuning file at path when w
// reports a change.
func SetTuningWatcher(w *cfg.TuningWatcher, path string) {
	tuning.watcher = w
	tuning.path = path
}

// WorldScene plays the levels of a run, starting at level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        int
	resume       bool
	failed       bool
	once         sync.Once
}

// NewWorldScene creates a world scene. resume continues from the saved
// checkpoint of level.
func NewWorldScene(sc SceneChanger, level int, resume bool) *WorldScene {
	return &WorldScene{sceneChanger: sc, level: level, resume: resume}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.failed {
		ws.toMenu()
		return
	}
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) toMenu() {
	ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCapture)
	ecs.AddSystem(systems.NewUpdateTuning(tuning.watcher, tuning.path))
	ecs.AddSystem(systems.NewUpdatePause(ws.toMenu))
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.NewUpdateLevelComplete(ws.toMenu))
	ecs.AddSystem(systems.DiscardLook)

	// Simulation, one fixed step per tick
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLook))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMovingPlatforms))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateController))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysicsWorld))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMobs))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))

	// Triggers
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCheckpoints))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateKillZones))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePickups))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMobContact))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAttack))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateGoal))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateGoalPulse))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePickupBob))
	ecs.AddSystem(systems.ProcessEvents)

	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateHUD)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)

	ws.ecs = ecs

	systems.SubscribeGameEvents(ecs)
	if err := systems.StartRun(ecs, ws.level, ws.resume); err != nil {
		log.Printf("Warning: Could not start level %d: %v", ws.level, err)
		ws.failed = true
	}
}
