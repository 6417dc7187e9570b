package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/parkour/assets"
	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/fonts"
	"github.com/automoto/parkour/scenes"
	"github.com/automoto/parkour/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, config.Debug.StartLevel, false)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

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

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start playing without the main menu")
	flag.IntVar(&config.Debug.StartLevel, "level", config.Debug.StartLevel, "level number used with -skip-menu")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "show the debug overlay")
	flag.StringVar(&config.Debug.TuningPath, "tuning", config.Debug.TuningPath, "YAML tuning file, reloaded on change")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Fail early on a broken map rather than mid run
	if err := assets.LoadAllLevels(); err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(int(1 / config.Physics.FixedStep))

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplySettings(systems.LoadSettings())

	// Tuning overrides the saved settings and the built-in values
	if path := config.Debug.TuningPath; path != "" {
		tuning, err := config.LoadTuning(path)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning.Apply()

		watcher, err := config.NewTuningWatcher(path)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer watcher.Close()
			scenes.SetTuningWatcher(watcher, path)
		}
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
