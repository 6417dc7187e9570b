package scenes

import (
	"sync"

	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/systems"
	"github.com/automoto/parkour/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSelectScene lists the levels and starts any unlocked one.
type LevelSelectScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	selectUI     *ui.LevelSelectUI
	once         sync.Once

	selected     int
	shouldGoBack bool
}

func NewLevelSelectScene(sc SceneChanger) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc}
}

func (s *LevelSelectScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.selectUI.Update()

	if s.shouldGoBack || systems.GetAction(systems.GetInput(s.ecsWorld), cfg.ActionMenuBack).JustPressed {
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
		return
	}
	if s.selected > 0 {
		s.sceneChanger.ChangeScene(NewWorldScene(s.sceneChanger, s.selected, false))
	}
}

func (s *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if s.ecsWorld == nil {
		return
	}

	s.selectUI.UI.Draw(screen)
}

func (s *LevelSelectScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())

	s.ecsWorld.AddSystem(systems.UpdateAudio)
	s.ecsWorld.AddSystem(systems.UpdateInput)

	s.selectUI = ui.NewLevelSelectUI(
		levelEntries(systems.LoadProgress()),
		func(level int) {
			systems.PlaySFX(s.ecsWorld, cfg.SoundMenuSelect)
			s.selected = level
		},
		func() { s.shouldGoBack = true },
	)
}

// levelEntries builds the level list from the catalogue and saved progress.
func levelEntries(p *systems.SavedProgress) []ui.LevelEntry {
	entries := make([]ui.LevelEntry, 0, len(cfg.Levels))
	for _, info := range cfg.Levels {
		entry := ui.LevelEntry{
			Number:   info.Number,
			Name:     info.Name,
			Unlocked: info.Number <= p.Unlocked,
		}
		if best, ok := p.BestTimes[info.Number]; ok {
			entry.BestTime = systems.FormatTime(best)
		}
		entries = append(entries, entry)
	}
	return entries
}
