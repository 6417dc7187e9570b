package systems

import (
	"fmt"

	"github.com/automoto/parkour/assets"
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/systems/factory"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the simulation of the loaded level.
func GetSession(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// LoadLevel replaces the current level with the given one.
func LoadLevel(e *ecs.ECS, number int) error {
	level, err := assets.LoadLevel(number)
	if err != nil {
		return fmt.Errorf("load level %d: %w", number, err)
	}
	TeardownLevel(e)
	factory.CreateLevel(e, number, level)
	GetOrCreateHUD(e).Banner = nil
	return nil
}

// StartRun begins play on level. With resume set, the stored checkpoint is
// restored when it belongs to that level.
func StartRun(e *ecs.ECS, level int, resume bool) error {
	StartGame(GetOrCreateGame(e), level)
	if err := LoadLevel(e, level); err != nil {
		return err
	}

	p := LoadProgress()
	if resume && p.HasCheckpoint && p.Level == level {
		RestoreCheckpoint(e, p.Checkpoint)
	} else {
		SaveLevelStart(level)
	}
	captureCursor()
	return nil
}

// TeardownLevel removes every entity that belongs to the loaded level.
// Moving platforms leave the carry registry before their bodies go.
func TeardownLevel(e *ecs.ECS) {
	session, ok := GetSession(e)
	if ok {
		components.MovingPlatform.Each(e.World, func(entry *donburi.Entry) {
			session.Platforms.Unregister(components.Body.Get(entry).ID)
		})
	}

	var doomed []donburi.Entity
	collect := func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	}
	for _, q := range []interface {
		Each(donburi.World, func(*donburi.Entry))
	}{
		tags.Player, tags.Platform, tags.MovingPlatform, tags.Checkpoint,
		tags.Goal, tags.KillZone, tags.Pickup, tags.Mob,
		components.Session, components.Space, components.Camera,
	} {
		q.Each(e.World, collect)
	}
	for _, entity := range doomed {
		if e.World.Valid(entity) {
			e.World.Remove(entity)
		}
	}
}
