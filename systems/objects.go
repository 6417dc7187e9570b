package systems

import (
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves the player footprint in the trigger space to the
// player body.
func UpdateObjects(ecs *ecs.ECS) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		pos, ok := session.World.Position(components.Body.Get(e).ID)
		if !ok {
			return
		}
		components.Object.Get(e).Place(pos)
	})
}

// PlayerPosition returns the player body position.
func PlayerPosition(ecs *ecs.ECS) (mgl64.Vec3, bool) {
	session, ok := GetSession(ecs)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return session.World.Position(session.Signals.Body())
}

// triggerHits returns the entities whose footprint shares the trigger space
// with the player's. Exact range tests are left to the caller.
func triggerHits(ecs *ecs.ECS, tag string) []*donburi.Entry {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var hits []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tag) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		hits = append(hits, entry)
	}
	return hits
}

// removeFootprint takes an entity's footprint out of the trigger space.
func removeFootprint(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
}
