package systems

import (
	"math"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKillZones respawns the player on entering a hazard volume. Each zone
// fires once per entry and re-arms when the player is outside it.
func UpdateKillZones(ecs *ecs.ECS) {
	pos, ok := PlayerPosition(ecs)
	if !ok {
		return
	}
	session, ok := GetSession(ecs)
	if !ok {
		return
	}

	near := make(map[donburi.Entity]bool)
	for _, entry := range triggerHits(ecs, tags.ResolvKillZone) {
		near[entry.Entity()] = true
	}

	tags.KillZone.Each(ecs.World, func(e *donburi.Entry) {
		zone := components.KillZone.Get(e)
		inside := near[e.Entity()] && insideBox(pos, zone.Center, zone.HalfSize)
		if !inside {
			zone.Triggered = false
			return
		}
		if zone.Triggered {
			return
		}
		zone.Triggered = true
		if session.Respawn.Request() {
			PlaySFX(ecs, cfg.SoundRespawn)
		}
	})
}

func insideBox(p, center, half mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(p[i]-center[i]) > half[i] {
			return false
		}
	}
	return true
}
