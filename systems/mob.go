package systems

import (
	"math"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/movement"
	"github.com/automoto/parkour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMobs moves every living mob along its patrol and keeps its
// footprint with it.
func UpdateMobs(ecs *ecs.ECS) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	t := session.Clock
	tags.Mob.Each(ecs.World, func(e *donburi.Entry) {
		mob := components.Mob.Get(e)
		if !mob.Alive {
			return
		}
		mob.Position = PatrolPosition(mob.A, mob.B, mob.Speed, t)
		components.Object.Get(e).Place(mob.Position)
	})
}

// PatrolPosition is a smooth back and forth between a and b with a small
// vertical bob. At t=0 the mob is halfway along.
func PatrolPosition(a, b mgl64.Vec3, speed, t float64) mgl64.Vec3 {
	pct := (math.Sin(t*speed) + 1) / 2
	p := a.Add(b.Sub(a).Mul(pct))
	p[1] += math.Sin(t*cfg.Mob.BobSpeed) * cfg.Mob.BobHeight
	return p
}

// UpdateMobContact resolves the player meeting a mob: a live sword swing
// toward it kills the mob, otherwise touching it respawns the player.
func UpdateMobContact(ecs *ecs.ECS) {
	pos, ok := PlayerPosition(ecs)
	if !ok {
		return
	}
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	game := GetOrCreateGame(ecs)
	now := session.Clock

	for _, entry := range triggerHits(ecs, tags.ResolvMob) {
		mob := components.Mob.Get(entry)
		if !mob.Alive {
			continue
		}

		if game.HasSword && SwordHits(session.Signals, pos, mob.Position, now) {
			mob.Alive = false
			components.MobKilled.Publish(ecs.World, components.MobKilledEvent{MobID: mob.ID})
			continue
		}

		if pos.Sub(mob.Position).Len() >= cfg.Mob.TouchRadius {
			continue
		}
		if mob.Touched && now-mob.LastTouch < cfg.Mob.TouchCooldown {
			continue
		}
		mob.Touched = true
		mob.LastTouch = now
		if session.Respawn.Request() {
			PlaySFX(ecs, cfg.SoundRespawn)
		}
	}
}

// SwordHits reports whether the latest attack reaches a mob: recent enough,
// within reach and roughly in front of the player.
func SwordHits(signals *movement.Signals, player, mob mgl64.Vec3, now float64) bool {
	if !signals.AttackedWithin(now, cfg.Mob.AttackWindow) {
		return false
	}
	to := mob.Sub(player)
	if to.Len() >= cfg.Mob.SwordReach {
		return false
	}
	flat := mgl64.Vec3{to.X(), 0, to.Z()}
	if flat.Len() == 0 {
		return true
	}
	return flat.Normalize().Dot(signals.Forward()) > cfg.Mob.SwordDot
}

// removeMob deletes a killed mob.
func removeMob(ecs *ecs.ECS, id string) {
	var doomed *donburi.Entry
	tags.Mob.Each(ecs.World, func(e *donburi.Entry) {
		if components.Mob.Get(e).ID == id {
			doomed = e
		}
	})
	if doomed == nil {
		return
	}
	removeFootprint(ecs, doomed)
	ecs.World.Remove(doomed.Entity())
}
