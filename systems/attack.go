package systems

import (
	cfg "github.com/automoto/parkour/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttack publishes a sword swing. Without the sword the button does
// nothing, and a click that only captures the pointer is not a swing.
func UpdateAttack(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionAttack).JustPressed || !input.Captured {
		return
	}
	if !GetOrCreateGame(ecs).HasSword {
		return
	}
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	session.Signals.PublishAttack(session.Clock)
	PlaySFX(ecs, cfg.SoundSwing)
}
