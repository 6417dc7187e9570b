package systems

import (
	"log"

	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTuning reloads the tuning file whenever the watcher reports a
// write and pushes the new values into the running session. A bad file is
// logged and the previous values stay.
func NewUpdateTuning(w *cfg.TuningWatcher, path string) ecs.System {
	return func(e *ecs.ECS) {
		if w == nil {
			return
		}

		changed := false
	drain:
		for {
			select {
			case _, ok := <-w.Events:
				if !ok {
					break drain
				}
				changed = true
			case err, ok := <-w.Errors:
				if !ok {
					break drain
				}
				log.Printf("Warning: tuning watcher: %v", err)
			default:
				break drain
			}
		}
		if !changed {
			return
		}

		tuning, err := cfg.LoadTuning(path)
		if err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
			return
		}
		tuning.Apply()
		applyTuning(e)
		log.Printf("Reloaded tuning from %s", path)
	}
}

// applyTuning pushes the current configuration into the loaded session.
func applyTuning(e *ecs.ECS) {
	session, ok := GetSession(e)
	if !ok {
		return
	}
	factory.ApplyTuning(session.Controller)
	session.World.SetGravity(cfg.Physics.Gravity)
}
