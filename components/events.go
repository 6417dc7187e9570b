package components

import (
	"github.com/yohamta/donburi/features/events"
)

type MobKilledEvent struct {
	MobID string
}

type SwordCollectedEvent struct{}

type CheckpointReachedEvent struct {
	ID int
}

var (
	MobKilled         = events.NewEventType[MobKilledEvent]()
	SwordCollected    = events.NewEventType[SwordCollectedEvent]()
	CheckpointReached = events.NewEventType[CheckpointReachedEvent]()
)
