package ecs

import (
	"github.com/phanxgames/pinchdeck"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SessionEventType is the Donburi event type for pinchdeck session events.
var SessionEventType = events.NewEventType[pinchdeck.SessionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Session
// events are published to SessionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pinchdeck.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pinchdeck.SessionEvent) {
	SessionEventType.Publish(s.world, event)
}
