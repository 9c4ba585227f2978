// Package ecs provides ECS adapters for arbor.
package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ScreenEventType is the Donburi event type for arbor screen events.
// Subscribe to this in your ECS systems to receive screen lifecycle,
// dialog and navigation events.
var ScreenEventType = events.NewEventType[arbor.ScreenEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Screen events are published to ScreenEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) arbor.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event arbor.ScreenEvent) {
	ScreenEventType.Publish(s.world, event)
}
