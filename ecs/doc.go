// Package ecs provides ECS adapters for arbor's screen event stream.
//
// The primary adapter is [NewDonburiSink], which bridges arbor screen events
// (start, end, commands, actions, dialogs) into a [Donburi] world as typed
// events. Subscribe to [ScreenEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	screen := arbor.NewScreen("bag", scene, arbor.ScreenConfig{Events: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
