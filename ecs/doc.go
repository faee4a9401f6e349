// Package ecs provides ECS adapters for pinchdeck's session events.
//
// The primary adapter is [NewDonburiSink], which bridges session events
// (pick, phase, commit, hover, missed pick, complete, status, reset) into a
// [Donburi] world as typed events. Subscribe to [SessionEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
