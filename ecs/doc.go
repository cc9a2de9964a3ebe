// Package ecs provides ECS adapters for starscroll backgrounds.
//
// Backgrounds are stored on [Donburi] entities through [BackgroundComponent].
// [UpdateBackgrounds] advances all of them once per tick and publishes a
// [WrappedEvent] whenever one wraps around; [DrawBackgrounds] draws them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.AddBackground(world, bg)
//
//	// Update
//	ecs.UpdateBackgrounds(world, 1)
//	ecs.WrappedEventType.ProcessEvents(world)
//
//	// Draw
//	ecs.DrawBackgrounds(world, screen)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
