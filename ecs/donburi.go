package ecs

import (
	"github.com/phanxgames/starscroll"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// BackgroundData is the component payload of a background entity.
type BackgroundData struct {
	Background *starscroll.Background
}

// BackgroundComponent marks entities that own a scrolling background.
var BackgroundComponent = donburi.NewComponentType[BackgroundData]()

// WrappedEvent is published when a background's offset wraps past its
// composed height.
type WrappedEvent struct {
	Entity donburi.Entity
	Offset float64
	// Wraps is the number of wraps in the update, negative when the
	// background scrolled up.
	Wraps int
}

// WrappedEventType is the Donburi event type for WrappedEvent. Subscribe to
// it and call ProcessEvents after UpdateBackgrounds.
var WrappedEventType = events.NewEventType[WrappedEvent]()

var backgroundQuery = donburi.NewQuery(filter.Contains(BackgroundComponent))

// AddBackground creates an entity holding bg.
func AddBackground(world donburi.World, bg *starscroll.Background) donburi.Entity {
	e := world.Create(BackgroundComponent)
	BackgroundComponent.SetValue(world.Entry(e), BackgroundData{Background: bg})
	return e
}

// UpdateBackgrounds advances every background entity by delta.
func UpdateBackgrounds(world donburi.World, delta float64) {
	backgroundQuery.Each(world, func(entry *donburi.Entry) {
		bg := BackgroundComponent.Get(entry).Background
		if bg == nil {
			return
		}
		if n := bg.Advance(delta); n != 0 {
			WrappedEventType.Publish(world, WrappedEvent{Entity: entry.Entity(), Offset: bg.Offset(), Wraps: n})
		}
	})
}

// DrawBackgrounds draws every background entity onto target.
func DrawBackgrounds(world donburi.World, target starscroll.Target) {
	backgroundQuery.Each(world, func(entry *donburi.Entry) {
		if bg := BackgroundComponent.Get(entry).Background; bg != nil {
			bg.Draw(target)
		}
	})
}
