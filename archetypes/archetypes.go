package archetypes

import (
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Prop,
	)
	Level = newArchetype(
		components.Level,
	)
	Renderer = newArchetype(
		components.Render,
	)
	Joystick = newArchetype(
		components.Joystick,
	)
	Flashlight = newArchetype(
		components.Flashlight,
	)
	Look = newArchetype(
		components.Look,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
