package archetypes

import (
	"github.com/automoto/orbitview/components"
	cfg "github.com/automoto/orbitview/config"
	"github.com/automoto/orbitview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Viewer = newArchetype(
		tags.Viewer,
		components.Camera,
		components.Playback,
		components.Viewport,
		components.Status,
		components.Pick,
	)
	Settings = newArchetype(
		components.Settings,
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
