package factory

import (
	"github.com/automoto/orbitview/archetypes"
	"github.com/automoto/orbitview/components"
	"github.com/automoto/orbitview/shared/playback"
	"github.com/automoto/orbitview/shared/viewcamera"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateViewer spawns the entity owning the camera, the playback driver and
// the viewport they share.
func CreateViewer(ecs *ecs.ECS, camera *viewcamera.Camera, driver *playback.Driver, width, height int) *donburi.Entry {
	viewer := archetypes.Viewer.Spawn(ecs)
	components.Camera.Set(viewer, &components.CameraData{Camera: camera})
	components.Playback.Set(viewer, &components.PlaybackData{Driver: driver})
	components.Viewport.Set(viewer, &components.ViewportData{Width: width, Height: height})
	return viewer
}

// CreateSettings spawns the settings entity with the given initial values.
func CreateSettings(ecs *ecs.ECS, settings components.SettingsData) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.Set(entry, &settings)
	return entry
}
