package systems

import (
	"log"

	"github.com/automoto/orbitview/components"
	"github.com/automoto/orbitview/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation advances playback by one step and moves the camera by its
// pan velocity. It runs once per game tick, so the step rate is the TPS.
func UpdateAnimation(ecs *ecs.ECS) {
	entry, ok := tags.Viewer.First(ecs.World)
	if !ok {
		return
	}
	pb := components.Playback.Get(entry)
	viewport := components.Viewport.Get(entry)
	camera := components.Camera.Get(entry).Camera

	// A failed load keeps the previous render set on screen; the loop carries on.
	if err := pb.Driver.Tick(viewport.Viewport()); err != nil {
		pb.LastError = err
		pb.Failures++
		log.Printf("Warning: %v", err)
		ShowStatus(ecs, err.Error())
	} else {
		pb.LastError = nil
	}

	camera.Tick()
}
