package components

import (
	"github.com/automoto/orbitview/shared/viewcamera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Camera *viewcamera.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
