package components

import "github.com/yohamta/donburi"

type CameraData struct {
	Position   Vector
	LookAheadX float64
}

var Camera = donburi.NewComponentType[CameraData]()
