package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives floating platform movement as a looping vertical sequence.
var Tween = donburi.NewComponentType[gween.Sequence]()
