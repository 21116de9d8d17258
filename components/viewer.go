package components

import (
	cfg "github.com/automoto/padstate/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashKey identifies one action row of one player in the viewer
type FlashKey struct {
	Player int
	Action cfg.ActionID
}

// ViewerData holds per-row render state of the input viewer.
// Flash is the current alpha (0-1) of each row's just-pressed highlight.
type ViewerData struct {
	Tweens map[FlashKey]*gween.Tween
	Flash  map[FlashKey]float32
}

var Viewer = donburi.NewComponentType[ViewerData]()
