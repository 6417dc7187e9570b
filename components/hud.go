package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds transient HUD state.
type HUDData struct {
	Banner      *gween.Sequence // checkpoint banner alpha, nil when hidden
	BannerAlpha float64
	ShowDebug   bool
}

var HUD = donburi.NewComponentType[HUDData]()
