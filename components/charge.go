package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ChargeBarData is one hand's charge progress bar, drawn above its owner.
type ChargeBarData struct {
	Owner   *donburi.Entry
	Hand    string
	Visible bool
	Percent float64 // [0, 1]

	// Alpha is driven by Fade while the bar fades in.
	Alpha float32
	Fade  *gween.Tween
}

var ChargeBar = donburi.NewComponentType[ChargeBarData]()
