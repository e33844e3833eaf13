package components

import (
	"github.com/automoto/megagolem/feedback"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FloatingTextData is a short-lived label that rises and fades.
type FloatingTextData struct {
	Text  string
	Style feedback.TextStyle
	X, Y  float64
	Rise  *gween.Tween // 0 -> 1
	T     float64
	Fixed bool // screen-space banner, no rise
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()

// ParticleData is a single particle moving in a straight line.
type ParticleData struct {
	Kind   feedback.ParticleKind
	X, Y   float64
	VX, VY float64 // px/s
	Size   float64
	Life   *gween.Tween // 1 -> 0, alpha
	Alpha  float64
}

var Particle = donburi.NewComponentType[ParticleData]()

// ScreenShakeData tracks an active screen shake
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // ticks remaining
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
