package render

import (
	"image/color"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var styleColors = map[feedback.TextStyle]color.RGBA{
	feedback.StyleScore:  cfg.Yellow,
	feedback.StyleHit:    cfg.White,
	feedback.StyleDanger: cfg.Red,
	feedback.StyleShield: cfg.Cyan,
	feedback.StyleHeal:   cfg.Pink,
	feedback.StyleAttack: cfg.Green,
	feedback.StyleWait:   cfg.Orange,
	feedback.StyleBanner: cfg.White,
}

var particleColors = map[feedback.ParticleKind]color.RGBA{
	feedback.Sparkle:   cfg.BrightYellow,
	feedback.Dust:      cfg.Grey,
	feedback.Hearts:    cfg.Pink,
	feedback.Trail:     cfg.PlayerBlue,
	feedback.Shockwave: cfg.White,
	feedback.Explosion: cfg.Orange,
}

// DrawEffects draws particles and floating texts. Banners are drawn in
// screen space, everything else follows the camera.
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewFor(e, screen)
	if !ok {
		return
	}

	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		size := p.Size
		if p.Kind == feedback.Shockwave {
			// Rings grow as they fade
			size *= 1 + 3*(1-p.Alpha)
		}
		v.fillCircle(screen, p.X, p.Y, size, fade(particleColors[p.Kind], p.Alpha))
	})

	components.FloatingText.Each(e.World, func(entry *donburi.Entry) {
		ft := components.FloatingText.Get(entry)
		c := fade(styleColors[ft.Style], 1-ft.T)

		if ft.Fixed {
			drawCentered(screen, ft.Text, fonts.Title.Get(), ft.X, ft.Y, c)
			return
		}
		y := ft.Y - cfg.Pickup.PopupRise*ft.T
		drawCentered(screen, ft.Text, fonts.Bold.Get(), ft.X+v.offX, y+v.offY, c)
	})
}
