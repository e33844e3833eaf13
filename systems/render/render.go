// Package render draws the world, HUD and menus with ebiten vector shapes
// and text. It only reads components.
package render

import (
	"image/color"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view converts world coordinates to screen coordinates and culls what is
// off screen.
type view struct {
	offX, offY    float64
	width, height float64
}

// Culling padding so shapes don't pop at the edges
const cullPadding = 64.0

func viewFor(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	center := components.Camera.Get(cameraEntry).View()
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		offX:   width/2 - center.X,
		offY:   height/2 - center.Y,
		width:  width,
		height: height,
	}, true
}

func (v view) visible(x, y, w, h float64) bool {
	sx, sy := x+v.offX, y+v.offY
	return sx+w >= -cullPadding && sx <= v.width+cullPadding &&
		sy+h >= -cullPadding && sy <= v.height+cullPadding
}

// fillRect draws a world-space rectangle scaled by scale around its centre.
func (v view) fillRect(screen *ebiten.Image, x, y, w, h, scale float64, c color.Color) {
	cx, cy := x+w/2, y+h/2
	w, h = w*scale, h*scale
	vector.FillRect(screen,
		float32(cx-w/2+v.offX), float32(cy-h/2+v.offY),
		float32(w), float32(h), c, false)
}

func (v view) fillCircle(screen *ebiten.Image, cx, cy, r float64, c color.Color) {
	vector.FillCircle(screen, float32(cx+v.offX), float32(cy+v.offY), float32(r), c, true)
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = max(0, min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// defeatScale shrinks entities playing their defeat animation.
func defeatScale(e *donburi.Entry) float64 {
	if !e.HasComponent(components.Defeat) {
		return 1
	}
	return 1 - components.Defeat.Get(e).Progress
}

// DrawLevel fills the background and draws every platform.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.BackgroundColor)

	v, ok := viewFor(e, screen)
	if !ok {
		return
	}
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		v.fillRect(screen, o.X, o.Y, o.W, o.H, 1, cfg.Brown)
		// Grass edge
		v.fillRect(screen, o.X, o.Y, o.W, 4, 1, cfg.Green)
	})
}

// DrawEntities draws pickups, the goal, enemies, the boss, projectiles and
// the player, back to front.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewFor(e, screen)
	if !ok {
		return
	}

	components.Goal.Each(e.World, func(entry *donburi.Entry) {
		goal := components.Goal.Get(entry)
		if !goal.Enabled {
			return
		}
		o := components.Object.Get(entry)
		v.fillRect(screen, o.X, o.Y, o.W, o.H, goal.Scale, cfg.Green)
		v.fillRect(screen, o.X+o.W/2-2, o.Y, 4, o.H, goal.Scale, cfg.White)
	})

	components.Pickup.Each(e.World, func(entry *donburi.Entry) {
		pickup := components.Pickup.Get(entry)
		o := components.Object.Get(entry)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		c := cfg.Yellow
		if pickup.Kind == components.PickupHealth {
			c = cfg.Pink
		}
		v.fillCircle(screen, o.CenterX(), o.CenterY(), o.W/2*pickup.Scale, fade(c, pickup.Alpha))
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		v.fillRect(screen, o.X, o.Y, o.W, o.H, defeatScale(entry), cfg.EnemyRed)
	})

	tags.Boss.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		v.fillRect(screen, o.X, o.Y, o.W, o.H, defeatScale(entry), bossColor(components.Boss.Get(entry)))
	})

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		v.fillCircle(screen, o.CenterX(), o.CenterY(), o.W/2, cfg.Orange)
	})

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		o := components.Object.Get(entry)
		c := cfg.PlayerBlue
		if !player.Alive {
			c = cfg.Grey
		}
		v.fillRect(screen, o.X, o.Y, o.W, o.H, 1, fade(c, player.BlinkAlpha))

		// Eye on the facing side
		eyeX := o.CenterX() + player.Facing*o.W/4
		v.fillCircle(screen, eyeX, o.Y+o.H/3, 3, fade(cfg.White, player.BlinkAlpha))
	})
}

func bossColor(boss *components.BossData) color.RGBA {
	switch {
	case !boss.Alive:
		return cfg.Grey
	case boss.Invulnerable:
		return cfg.Blue
	case boss.Action == cfg.BossCharging:
		return cfg.Red
	}
	return cfg.Orange
}
