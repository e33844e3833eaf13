package render

import (
	"fmt"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/fonts"
	"github.com/automoto/megagolem/session"
	"github.com/automoto/megagolem/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const heartRadius = 7.0

// NewDrawHUD returns a drawer for score, lives, level and the dash indicator.
func NewDrawHUD(s *session.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		drawHUD(e, screen, s)
	}
}

func drawHUD(e *ecs.ECS, screen *ebiten.Image, s *session.Session) {
	margin := cfg.HUD.Margin
	width := float64(screen.Bounds().Dx())
	face := fonts.Bold.Get()

	vector.FillRect(screen, 0, 0, float32(width), 58, cfg.HUD.PanelColor, false)

	drawLeft(screen, fmt.Sprintf("Score: %d", s.Score), face, margin, margin+18, cfg.HUD.ScoreColor)
	drawRight(screen, fmt.Sprintf("LEVEL %d", s.CurrentLevel), face, width-margin, margin+18, cfg.HUD.LevelColor)

	// Empty hearts first, filled on top
	for i := range s.MaxLives {
		x := margin + heartRadius + float64(i)*(2*heartRadius+cfg.HUD.HeartSpacing)
		y := margin + 36
		c := cfg.Grey
		if i < s.Lives {
			c = cfg.HUD.HeartColor
		}
		vector.FillCircle(screen, float32(x), float32(y), heartRadius, c, true)
	}

	if playerEntry, ok := components.Player.First(e.World); ok {
		if components.Player.Get(playerEntry).Dashing {
			drawRight(screen, "DASH!", face, width-margin, margin+44, cfg.HUD.DashColor)
		}
	}

	tags.Boss.Each(e.World, func(entry *donburi.Entry) {
		drawBossBar(screen, components.Boss.Get(entry))
	})
}

// drawBossBar shows the boss health coloured by the remaining fraction.
func drawBossBar(screen *ebiten.Image, boss *components.BossData) {
	if !boss.Alive {
		return
	}
	x, y := float32(cfg.HUD.BossBarX), float32(cfg.HUD.BossBarY+40)
	w, h := float32(cfg.HUD.BossBarWidth), float32(cfg.HUD.BossBarHeight)
	fraction := boss.HealthFraction()

	fill := cfg.Green
	switch {
	case fraction <= cfg.Boss.Phase3Fraction:
		fill = cfg.Red
	case fraction <= cfg.Boss.Phase2Fraction:
		fill = cfg.Orange
	}

	vector.FillRect(screen, x, y, w, h, cfg.Black, false)
	vector.FillRect(screen, x, y, w*float32(fraction), h, fill, false)
	border := cfg.White
	if boss.Invulnerable {
		border = cfg.Cyan
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	label := fmt.Sprintf("GOLEM  PHASE %d", boss.Phase)
	drawCentered(screen, label, fonts.Small.Get(), float64(x+w/2), float64(y+h)-10, cfg.White)
}
