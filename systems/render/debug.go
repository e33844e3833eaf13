package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/fonts"
	"github.com/automoto/megagolem/systems"
	"github.com/automoto/megagolem/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips the collision overlay on the debug action.
func UpdateDebugToggle(e *ecs.ECS) {
	input := systems.GetOrCreateInput(e)
	if systems.GetAction(input, cfg.ActionDebug).JustPressed {
		cfg.Debug.DrawBodies = !cfg.Debug.DrawBodies
	}
}

// DrawDebug outlines every collision object and prints the player and boss state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBodies {
		return
	}
	v, ok := viewFor(e, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}
			vector.StrokeRect(screen,
				float32(obj.X+v.offX), float32(obj.Y+v.offY),
				float32(obj.W), float32(obj.H), 1, tagColor(obj.Tags()), false)
		}
	}

	face := fonts.Small.Get()
	y := v.height - 40.0
	if playerEntry, ok := components.Player.First(e.World); ok {
		body := components.Body.Get(playerEntry)
		state := components.State.Get(playerEntry)
		line := fmt.Sprintf("player %s vx=%.0f vy=%.0f touch=%+v", state.CurrentState, body.VX, body.VY, body.Touching)
		drawLeft(screen, line, face, 8, y, cfg.White)
		y += 14
	}
	if bossEntry, ok := tags.Boss.First(e.World); ok {
		boss := components.Boss.Get(bossEntry)
		line := fmt.Sprintf("boss %s hp=%d phase=%d invuln=%t cycle=%v", boss.Action, boss.Health, boss.Phase, boss.Invulnerable, boss.CycleClock)
		drawLeft(screen, line, face, 8, y, cfg.White)
	}
}

func tagColor(objTags []string) color.Color {
	for _, tag := range objTags {
		switch tag {
		case tags.ResolvSolid:
			return cfg.Grey
		case tags.ResolvPlayer:
			return cfg.Blue
		case tags.ResolvEnemy, tags.ResolvBoss:
			return cfg.Red
		case tags.ResolvPickup, tags.ResolvGoal:
			return cfg.Green
		}
	}
	return cfg.Cyan
}
