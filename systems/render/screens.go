package render

import (
	"fmt"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/fonts"
	"github.com/automoto/megagolem/session"
	"github.com/automoto/megagolem/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause renders the pause overlay while the game is paused.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := systems.GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	drawCentered(screen, "PAUSED", fonts.Title.Get(), width/2, height/3, cfg.White)

	for i, option := range components.PauseMenuOptions() {
		c := cfg.White
		if option == pause.SelectedOption {
			c = cfg.Yellow
		}
		drawCentered(screen, option.Label(), fonts.Bold.Get(), width/2, height/2+float64(i)*36, c)
	}

	hint := "Up/Down: Navigate   Enter: Select   Esc: Resume"
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.White)
}

// DrawMenu renders the title screen.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := systems.GetOrCreateMenu(e)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	screen.Fill(cfg.Black)
	drawCentered(screen, "MEGA GOLEM", fonts.Title.Get(), width/2, height/3, cfg.Yellow)
	drawCentered(screen, "Press ENTER to start", fonts.Bold.Get(), width/2, height/2, fade(cfg.White, menu.Alpha))

	if menu.BestScore > 0 {
		drawCentered(screen, fmt.Sprintf("Best score: %d", menu.BestScore), fonts.Regular.Get(), width/2, height/2+50, cfg.Green)
	}

	controls := []string{
		"Arrows / A D: Move",
		"Space / Up: Jump, also off walls",
		"Shift: Dash",
		"Stomp enemies. Hit the golem only while it is vulnerable.",
	}
	for i, line := range controls {
		drawCentered(screen, line, fonts.Small.Get(), width/2, height-100+float64(i)*18, cfg.Grey)
	}
}

// DrawGameOver renders the result of the finished run.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := components.GameOver.Get(components.GameOver.MustFirst(e.World))
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	screen.Fill(cfg.Black)

	title, c := "GAME OVER", cfg.Red
	if gameOver.Outcome == session.Won {
		title, c = "YOU WIN!", cfg.Green
	}
	drawCentered(screen, title, fonts.Title.Get(), width/2, height/4, c)

	lines := []string{
		fmt.Sprintf("Final score: %d", gameOver.Score),
		fmt.Sprintf("Levels completed: %d/%d", gameOver.LevelsCompleted, gameOver.MaxLevel),
		fmt.Sprintf("Best score: %d", gameOver.BestScore),
	}
	for i, line := range lines {
		drawCentered(screen, line, fonts.Bold.Get(), width/2, height/2+float64(i)*32, cfg.White)
	}
	if gameOver.NewBest {
		drawCentered(screen, "NEW BEST!", fonts.Bold.Get(), width/2, height/2+3*32+8, cfg.Yellow)
	}

	drawScaled(screen, "Press ENTER for menu", fonts.Bold.Get(), width/2, height-60, gameOver.Scale, cfg.White)
}
