package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/systems"
	"github.com/automoto/megagolem/systems/device"
	"github.com/automoto/megagolem/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the result of the finished run
type GameOverScene struct {
	ecs  *ecs.ECS
	env  *Env
	once sync.Once
}

func NewGameOverScene(env *Env) *GameOverScene {
	return &GameOverScene{env: env}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(gs.env)
	}

	gs.ecs.AddSystem(device.UpdateAudio)
	gs.ecs.AddSystem(device.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.env.Changer, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, render.DrawGameOver)

	systems.CreateGameOver(gs.ecs, gs.env.Session)
}
