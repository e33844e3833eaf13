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

// MenuScene displays the title screen
type MenuScene struct {
	ecs  *ecs.ECS
	env  *Env
	once sync.Once
}

func NewMenuScene(env *Env) *MenuScene {
	return &MenuScene{env: env}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createPlatformerScene := func() interface{} {
		return NewPlatformerScene(ms.env)
	}

	ms.ecs.AddSystem(device.UpdateAudio)
	ms.ecs.AddSystem(device.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.env.Changer, ms.env.Session, createPlatformerScene))

	ms.ecs.AddRenderer(cfg.Default, render.DrawMenu)
}
