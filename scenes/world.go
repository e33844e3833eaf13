package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"

	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/systems"
	"github.com/automoto/megagolem/systems/device"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/automoto/megagolem/systems/render"
	"github.com/automoto/megagolem/timing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays the session's current level.
type PlatformerScene struct {
	ecs  *ecs.ECS
	ctx  *systems.Context
	env  *Env
	once sync.Once
}

func NewPlatformerScene(env *Env) *PlatformerScene {
	return &PlatformerScene{env: env}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.ecs == nil {
		return
	}
	// Tuning reloads may change the step between frames
	ps.ctx.Clock.SetStep(cfg.Timing.Step)
	ps.ecs.Update()

	s := ps.env.Session
	switch {
	case s.Finished():
		log.Printf("run %s with score %d", s.Outcome, s.Score)
		ps.env.Changer.ChangeScene(NewGameOverScene(ps.env))
	case systems.GetOrCreatePause(ps.ecs).QuitRequested:
		ps.env.Changer.ChangeScene(NewMenuScene(ps.env))
	case systems.GetOrCreateLevelComplete(ps.ecs).Advance:
		ps.env.Changer.ChangeScene(NewPlatformerScene(ps.env))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	s := ps.env.Session
	level, err := ps.env.Levels(s.CurrentLevel)
	if err != nil {
		log.Printf("Warning: could not load level %d: %v", s.CurrentLevel, err)
		ps.env.Changer.ChangeScene(NewMenuScene(ps.env))
		return
	}

	device.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())
	rng := rand.New(rand.NewSource(rand.Int63()))
	ps.ctx = systems.NewContext(s, timing.NewClock(cfg.Timing.Step), systems.NewWorldSink(e, rng), rng)

	// Audio plays what the previous frame queued, then input for this frame
	e.AddSystem(device.UpdateAudio)
	e.AddSystem(device.UpdateInput)
	e.AddSystem(render.UpdateDebugToggle)
	systems.AddGameplaySystems(e, ps.ctx)

	e.AddRenderer(cfg.Default, render.DrawLevel)
	e.AddRenderer(cfg.Default, render.DrawEntities)
	e.AddRenderer(cfg.Default, render.DrawEffects)
	e.AddRenderer(cfg.Default, render.NewDrawHUD(s))
	e.AddRenderer(cfg.Default, render.DrawDebug)
	e.AddRenderer(cfg.Default, render.DrawPause)

	factory.BuildLevel(e, s.CurrentLevel, level, 16)
	log.Printf("level %d (%s) started, %d lives", s.CurrentLevel, level.Name, s.Lives)

	ps.ecs = e
}
