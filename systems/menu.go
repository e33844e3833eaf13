package systems

import (
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/session"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system. Selecting resets the session
// and starts the first level.
func NewUpdateMenu(sceneChanger SceneChanger, s *session.Session, createPlatformerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := GetOrCreateInput(e)

		alpha, _, done := menu.Blink.Update(float32(cfg.Timing.Step.Seconds()))
		if done {
			menu.Blink.Reset()
		}
		menu.Alpha = float64(alpha)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionJump).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			s.Reset()
			sceneChanger.ChangeScene(createPlatformerScene())
		}
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			BestScore: LoadBestScore(),
			Blink:     yoyo(1, 0.6, 0.8),
			Alpha:     1,
		})
	}
	return components.Menu.Get(entry)
}

// yoyo is a there-and-back sequence the caller resets to loop.
func yoyo(from, to, halfSeconds float32) *gween.Sequence {
	return gween.NewSequence(
		gween.New(from, to, halfSeconds, ease.InOutSine),
		gween.New(to, from, halfSeconds, ease.InOutSine),
	)
}
