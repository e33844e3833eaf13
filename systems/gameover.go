package systems

import (
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/session"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system. Continuing returns to the menu.
func NewUpdateGameOver(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := components.GameOver.Get(components.GameOver.MustFirst(e.World))
		input := GetOrCreateInput(e)

		scale, _, done := gameOver.Pulse.Update(float32(cfg.Timing.Step.Seconds()))
		if done {
			gameOver.Pulse.Reset()
		}
		gameOver.Scale = float64(scale)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionJump).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// CreateGameOver records the finished run and updates the stored best score.
func CreateGameOver(e *ecs.ECS, s *session.Session) *components.GameOverData {
	best := LoadBestScore()
	newBest := s.Score > best
	if newBest {
		best = s.Score
		SaveBestScore(best)
	}

	entry := e.World.Entry(e.World.Create(components.GameOver))
	components.GameOver.SetValue(entry, components.GameOverData{
		Outcome:         s.Outcome,
		Score:           s.Score,
		LevelsCompleted: s.LevelsCompleted(),
		MaxLevel:        s.MaxLevel,
		BestScore:       best,
		NewBest:         newBest,
		Pulse:           yoyo(1, 1.1, 0.8),
		Scale:           1,
	})

	if s.Outcome == session.Won {
		PlaySFX(e, cfg.SoundLevelComplete)
	} else {
		PlaySFX(e, cfg.SoundGameOver)
	}
	return components.GameOver.Get(entry)
}
