package systems

import (
	"testing"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/leveldata"
	"github.com/automoto/megagolem/session"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/automoto/megagolem/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newGameplay(t *testing.T, number int) (*ecs.ECS, *Context, *donburi.Entry) {
	t.Helper()
	level, err := leveldata.Builtin(number)
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	ctx := NewContext(session.New(), timing.NewClock(testStep), &feedback.Recorder{}, fixedRand(0.5))
	player := factory.BuildLevel(e, number, level, 16)
	AddGameplaySystems(e, ctx)
	return e, ctx, player
}

func TestGameplay_PlayerSettlesOnStartPlatform(t *testing.T) {
	e, ctx, player := newGameplay(t, 1)
	input := GetOrCreateInput(e)

	for range 120 {
		PressActions(input)
		e.Update()
	}

	obj := components.Object.Get(player)
	assert.InDelta(t, 434, obj.Y+obj.H, 1e-6)
	assert.True(t, components.Player.Get(player).Alive)
	assert.Equal(t, cfg.Idle, components.State.Get(player).CurrentState)
	assert.Equal(t, session.Playing, ctx.Session.Outcome)
	assert.Equal(t, 120*testStep, ctx.Clock.Now())
}

func TestGameplay_PauseStopsTheClock(t *testing.T) {
	e, ctx, player := newGameplay(t, 1)
	input := GetOrCreateInput(e)

	PressActions(input, cfg.ActionPause)
	e.Update()
	require.True(t, IsPaused(e))

	beforeX := components.Object.Get(player).X
	for range 30 {
		PressActions(input, cfg.ActionMoveRight)
		e.Update()
	}

	assert.Zero(t, ctx.Clock.Now())
	assert.Equal(t, beforeX, components.Object.Get(player).X)

	PressActions(input, cfg.ActionPause)
	e.Update()
	assert.False(t, IsPaused(e))
	assert.Equal(t, testStep, ctx.Clock.Now())
}

func TestGameplay_PauseMenuQuit(t *testing.T) {
	e, _, _ := newGameplay(t, 1)
	input := GetOrCreateInput(e)

	for _, ids := range [][]cfg.ActionID{
		{cfg.ActionPause}, {}, {cfg.ActionMoveDown}, {}, {cfg.ActionMenuSelect},
	} {
		PressActions(input, ids...)
		e.Update()
	}

	assert.True(t, GetOrCreatePause(e).QuitRequested)
}
