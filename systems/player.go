package systems

import (
	"log"
	"math"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/session"
	"github.com/automoto/megagolem/timing"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ctx *Context, ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	floor := worldBounds(ecs).H + cfg.Player.FallDeathMargin

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ctx, playerEntry, input, floor)
	})
}

func updateSinglePlayer(ctx *Context, playerEntry *donburi.Entry, input *components.InputData, floor float64) {
	player := components.Player.Get(playerEntry)
	updateBlink(ctx, player)

	// A dead player only waits out the loss delay
	if !player.Alive {
		if player.LossTimer.Advance(ctx.Clock.Delta()) {
			ctx.Session.Finish(session.Lost)
		}
		return
	}

	body := components.Body.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	applyDashProfile(player, input)
	applyWallSlide(player, body)
	handleMovementInput(player, body, input)
	handleJumpInput(ctx, player, body, obj, input)
	updateDashTrail(ctx, player, body, obj)

	player.JumpKeyWasDown = input.Held(cfg.ActionJump)

	if obj.CenterY() > floor {
		KillPlayer(ctx, playerEntry)
	}
}

// applyDashProfile switches speed and jump impulse while dash is held.
func applyDashProfile(player *components.PlayerData, input *components.InputData) {
	player.Dashing = input.Held(cfg.ActionDash)
	if player.Dashing {
		player.Speed = cfg.Player.DashSpeed
		player.JumpVelocity = cfg.Player.DashJumpVelocity
		return
	}
	player.Speed = cfg.Player.NormalSpeed
	player.JumpVelocity = cfg.Player.NormalJumpVelocity
}

func onWall(body *components.BodyData) bool {
	return body.Touching.Side() && !body.Touching.Down
}

func applyWallSlide(player *components.PlayerData, body *components.BodyData) {
	player.WallSliding = onWall(body) && body.VY > 0
	if player.WallSliding && body.VY > cfg.Player.WallSlideSpeed {
		body.VY = cfg.Player.WallSlideSpeed
	}
}

func handleMovementInput(player *components.PlayerData, body *components.BodyData, input *components.InputData) {
	switch {
	case input.Held(cfg.ActionMoveLeft):
		body.VX = -player.Speed
		player.Facing = cfg.DirectionLeft
	case input.Held(cfg.ActionMoveRight):
		body.VX = player.Speed
		player.Facing = cfg.DirectionRight
	case body.OnGround():
		body.VX = 0
	default:
		// Keep air momentum
		body.VX *= cfg.Player.AirDamping
	}
}

// handleJumpInput fires at most one jump per press. A wall jump takes
// priority over a ground jump.
func handleJumpInput(ctx *Context, player *components.PlayerData, body *components.BodyData, obj *components.ObjectData, input *components.InputData) {
	if !input.Held(cfg.ActionJump) || player.JumpKeyWasDown {
		return
	}

	feetY := obj.Y + obj.H
	switch {
	case onWall(body):
		away := cfg.DirectionRight
		if body.Touching.Right {
			away = cfg.DirectionLeft
		}
		body.VX = cfg.Player.WallJumpVelocityX * away
		body.VY = cfg.Player.WallJumpVelocityY
		player.Facing = away
		ctx.Sink.PlaySound(cfg.SoundWallJump)
		ctx.Sink.Particles(obj.CenterX(), feetY, feedback.Dust)
	case body.OnGround():
		body.VY = player.JumpVelocity
		ctx.Sink.PlaySound(cfg.SoundJump)
		ctx.Sink.Particles(obj.CenterX(), feetY, feedback.Dust)
		if player.Dashing {
			ctx.Sink.Particles(obj.CenterX(), obj.CenterY(), feedback.Shockwave)
		}
	}
}

func updateDashTrail(ctx *Context, player *components.PlayerData, body *components.BodyData, obj *components.ObjectData) {
	player.TrailTimer.Advance(ctx.Clock.Delta())
	if !player.Dashing || math.Abs(body.VX) <= cfg.Player.DashTrailMinSpeed {
		return
	}
	if player.TrailTimer.Active() {
		return
	}
	player.TrailTimer = timing.Countdown(cfg.Player.DashTrailInterval)
	ctx.Sink.Particles(obj.CenterX(), obj.CenterY(), feedback.Trail)
}

// DamagePlayer removes a life unless the player is dead or invincible. The
// last life kills, any other starts the invincibility blink.
func DamagePlayer(ctx *Context, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.Invincible || !player.Alive {
		return
	}

	ctx.Sink.PlaySound(cfg.SoundDamage)
	if ctx.Session.LoseLife() <= 0 {
		KillPlayer(ctx, playerEntry)
		return
	}
	startBlink(player)
}

// startBlink makes the player invincible for BlinkCycles fade out and fade
// in pairs.
func startBlink(player *components.PlayerData) {
	interval := float32(cfg.Player.BlinkInterval.Seconds())
	low := float32(cfg.Player.BlinkAlpha)

	seq := gween.NewSequence()
	for range cfg.Player.BlinkCycles {
		seq.Add(gween.New(1, low, interval, ease.Linear))
		seq.Add(gween.New(low, 1, interval, ease.Linear))
	}

	player.Invincible = true
	player.Blink = seq
	player.BlinkAlpha = 1
}

func updateBlink(ctx *Context, player *components.PlayerData) {
	if player.Blink == nil {
		return
	}
	alpha, _, done := player.Blink.Update(float32(ctx.dt()))
	player.BlinkAlpha = float64(alpha)
	if done {
		player.Blink = nil
		player.Invincible = false
		player.BlinkAlpha = 1
	}
}

// KillPlayer starts the death hop. The run is lost once LossDelay has passed.
// Calling it on a dead player does nothing.
func KillPlayer(ctx *Context, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if !player.Alive {
		return
	}

	log.Printf("player died, %d lives left", ctx.Session.Lives)
	player.Alive = false
	player.WallSliding = false
	player.Dashing = false
	player.LossTimer = timing.Countdown(cfg.Player.LossDelay)

	body := components.Body.Get(playerEntry)
	body.VX = 0
	body.VY = cfg.Player.DeathHopVelocity
	body.CollideWorldBounds = false

	components.State.Get(playerEntry).Set(cfg.Die)
}
