package systems

import (
	"math/rand"

	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/session"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/automoto/megagolem/timing"
	"github.com/yohamta/donburi/ecs"
)

// Context carries the run state and collaborators every gameplay system needs.
// It is created by the scene and shared by reference.
type Context struct {
	Session *session.Session
	Clock   *timing.Clock
	Sink    feedback.Sink
	Rand    factory.Rand
}

// NewContext fills nil collaborators with defaults: a fresh session, a
// 60 Hz clock, a discarding sink and a time-seeded random source.
func NewContext(s *session.Session, clock *timing.Clock, sink feedback.Sink, rng factory.Rand) *Context {
	if s == nil {
		s = session.New()
	}
	if clock == nil {
		clock = timing.NewClock(0)
	}
	if sink == nil {
		sink = feedback.Nop{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Context{Session: s, Clock: clock, Sink: sink, Rand: rng}
}

// Bind adapts a context-aware system to donburi's system signature.
func (c *Context) Bind(fn func(*Context, *ecs.ECS)) ecs.System {
	return func(e *ecs.ECS) {
		fn(c, e)
	}
}

// dt is the tick length in seconds.
func (c *Context) dt() float64 {
	return c.Clock.Seconds()
}

// Tick advances the clock. The scene runs it once per update, before any
// other system.
func Tick(ctx *Context, _ *ecs.ECS) {
	ctx.Clock.Tick()
}
