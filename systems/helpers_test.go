package systems

import (
	"testing"
	"time"

	"github.com/automoto/megagolem/components"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/leveldata"
	"github.com/automoto/megagolem/session"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/automoto/megagolem/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const testStep = 16 * time.Millisecond

// fixedRand always returns the same value. 0.5 never triggers a boss jump
// or charge.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

type testWorld struct {
	ecs *ecs.ECS
	ctx *Context
	rec *feedback.Recorder
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	rec := &feedback.Recorder{}
	ctx := NewContext(session.New(), timing.NewClock(testStep), rec, fixedRand(0.5))
	factory.CreateSpace(e, 800, 600, 16, 16)
	return &testWorld{ecs: e, ctx: ctx, rec: rec}
}

// run ticks the clock and then every system in order, n times.
func (w *testWorld) run(n int, fns ...func(*Context, *ecs.ECS)) {
	for range n {
		w.ctx.Clock.Tick()
		for _, fn := range fns {
			fn(w.ctx, w.ecs)
		}
	}
}

func (w *testWorld) platform(x, y, width, height float64) *donburi.Entry {
	return factory.CreatePlatform(w.ecs, leveldata.Rect{X: x, Y: y, W: width, H: height})
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

// standOn places the entry so its feet rest at y and marks it grounded.
func standOn(e *donburi.Entry, y float64) {
	obj := components.Object.Get(e)
	obj.Y = y - obj.H
	obj.Update()
	components.Body.Get(e).Touching.Down = true
}
