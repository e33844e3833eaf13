// Package feedback is the fire-and-forget channel from game logic to
// presentation. Logic never waits on or reads back anything it sends here.
package feedback

import (
	"fmt"

	cfg "github.com/automoto/megagolem/config"
)

// TextStyle selects how a floating text is drawn.
type TextStyle int

const (
	StyleScore TextStyle = iota
	StyleHit
	StyleDanger
	StyleShield
	StyleHeal
	StyleAttack
	StyleWait
	StyleBanner
)

// ParticleKind selects a particle burst.
type ParticleKind int

const (
	Sparkle ParticleKind = iota
	Dust
	Hearts
	Trail
	Shockwave
	Explosion
)

// Sink receives presentation events.
type Sink interface {
	PlaySound(id cfg.SoundID)
	FloatingText(x, y float64, text string, style TextStyle)
	Particles(x, y float64, kind ParticleKind)
}

// Nop discards everything.
type Nop struct{}

func (Nop) PlaySound(cfg.SoundID)                           {}
func (Nop) FloatingText(float64, float64, string, TextStyle) {}
func (Nop) Particles(float64, float64, ParticleKind)         {}

// Event is one recorded call on a Recorder.
type Event struct {
	Sound    cfg.SoundID
	Text     string
	Style    TextStyle
	Particle ParticleKind
	X, Y     float64
	Kind     string // "sound", "text" or "particles"
}

func (e Event) String() string {
	switch e.Kind {
	case "sound":
		return fmt.Sprintf("sound(%d)", e.Sound)
	case "text":
		return fmt.Sprintf("text(%q)", e.Text)
	}
	return fmt.Sprintf("particles(%d)", e.Particle)
}

// Recorder keeps every event it receives. Tests use it in place of the renderer.
type Recorder struct {
	Events []Event
}

func (r *Recorder) PlaySound(id cfg.SoundID) {
	r.Events = append(r.Events, Event{Kind: "sound", Sound: id})
}

func (r *Recorder) FloatingText(x, y float64, text string, style TextStyle) {
	r.Events = append(r.Events, Event{Kind: "text", X: x, Y: y, Text: text, Style: style})
}

func (r *Recorder) Particles(x, y float64, kind ParticleKind) {
	r.Events = append(r.Events, Event{Kind: "particles", X: x, Y: y, Particle: kind})
}

// Sounds counts how many times id was played.
func (r *Recorder) Sounds(id cfg.SoundID) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == "sound" && e.Sound == id {
			n++
		}
	}
	return n
}

// Texts counts floating texts with the given content.
func (r *Recorder) Texts(text string) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == "text" && e.Text == text {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
