// Package session holds the mutable state of a single playthrough: score,
// lives, and level progression. One Session is created when a run starts
// and passed to every system that needs it.
package session

import (
	"errors"

	cfg "github.com/automoto/megagolem/config"
)

// ErrNoNextLevel is returned by AdvanceLevel on the last level.
var ErrNoNextLevel = errors.New("session: no next level")

// Outcome is the terminal result of a run.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "playing"
}

type Session struct {
	Score        int
	Lives        int
	MaxLives     int
	CurrentLevel int
	MaxLevel     int
	Outcome      Outcome
}

// New starts a run with the configured defaults.
func New() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset restores the defaults, as the menu does before a new run.
func (s *Session) Reset() {
	*s = Session{
		Lives:        cfg.Run.StartingLives,
		MaxLives:     cfg.Run.MaxLives,
		CurrentLevel: cfg.Run.FirstLevel,
		MaxLevel:     cfg.Run.MaxLevel,
	}
}

// AddScore adds points. Negative amounts are ignored.
func (s *Session) AddScore(points int) {
	if points > 0 {
		s.Score += points
	}
}

// LoseLife removes one life and returns the remaining count, never below zero.
func (s *Session) LoseLife() int {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives
}

// GainLife adds n lives when below the maximum and reports whether any were added.
func (s *Session) GainLife(n int) bool {
	if n <= 0 || s.Lives >= s.MaxLives {
		return false
	}
	s.Lives = min(s.Lives+n, s.MaxLives)
	return true
}

// HasNextLevel reports whether the current level is not the last one.
func (s *Session) HasNextLevel() bool {
	return s.CurrentLevel < s.MaxLevel
}

// AdvanceLevel moves to the next level.
func (s *Session) AdvanceLevel() error {
	if !s.HasNextLevel() {
		return ErrNoNextLevel
	}
	s.CurrentLevel++
	return nil
}

// Finish records the run outcome. The first call wins.
func (s *Session) Finish(o Outcome) {
	if s.Outcome == Playing {
		s.Outcome = o
	}
}

// Finished reports whether the run has an outcome.
func (s *Session) Finished() bool {
	return s.Outcome != Playing
}

// LevelsCompleted counts cleared levels, as shown on the game over screen.
func (s *Session) LevelsCompleted() int {
	if s.Outcome == Won {
		return s.CurrentLevel
	}
	return s.CurrentLevel - 1
}
