package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the part of the configuration a YAML tuning file may override.
// Keys that are absent in the file keep their current values.
type Tuning struct {
	Timing  TimingConfig  `yaml:"timing"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Boss    BossConfig    `yaml:"boss"`
	Combat  CombatConfig  `yaml:"combat"`
	Pickup  PickupConfig  `yaml:"pickup"`
	Goal    GoalConfig    `yaml:"goal"`
	Run     RunConfig     `yaml:"run"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	boss := Boss
	boss.Phases = append([]BossPhaseConfig(nil), Boss.Phases...)
	return Tuning{
		Timing:  Timing,
		Physics: Physics,
		Player:  Player,
		Enemy:   Enemy,
		Boss:    boss,
		Combat:  Combat,
		Pickup:  Pickup,
		Goal:    Goal,
		Run:     Run,
	}
}

// ParseTuning overlays a YAML document on the live configuration and
// validates the result. Nothing is applied.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the behavior systems cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Timing.Step <= 0 {
		errs = append(errs, errors.New("timing.step must be positive"))
	}
	if t.Physics.CellSize <= 0 {
		errs = append(errs, errors.New("physics.cellSize must be positive"))
	}
	if t.Player.BlinkCycles < 0 || t.Player.BlinkInterval <= 0 {
		errs = append(errs, errors.New("player blink window must be non-negative"))
	}
	if t.Enemy.TurnCooldownTicks < 0 || t.Boss.TurnCooldownTicks < 0 {
		errs = append(errs, errors.New("turn cooldowns must be non-negative"))
	}
	if t.Boss.MaxHealth <= 0 {
		errs = append(errs, errors.New("boss.maxHealth must be positive"))
	}
	if len(t.Boss.Phases) != 3 {
		errs = append(errs, fmt.Errorf("boss.phases must list 3 phases, got %d", len(t.Boss.Phases)))
	}
	if t.Boss.Phase3Fraction > t.Boss.Phase2Fraction {
		errs = append(errs, errors.New("boss.phase3Fraction must not exceed boss.phase2Fraction"))
	}
	if t.Boss.VulnerableDuration <= 0 || t.Boss.InvulnerableDuration < 0 {
		errs = append(errs, errors.New("boss vulnerability cycle must have a positive vulnerable segment"))
	}
	if t.Run.StartingLives <= 0 || t.Run.StartingLives > t.Run.MaxLives {
		errs = append(errs, errors.New("run.startingLives must be in 1..maxLives"))
	}
	if t.Run.FirstLevel < 1 || t.Run.FirstLevel > t.Run.MaxLevel {
		errs = append(errs, errors.New("run.firstLevel must be in 1..maxLevel"))
	}
	return errors.Join(errs...)
}

// Apply replaces the live configuration.
func (t Tuning) Apply() {
	Timing = t.Timing
	Physics = t.Physics
	Player = t.Player
	Enemy = t.Enemy
	Boss = t.Boss
	Combat = t.Combat
	Pickup = t.Pickup
	Goal = t.Goal
	Run = t.Run
}

// LoadTuning reads a tuning file from fsys and applies it.
func LoadTuning(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	t.Apply()
	return nil
}

// LoadTuningFile applies a tuning file from the host filesystem.
func LoadTuningFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	t.Apply()
	return nil
}
