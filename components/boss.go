package components

import (
	"time"

	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/timing"
	"github.com/yohamta/donburi"
)

type BossData struct {
	Alive     bool
	Health    int
	MaxHealth int
	Phase     int // 1..3, never decreases
	Action    cfg.StateID

	Invulnerable bool
	InCycle      bool
	CycleClock   time.Duration
	ManualInvuln timing.Countdown // post-hit window, cycle suspended while running

	LastAttack    time.Duration
	MovementTimer time.Duration

	Direction    float64
	TurnCooldown int

	Speed          float64
	AttackCooldown time.Duration

	HasDroppedHealthItem bool
}

// NewBoss returns a boss at full health in phase 1, walking and vulnerable.
func NewBoss(maxHealth int, phase cfg.BossPhaseConfig) BossData {
	return BossData{
		Alive:          true,
		Health:         maxHealth,
		MaxHealth:      maxHealth,
		Phase:          1,
		Action:         cfg.BossWalking,
		InCycle:        true,
		Direction:      cfg.DirectionRight,
		Speed:          phase.Speed,
		AttackCooldown: phase.AttackCooldown,
	}
}

// HealthFraction is Health / MaxHealth.
func (b *BossData) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

var Boss = donburi.NewComponentType[BossData]()
