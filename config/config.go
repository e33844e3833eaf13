package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the scenes.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// TimingConfig controls the fixed simulation step.
type TimingConfig struct {
	Step time.Duration `yaml:"step"` // simulated time per tick
}

// PhysicsConfig contains the physics collaborator's tuning. Velocities are px/s.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`      // px/s^2
	MaxFallSpeed float64 `yaml:"maxFallSpeed"` // px/s
	CellSize     int     `yaml:"cellSize"`     // resolv grid cell
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	NormalSpeed        float64 `yaml:"normalSpeed"`
	DashSpeed          float64 `yaml:"dashSpeed"`
	NormalJumpVelocity float64 `yaml:"normalJumpVelocity"`
	DashJumpVelocity   float64 `yaml:"dashJumpVelocity"`
	AirDamping         float64 `yaml:"airDamping"` // vx multiplier per airborne tick with no input

	// Wall mechanics
	WallJumpVelocityX float64 `yaml:"wallJumpVelocityX"`
	WallJumpVelocityY float64 `yaml:"wallJumpVelocityY"`
	WallSlideSpeed    float64 `yaml:"wallSlideSpeed"` // max fall speed while sliding

	// Lifecycle
	FallDeathMargin  float64       `yaml:"fallDeathMargin"` // pixels below the play area
	DeathHopVelocity float64       `yaml:"deathHopVelocity"`
	LossDelay        time.Duration `yaml:"lossDelay"`
	BlinkInterval    time.Duration `yaml:"blinkInterval"` // one fade out or fade in
	BlinkCycles      int           `yaml:"blinkCycles"`   // fade out + fade in pairs
	BlinkAlpha       float64       `yaml:"blinkAlpha"`

	// Dash trail
	DashTrailMinSpeed float64       `yaml:"dashTrailMinSpeed"`
	DashTrailInterval time.Duration `yaml:"dashTrailInterval"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// EnemyConfig contains patrol enemy configuration
type EnemyConfig struct {
	Speed             float64 `yaml:"speed"`
	TurnCooldownTicks int     `yaml:"turnCooldownTicks"`
	StuckSpeed        float64 `yaml:"stuckSpeed"` // |vx| below this counts as stuck

	// Ledge probe, relative to the body centre and feet
	ProbeAhead  float64 `yaml:"probeAhead"`
	ProbeBelow  float64 `yaml:"probeBelow"`
	ProbeRadius float64 `yaml:"probeRadius"`

	StompScore     int           `yaml:"stompScore"`
	StompBounce    float64       `yaml:"stompBounce"`
	DefeatDuration time.Duration `yaml:"defeatDuration"`

	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// BossPhaseConfig is the locomotion and attack tuning of one boss phase.
type BossPhaseConfig struct {
	Speed          float64       `yaml:"speed"`
	AttackCooldown time.Duration `yaml:"attackCooldown"`
}

// BossConfig contains boss encounter configuration
type BossConfig struct {
	Name      string `yaml:"name"`
	MaxHealth int    `yaml:"maxHealth"`

	// Phases[0] is phase 1. Phase 2 starts below Phase2Fraction of max health,
	// phase 3 below Phase3Fraction.
	Phases         []BossPhaseConfig `yaml:"phases"`
	Phase2Fraction float64           `yaml:"phase2Fraction"`
	Phase3Fraction float64           `yaml:"phase3Fraction"`

	// Action state machine
	JumpVelocity     float64       `yaml:"jumpVelocity"`
	JumpChance       float64       `yaml:"jumpChance"` // per grounded walking tick
	ChargeAfter      time.Duration `yaml:"chargeAfter"`
	ChargeChance     float64       `yaml:"chargeChance"`
	ChargeDuration   time.Duration `yaml:"chargeDuration"`
	ChargeMultiplier float64       `yaml:"chargeMultiplier"`

	TurnCooldownTicks int     `yaml:"turnCooldownTicks"`
	StuckSpeed        float64 `yaml:"stuckSpeed"`

	// Vulnerability
	VulnerableDuration   time.Duration `yaml:"vulnerableDuration"`
	InvulnerableDuration time.Duration `yaml:"invulnerableDuration"`
	HitInvulnDuration    time.Duration `yaml:"hitInvulnDuration"`
	HealthDropFraction   float64       `yaml:"healthDropFraction"`
	HealthDropSpread     float64       `yaml:"healthDropSpread"` // random x offset range
	HealthDropRise       float64       `yaml:"healthDropRise"`

	// Attacks
	ProjectileSpeed    float64       `yaml:"projectileSpeed"`
	ProjectileLifetime time.Duration `yaml:"projectileLifetime"`
	ProjectileSize     float64       `yaml:"projectileSize"`
	GroundPoundRadius  float64       `yaml:"groundPoundRadius"`

	// Outcomes
	StompBounce     float64       `yaml:"stompBounce"`
	DefeatScore     int           `yaml:"defeatScore"`
	DefeatDuration  time.Duration `yaml:"defeatDuration"`
	GoalRevealDelay time.Duration `yaml:"goalRevealDelay"`

	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// CombatConfig contains the stomp policy shared by all targets
type CombatConfig struct {
	StompMinFallSpeed float64 `yaml:"stompMinFallSpeed"`
}

// PickupConfig contains coin and health item configuration
type PickupConfig struct {
	CoinValue        int           `yaml:"coinValue"`
	CoinSize         float64       `yaml:"coinSize"`
	HealAmount       int           `yaml:"healAmount"`
	HealBonusScore   int           `yaml:"healBonusScore"` // awarded instead when lives are full
	HeartSize        float64       `yaml:"heartSize"`
	CollectDuration  time.Duration `yaml:"collectDuration"`
	FloatAmplitude   float64       `yaml:"floatAmplitude"`
	FloatHalfPeriod  time.Duration `yaml:"floatHalfPeriod"`
	PopupRise        float64       `yaml:"popupRise"`
	PopupDuration    time.Duration `yaml:"popupDuration"`
	ParticleDuration time.Duration `yaml:"particleDuration"`
}

// GoalConfig contains goal trigger and level flow configuration
type GoalConfig struct {
	Width              float64       `yaml:"width"`
	Height             float64       `yaml:"height"`
	LevelCompleteDelay time.Duration `yaml:"levelCompleteDelay"`
}

// RunConfig contains the defaults a new playthrough starts with
type RunConfig struct {
	StartingLives int `yaml:"startingLives"`
	MaxLives      int `yaml:"maxLives"`
	FirstLevel    int `yaml:"firstLevel"`
	MaxLevel      int `yaml:"maxLevel"`
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin          float64
	HeartSpacing    float64
	BossBarX        float64
	BossBarY        float64
	BossBarWidth    float64
	BossBarHeight   float64
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TextColor       color.RGBA
	ScoreColor      color.RGBA
	HeartColor      color.RGBA
	DashColor       color.RGBA
	LevelColor      color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead, px/s

	// Screen shake, intensity in pixels and duration in ticks
	DamageShakeIntensity    float64
	DamageShakeDuration     int
	ExplosionShakeIntensity float64
	ExplosionShakeDuration  int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to game
	DrawBodies bool // Outline every resolv object
}

// Global configuration instances
var C *Config
var Timing TimingConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Boss BossConfig
var Combat CombatConfig
var Pickup PickupConfig
var Goal GoalConfig
var Run RunConfig
var HUD HUDConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 241, G: 196, B: 15, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 243, G: 156, B: 18, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	EnemyRed     = color.RGBA{R: 231, G: 76, B: 60, A: 255}
	Green        = color.RGBA{R: 46, G: 204, B: 113, A: 255}
	Pink         = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 102, B: 255, A: 255}
	PlayerBlue   = color.RGBA{R: 52, G: 152, B: 219, A: 255}
	Brown        = color.RGBA{R: 121, G: 85, B: 72, A: 255}
	Sky          = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing and patrol direction
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Timing = TimingConfig{
		Step: time.Second / 60,
	}

	Physics = PhysicsConfig{
		Gravity:      800,
		MaxFallSpeed: 1000,
		CellSize:     16,
	}

	Player = PlayerConfig{
		NormalSpeed:        200,
		DashSpeed:          350,
		NormalJumpVelocity: -450,
		DashJumpVelocity:   -520,
		AirDamping:         0.95,

		WallJumpVelocityX: 300,
		WallJumpVelocityY: -350,
		WallSlideSpeed:    100,

		FallDeathMargin:  50,
		DeathHopVelocity: -300,
		LossDelay:        1000 * time.Millisecond,
		BlinkInterval:    100 * time.Millisecond,
		BlinkCycles:      11, // 2.2s window
		BlinkAlpha:       0.3,

		DashTrailMinSpeed: 100,
		DashTrailInterval: 50 * time.Millisecond,

		CollisionWidth:  32,
		CollisionHeight: 32,
	}

	Enemy = EnemyConfig{
		Speed:             80,
		TurnCooldownTicks: 10,
		StuckSpeed:        10,

		ProbeAhead:  16,
		ProbeBelow:  5,
		ProbeRadius: 2,

		StompScore:     50,
		StompBounce:    -250,
		DefeatDuration: 300 * time.Millisecond,

		CollisionWidth:  32,
		CollisionHeight: 32,
	}

	Boss = BossConfig{
		Name:      "MEGA GOLEM",
		MaxHealth: 6,

		Phases: []BossPhaseConfig{
			{Speed: 60, AttackCooldown: 2000 * time.Millisecond},
			{Speed: 80, AttackCooldown: 1500 * time.Millisecond},
			{Speed: 100, AttackCooldown: 1200 * time.Millisecond},
		},
		Phase2Fraction: 0.66,
		Phase3Fraction: 0.33,

		JumpVelocity:     -300,
		JumpChance:       0.01,
		ChargeAfter:      3000 * time.Millisecond,
		ChargeChance:     0.3,
		ChargeDuration:   1000 * time.Millisecond,
		ChargeMultiplier: 2.5,

		TurnCooldownTicks: 10,
		StuckSpeed:        10,

		VulnerableDuration:   3000 * time.Millisecond,
		InvulnerableDuration: 2000 * time.Millisecond,
		HitInvulnDuration:    1500 * time.Millisecond,
		HealthDropFraction:   0.5,
		HealthDropSpread:     100,
		HealthDropRise:       80,

		ProjectileSpeed:    200,
		ProjectileLifetime: 3 * time.Second,
		ProjectileSize:     16,
		GroundPoundRadius:  150,

		StompBounce:     -300,
		DefeatScore:     500,
		DefeatDuration:  1000 * time.Millisecond,
		GoalRevealDelay: 1500 * time.Millisecond,

		CollisionWidth:  128,
		CollisionHeight: 128,
	}

	Combat = CombatConfig{
		StompMinFallSpeed: 100,
	}

	Pickup = PickupConfig{
		CoinValue:        10,
		CoinSize:         16,
		HealAmount:       1,
		HealBonusScore:   50,
		HeartSize:        24,
		CollectDuration:  300 * time.Millisecond,
		FloatAmplitude:   5,
		FloatHalfPeriod:  600 * time.Millisecond,
		PopupRise:        40,
		PopupDuration:    800 * time.Millisecond,
		ParticleDuration: 500 * time.Millisecond,
	}

	Goal = GoalConfig{
		Width:              40,
		Height:             60,
		LevelCompleteDelay: 2000 * time.Millisecond,
	}

	Run = RunConfig{
		StartingLives: 3,
		MaxLives:      3,
		FirstLevel:    1,
		MaxLevel:      3,
	}

	HUD = HUDConfig{
		Margin:          8,
		HeartSpacing:    4,
		BossBarX:        150,
		BossBarY:        30,
		BossBarWidth:    500,
		BossBarHeight:   30,
		BackgroundColor: Sky,
		PanelColor:      color.RGBA{R: 0, G: 0, B: 0, A: 128},
		TextColor:       White,
		ScoreColor:      Yellow,
		HeartColor:      EnemyRed,
		DashColor:       Orange,
		LevelColor:      Green,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 10,

		DamageShakeIntensity:    4,
		DamageShakeDuration:     12,
		ExplosionShakeIntensity: 8,
		ExplosionShakeDuration:  20,
	}

	Debug = DebugConfig{
		SkipMenu:   false,
		DrawBodies: false,
	}
}
