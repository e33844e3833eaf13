package config

// StateID identifies the current state of a character state machine.
type StateID int

const (
	StateNone StateID = iota

	// Player
	Idle
	Running
	Jump
	Fall
	WallSlide
	Die

	// Patrol enemy
	StatePatrol
	StateDefeated

	// Boss action states
	BossWalking
	BossJumping
	BossCharging
	BossDefeated
)

var stateNames = map[StateID]string{
	StateNone:     "none",
	Idle:          "idle",
	Running:       "running",
	Jump:          "jump",
	Fall:          "fall",
	WallSlide:     "wallslide",
	Die:           "die",
	StatePatrol:   "patrol",
	StateDefeated: "defeated",
	BossWalking:   "walking",
	BossJumping:   "jumping",
	BossCharging:  "charging",
	BossDefeated:  "boss_defeated",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
