package components

import "github.com/yohamta/donburi"

// EnemyData is the state of a patrolling enemy.
type EnemyData struct {
	Alive        bool
	Direction    float64 // -1 or +1
	TurnCooldown int     // ticks until the next reversal is allowed
	Speed        float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
