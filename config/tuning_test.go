package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreTuning(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)
}

func TestParseTuning_OverridesOnlyPresentKeys(t *testing.T) {
	restoreTuning(t)

	tuning, err := ParseTuning([]byte(`
player:
  dashSpeed: 400
boss:
  maxHealth: 9
  hitInvulnDuration: 2s
`))
	require.NoError(t, err)

	assert.Equal(t, 400.0, tuning.Player.DashSpeed)
	assert.Equal(t, 200.0, tuning.Player.NormalSpeed)
	assert.Equal(t, 9, tuning.Boss.MaxHealth)
	assert.Equal(t, 2*time.Second, tuning.Boss.HitInvulnDuration)
	assert.Len(t, tuning.Boss.Phases, 3)

	// Parsing never touches the live configuration
	assert.Equal(t, 350.0, Player.DashSpeed)
	assert.Equal(t, 6, Boss.MaxHealth)
}

func TestParseTuning_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero boss health", "boss:\n  maxHealth: 0\n"},
		{"two phases", "boss:\n  phases:\n    - speed: 60\n      attackCooldown: 2s\n    - speed: 80\n      attackCooldown: 1s\n"},
		{"lives above max", "run:\n  startingLives: 5\n"},
		{"negative step", "timing:\n  step: -1ms\n"},
		{"not yaml", "player: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadTuning_AppliesFile(t *testing.T) {
	restoreTuning(t)

	fsys := fstest.MapFS{
		"tuning.yaml": &fstest.MapFile{Data: []byte("enemy:\n  speed: 120\n  probeAhead: 20\n")},
	}

	require.NoError(t, LoadTuning(fsys, "tuning.yaml"))
	assert.Equal(t, 120.0, Enemy.Speed)
	assert.Equal(t, 20.0, Enemy.ProbeAhead)
	assert.Equal(t, 10, Enemy.TurnCooldownTicks)
}

func TestLoadTuning_MissingFile(t *testing.T) {
	err := LoadTuning(fstest.MapFS{}, "nope.yaml")
	assert.ErrorContains(t, err, "nope.yaml")
}

func TestStateID_String(t *testing.T) {
	assert.Equal(t, "wallslide", WallSlide.String())
	assert.Equal(t, "charging", BossCharging.String())
	assert.Equal(t, "unknown", StateID(99).String())
}
