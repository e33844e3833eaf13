package assets

import (
	"testing"
	"time"

	cfg "github.com/automoto/megagolem/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	for n := 1; n <= cfg.Run.MaxLevel; n++ {
		level, err := LoadLevel(n)
		require.NoError(t, err, "level %d", n)
		assert.NotEmpty(t, level.Platforms)
		assert.NotNil(t, level.Goal)
	}

	_, err := LoadLevel(cfg.Run.MaxLevel + 1)
	assert.Error(t, err)
}

func TestLoadLevel_BossArena(t *testing.T) {
	level, err := LoadLevel(3)
	require.NoError(t, err)

	assert.True(t, level.HasBoss())
	assert.Empty(t, level.Enemies)
	assert.Equal(t, 800, level.Width)
}

func TestRenderNotes_Length(t *testing.T) {
	notes := []cfg.Note{
		{Frequency: 440, Duration: 100 * time.Millisecond},
		{Frequency: 0, Duration: 50 * time.Millisecond},
	}

	pcm := RenderNotes(notes, 1000)
	assert.Len(t, pcm, 150*4)
}

func TestToneCache(t *testing.T) {
	c := NewToneCache(8000)

	assert.Nil(t, c.PCM(cfg.SoundNone))
	first := c.PCM(cfg.SoundCoin)
	require.NotEmpty(t, first)
	assert.Equal(t, 800*4, len(first), "two 50ms notes at 8kHz")
	assert.Same(t, &first[0], &c.PCM(cfg.SoundCoin)[0])
}
