package render

import (
	"image/color"
	"testing"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/tags"
	"github.com/stretchr/testify/assert"
)

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	assert.Equal(t, c, fade(c, 1))
	assert.Equal(t, color.RGBA{}, fade(c, 0))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 127}, fade(c, 0.5))
	assert.Equal(t, c, fade(c, 2), "alpha is clamped")
}

func TestView_Visible(t *testing.T) {
	v := view{offX: 0, offY: 0, width: 800, height: 600}

	assert.True(t, v.visible(10, 10, 32, 32))
	assert.True(t, v.visible(-80, 10, 32, 32), "within the padding")
	assert.False(t, v.visible(-200, 10, 32, 32))
	assert.False(t, v.visible(10, 700, 32, 32))
}

func TestBossColor(t *testing.T) {
	boss := components.NewBoss(6, cfg.Boss.Phases[0])
	assert.Equal(t, cfg.Orange, bossColor(&boss))

	boss.Action = cfg.BossCharging
	assert.Equal(t, cfg.Red, bossColor(&boss))

	boss.Invulnerable = true
	assert.Equal(t, cfg.Blue, bossColor(&boss))

	boss.Alive = false
	assert.Equal(t, cfg.Grey, bossColor(&boss))
}

func TestTagColor(t *testing.T) {
	assert.Equal(t, cfg.Grey, tagColor([]string{tags.ResolvSolid}))
	assert.Equal(t, cfg.Red, tagColor([]string{tags.ResolvBoss}))
	assert.Equal(t, cfg.Cyan, tagColor([]string{tags.ResolvProjectile}))
}
