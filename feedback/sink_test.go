package feedback

import (
	"testing"

	cfg "github.com/automoto/megagolem/config"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Counts(t *testing.T) {
	r := &Recorder{}
	var s Sink = r

	s.PlaySound(cfg.SoundCoin)
	s.PlaySound(cfg.SoundCoin)
	s.PlaySound(cfg.SoundJump)
	s.FloatingText(10, 20, "+10", StyleScore)
	s.Particles(10, 20, Sparkle)

	assert.Len(t, r.Events, 5)
	assert.Equal(t, 2, r.Sounds(cfg.SoundCoin))
	assert.Equal(t, 1, r.Texts("+10"))
	assert.Equal(t, `text("+10")`, r.Events[3].String())

	r.Reset()
	assert.Empty(t, r.Events)
}
