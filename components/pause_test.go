package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPauseMenuOptions_Order(t *testing.T) {
	opts := PauseMenuOptions()
	assert.Equal(t, []PauseMenuOption{MenuResume, MenuQuit}, opts)
	assert.Equal(t, "Resume", opts[0].Label())
	assert.Equal(t, "Quit to Menu", opts[1].Label())
}
