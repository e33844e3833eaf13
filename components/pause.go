package components

import "github.com/yohamta/donburi"

// PauseMenuOption is an entry of the pause overlay.
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuQuit
	pauseOptionCount
)

// PauseMenuOptions lists the overlay entries in display order.
func PauseMenuOptions() []PauseMenuOption {
	opts := make([]PauseMenuOption, pauseOptionCount)
	for i := range opts {
		opts[i] = PauseMenuOption(i)
	}
	return opts
}

func (o PauseMenuOption) Label() string {
	if o == MenuQuit {
		return "Quit to Menu"
	}
	return "Resume"
}

// PauseData is a world singleton. QuitRequested tells the level scene to
// return to the title screen after this frame.
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	QuitRequested  bool
}

var Pause = donburi.NewComponentType[PauseData]()
