package leveldata

import "fmt"

const (
	screenWidth  = 800
	screenHeight = 600
)

var builtin = map[int]*Level{
	1: {
		Name:   "level 1",
		Width:  screenWidth,
		Height: screenHeight,
		Platforms: []Rect{
			centered(400, 568, 800, 32), // ground
			centered(150, 450, 200, 32),
			centered(500, 380, 150, 32),
			centered(250, 300, 100, 32),
			centered(600, 250, 150, 32),
			centered(150, 180, 100, 32),
			// wall climb
			centered(680, 468, 32, 200),
			centered(720, 368, 32, 200),
			centered(680, 268, 32, 100),
		},
		Enemies: []Point{
			{300, 400},
			{550, 330},
			{700, 518},
		},
		Coins: []Point{
			{150, 400}, {200, 400},
			{500, 330}, {550, 330}, {600, 330},
			{250, 250},
			{600, 200}, {650, 200},
			{150, 130}, {200, 130},
			{700, 450}, {700, 380}, {700, 310}, {700, 240},
		},
		Goal:        &Point{700, 180},
		PlayerStart: Point{100, 400},
	},
	2: {
		Name:   "level 2",
		Width:  screenWidth,
		Height: screenHeight,
		Platforms: []Rect{
			centered(400, 568, 800, 32), // ground
			centered(100, 480, 120, 32),
			centered(300, 420, 100, 32),
			centered(500, 360, 120, 32),
			centered(700, 300, 100, 32),
			centered(550, 240, 100, 32),
			centered(350, 200, 120, 32),
			centered(150, 150, 100, 32),
			centered(650, 150, 100, 32),
		},
		Enemies: []Point{
			{250, 518},
			{450, 518},
			{500, 310},
			{700, 250},
			{350, 150},
		},
		Coins: []Point{
			{100, 430}, {140, 430},
			{300, 370},
			{500, 310}, {540, 310}, {580, 310},
			{700, 250},
			{550, 190}, {590, 190},
			{350, 150}, {390, 150}, {430, 150},
			{150, 100},
			{650, 100}, {690, 100},
		},
		Goal:        &Point{680, 70},
		PlayerStart: Point{100, 420},
	},
}

// Builtin returns the built-in level with the given number.
func Builtin(n int) (*Level, error) {
	l, ok := builtin[n]
	if !ok {
		return nil, fmt.Errorf("no built-in level %d", n)
	}
	return l, nil
}

// HasBuiltin reports whether level n is compiled in.
func HasBuiltin(n int) bool {
	_, ok := builtin[n]
	return ok
}
