package components

import (
	"github.com/automoto/megagolem/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Number       int
}

var Level = donburi.NewComponentType[LevelData]()
