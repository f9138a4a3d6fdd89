package components

import (
	"github.com/pr-poehali-dev/realistic-horror-game/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Room *leveldata.Room
}

var Level = donburi.NewComponentType[LevelData]()
