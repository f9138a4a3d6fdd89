package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Prop   = donburi.NewTag().SetName("Prop")
)
