package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Events = donburi.NewTag().SetName("Events")
)
