package tags

import "github.com/yohamta/donburi"

var (
	Platform = donburi.NewTag().SetName("Platform")
	Barrel   = donburi.NewTag().SetName("Barrel")
	Wreckage = donburi.NewTag().SetName("Wreckage")
	Crate    = donburi.NewTag().SetName("Crate")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvBody  = "body"
)
