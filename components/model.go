package components

import (
	"github.com/automoto/kaboom/config"
	"github.com/yohamta/donburi"
)

// ModelData selects the visual representation drawn for an entity.
type ModelData struct {
	Key config.ModelID
}

var Model = donburi.NewComponentType[ModelData]()
