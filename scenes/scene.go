package scenes

import "github.com/hajimehoshi/ebiten/v2"

// SceneChanger swaps the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// worldOp positions the world view below the toolbar.
var worldOp = &ebiten.DrawImageOptions{}
