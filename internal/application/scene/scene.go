// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The game loop delegates Update and
// Draw to the current scene and switches when Update returns a new one.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next replaces
	// this scene; an error ends the run loop.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs every time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the game closes. Scenes
	// flush recordings here.
	OnExit()
}

// Layouter is implemented by scenes that pick their own logical screen
// size.
type Layouter interface {
	Layout(outsideWidth, outsideHeight int) (int, int)
}
