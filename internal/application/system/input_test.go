package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pufferdive/internal/domain/entity"
)

func keysDown(keys ...ebiten.Key) func(ebiten.Key) bool {
	down := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		down[k] = true
	}
	return func(k ebiten.Key) bool { return down[k] }
}

func TestNewInputSystem(t *testing.T) {
	keys := DefaultKeyMap()

	sys := NewInputSystem(keys)

	require.NotNil(t, sys)
	assert.Equal(t, keys, sys.keys)
}

func TestInputSystem_Read(t *testing.T) {
	sys := NewInputSystem(DefaultKeyMap())

	tests := []struct {
		name string
		down []ebiten.Key
		want entity.ControlInput
	}{
		{name: "nothing held", want: entity.ControlInput{}},
		{name: "arrows", down: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, want: entity.ControlInput{Left: true, Up: true}},
		{name: "wasd", down: []ebiten.Key{ebiten.KeyD, ebiten.KeyS}, want: entity.ControlInput{Right: true, Down: true}},
		{name: "puff on space", down: []ebiten.Key{ebiten.KeySpace}, want: entity.ControlInput{A: true}},
		{name: "puff on z", down: []ebiten.Key{ebiten.KeyZ}, want: entity.ControlInput{A: true}},
		{name: "opposite keys both register", down: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight}, want: entity.ControlInput{Left: true, Right: true}},
		{name: "pause keys are not controls", down: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}, want: entity.ControlInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sys.Read(keysDown(tt.down...)))
		})
	}
}

func TestInputSystem_CustomKeyMap(t *testing.T) {
	sys := NewInputSystem(KeyMap{
		Left: []ebiten.Key{ebiten.KeyJ},
		Puff: []ebiten.Key{ebiten.KeyEnter},
	})

	in := sys.Read(keysDown(ebiten.KeyJ, ebiten.KeyEnter, ebiten.KeyArrowLeft))

	assert.Equal(t, entity.ControlInput{Left: true, A: true}, in)
}

func TestMergeInput(t *testing.T) {
	a := entity.ControlInput{Left: true, A: true}
	b := entity.ControlInput{Down: true, B: true}

	got := mergeInput(a, b)

	assert.Equal(t, entity.ControlInput{Left: true, Down: true, A: true, B: true}, got)
	assert.Equal(t, a, mergeInput(a, entity.ControlInput{}))
}
