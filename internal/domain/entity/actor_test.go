package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pufferdive/internal/domain/geom"
)

func createTestActor(x, y float64) *Actor {
	return &Actor{
		Pos:     geom.V(x, y),
		Width:   100,
		Height:  50,
		HitRect: geom.R(10, 5, 80, 40),
		Visible: true,
	}
}

func TestActor_Hitbox(t *testing.T) {
	a := createTestActor(100, 200)

	assert.Equal(t, geom.R(110, 205, 80, 40), a.Hitbox())
	assert.Equal(t, geom.R(10, 5, 80, 40), a.HitboxAt(geom.Vec{}))
	assert.Equal(t, geom.V(150, 225), a.Center())
}

func TestActor_Touches(t *testing.T) {
	a := createTestActor(0, 0)
	b := createTestActor(50, 0)

	assert.True(t, a.Touches(b))

	b.Visible = false
	assert.False(t, a.Touches(b), "invisible actors never touch")
}

func TestActor_IsDying(t *testing.T) {
	a := createTestActor(0, 0)
	assert.False(t, a.IsDying())

	a.DyingTime = 0.5
	assert.True(t, a.IsDying())

	a.DyingTime = 0
	a.Dead = true
	assert.True(t, a.IsDying())
}

func TestControlInput_Axis(t *testing.T) {
	x, y := ControlInput{Right: true, Up: true}.Axis()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, -1.0, y)

	x, y = ControlInput{Left: true, Right: true}.Axis()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	inv := ControlInput{Left: true, Down: true}.Invert()
	assert.Equal(t, ControlInput{Right: true, Up: true}, inv)
}

func TestKindAndSoundStrings(t *testing.T) {
	assert.Equal(t, "boss", KindBoss.String())
	assert.Equal(t, "unknown", Kind(99).String())
	assert.True(t, KindBubble.IsEnemy())
	assert.False(t, KindKey.IsEnemy())

	assert.Equal(t, "block_break", SoundBlockBreak.String())
	assert.Equal(t, "block_build", SoundBlockBuild.String())
	assert.Equal(t, "unknown", Sound(-1).String())
}
