package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
)

func createTestBody(x, y float64) *entity.Actor {
	return &entity.Actor{
		Kind:          entity.KindFish,
		Pos:           geom.V(x, y),
		Spawn:         geom.V(x, y),
		HitRect:       geom.R(0, 0, 20, 20),
		Width:         20,
		Height:        20,
		Health:        5,
		MaxHealth:     5,
		VelocityLimit: 10000,
		Visible:       true,
	}
}

// wallAt returns a 10×5 grid with a solid column at x.
func wallAt(x int, glyph byte) []string {
	rows := openWater(10, 5)
	for y := range rows {
		rows = withGlyph(rows, x, y, glyph)
	}
	return rows
}

func TestMoveAxis_AccumulatesRemainder(t *testing.T) {
	sim := createTestSim(t, openWater(10, 10)...)
	a := createTestBody(100, 100)

	assert.Equal(t, 0, sim.moveX(a, 0.4, nil))
	assert.InDelta(t, 0.4, a.RemX, 1e-9)
	assert.Equal(t, 100.0, a.Pos.X)

	assert.Equal(t, 1, sim.moveX(a, 0.4, nil))
	assert.Equal(t, 101.0, a.Pos.X)
	assert.InDelta(t, -0.2, a.RemX, 1e-9)

	assert.Equal(t, 3, sim.moveY(a, -2.6, nil))
	assert.Equal(t, 97.0, a.Pos.Y)
	assert.InDelta(t, 0.4, a.RemY, 1e-9)
}

func TestMoveAxis_SameDeltasSameResult(t *testing.T) {
	deltas := []float64{0.3, 1.7, -0.45, 12.2, 0.5, -3.9, 0.05}

	run := func() (geom.Vec, int) {
		sim := createTestSim(t, wallAt(6, '#')...)
		a := createTestBody(300, 100)
		a.RemX = 0.25
		steps := 0
		for i := 0; i < 20; i++ {
			for _, d := range deltas {
				steps += sim.moveX(a, d, nil)
			}
		}
		return a.Pos, steps
	}

	pos1, steps1 := run()
	pos2, steps2 := run()
	assert.Equal(t, pos1, pos2)
	assert.Equal(t, steps1, steps2)
}

func TestMoveAxis_StopsAtSolid(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{name: "short move", amount: 60},
		{name: "one huge step", amount: 5000},
		{name: "exact contact", amount: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := createTestSim(t, wallAt(6, '#')...)
			a := createTestBody(300, 100)
			hit := 0

			sim.moveX(a, tt.amount, func() { hit++ })

			assert.Equal(t, 340.0, a.Pos.X, "hitbox stops flush against the wall at x=360")
			assert.Equal(t, entity.NoSolid, sim.Level().Blocking(a.Hitbox()))
			if tt.amount > 40 {
				assert.Equal(t, 1, hit)
			} else {
				assert.Zero(t, hit)
			}
		})
	}
}

func TestMoveAxis_LevelEdge(t *testing.T) {
	sim := createTestSim(t, openWater(10, 10)...)
	a := createTestBody(20, 100)
	hit := false

	sim.moveX(a, -100, func() { hit = true })

	assert.True(t, hit)
	assert.Equal(t, 0.0, a.Pos.X)
}

func TestMoveAxis_NoClipPassesThrough(t *testing.T) {
	sim := createTestSim(t, wallAt(6, '#')...)
	a := createTestBody(300, 100)
	a.NoClip = true

	moved := sim.moveX(a, 200, nil)

	assert.Equal(t, 200, moved)
	assert.Equal(t, 500.0, a.Pos.X)
}

func TestMoveAxis_Breakables(t *testing.T) {
	t.Run("fast inflated actor smashes through once", func(t *testing.T) {
		sim := createTestSim(t, wallAt(6, 'x')...)
		sounds := recordSounds(sim)
		before := sim.Level().SolidCount()
		a := createTestBody(300, 100)
		a.Puffed = true
		a.Vel = geom.V(2000, 0)

		sim.moveX(a, 100, nil)

		assert.Equal(t, 400.0, a.Pos.X)
		assert.Equal(t, before-1, sim.Level().SolidCount())
		assert.False(t, sim.Level().IsSolid(entity.TileCoord{X: 6, Y: 1}))
		assert.Equal(t, 1, sim.Stats().BlocksBroken)
		assert.Equal(t, []entity.Sound{entity.SoundBlockBreak}, *sounds)
	})

	t.Run("slow inflated actor is stopped", func(t *testing.T) {
		sim := createTestSim(t, wallAt(6, 'x')...)
		a := createTestBody(300, 100)
		a.Puffed = true
		a.Vel = geom.V(1000, 0)

		sim.moveX(a, 100, nil)

		assert.Equal(t, 340.0, a.Pos.X)
		assert.Zero(t, sim.Stats().BlocksBroken)
	})

	t.Run("fast deflated actor is stopped", func(t *testing.T) {
		sim := createTestSim(t, wallAt(6, 'x')...)
		a := createTestBody(300, 100)
		a.Vel = geom.V(5000, 0)

		sim.moveX(a, 100, nil)

		assert.Equal(t, 340.0, a.Pos.X)
		assert.Zero(t, sim.Stats().BlocksBroken)
	})

	t.Run("ground never breaks", func(t *testing.T) {
		sim := createTestSim(t, wallAt(6, '#')...)
		a := createTestBody(300, 100)
		a.Puffed = true
		a.Vel = geom.V(5000, 0)

		sim.moveX(a, 100, nil)

		assert.Equal(t, 340.0, a.Pos.X)
	})
}

func TestIntegrate(t *testing.T) {
	t.Run("input accelerates against water drag", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		a := createTestBody(300, 300)
		a.AccConst = 1000

		sim.integrate(a, entity.ControlInput{Right: true}, 0.1)

		assert.InDelta(t, 91.244, a.Vel.X, 0.01)
		assert.Zero(t, a.Vel.Y)
		assert.Equal(t, entity.FacingRight, a.Facing)
		assert.Equal(t, 309.0, a.Pos.X)
	})

	t.Run("slow speed snaps to zero without input", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		a := createTestBody(300, 300)
		a.Vel = geom.V(10, 0)

		sim.integrate(a, entity.ControlInput{}, 1.0/60)

		assert.Equal(t, geom.Vec{}, a.Vel)
	})

	t.Run("velocity is capped per axis", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		a := createTestBody(300, 300)
		a.VelocityLimit = 100
		a.Vel = geom.V(500, -500)

		sim.integrate(a, entity.ControlInput{}, 1.0/60)

		assert.Equal(t, geom.V(100, -100), a.Vel)
	})

	t.Run("inflated actor ignores input", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		a := createTestBody(300, 300)
		a.AccConst = 1000
		a.Puffed = true

		sim.integrate(a, entity.ControlInput{Right: true, Down: true}, 0.1)

		assert.Equal(t, geom.Vec{}, a.Vel)
	})

	t.Run("slow flag divides acceleration", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		fast := createTestBody(300, 300)
		fast.AccConst = 4000
		slow := createTestBody(300, 600)
		slow.AccConst = 4000
		slow.GoingSlow = true

		sim.integrate(fast, entity.ControlInput{Left: true}, 0.1)
		sim.integrate(slow, entity.ControlInput{Left: true}, 0.1)

		assert.InDelta(t, fast.Vel.X/4, slow.Vel.X, 1e-9)
		assert.Equal(t, entity.FacingLeft, slow.Facing)
	})

	t.Run("impact kills projectiles", func(t *testing.T) {
		sim := createTestSim(t, wallAt(6, '#')...)
		a := createTestBody(330, 100)
		a.DiesOnImpact = true
		a.Vel = geom.V(3000, 0)

		sim.integrate(a, entity.ControlInput{}, 0.1)

		assert.True(t, a.Dead)
		assert.Zero(t, a.Vel.X)
	})

	t.Run("inflated actor bounces off walls", func(t *testing.T) {
		sim := createTestSim(t, wallAt(6, '#')...)
		a := createTestBody(330, 100)
		a.Puffed = true
		a.Vel = geom.V(1000, 0)

		sim.integrate(a, entity.ControlInput{}, 0.1)

		assert.Less(t, a.Vel.X, 0.0)
	})

	t.Run("death countdown resolves once", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		a := createTestBody(300, 300)
		a.DyingTime = 1

		sim.integrate(a, entity.ControlInput{}, 0.6)
		assert.False(t, a.Dead)
		assert.True(t, a.IsDying())

		sim.integrate(a, entity.ControlInput{}, 0.6)
		assert.True(t, a.Dead)
		assert.False(t, a.Visible)
		assert.Zero(t, a.DyingTime)
		assert.Equal(t, 1, sim.Stats().Kills[entity.KindFish])
	})
}

func TestHurt(t *testing.T) {
	t.Run("damage knocks back away from the hurter", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		a := createTestBody(300, 300)
		hurter := createTestBody(200, 300)

		sim.hurt(a, hurter, 2)

		assert.Equal(t, 3, a.Health)
		assert.InDelta(t, sim.cfg.Physics.World.Knockback, a.Vel.X, 1e-9)
		assert.InDelta(t, 0, a.Vel.Y, 1e-9)
		assert.False(t, a.IsDying())
	})

	t.Run("health clamps and the countdown starts once", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		a := createTestBody(300, 300)
		hurter := createTestBody(200, 300)

		sim.hurt(a, hurter, 9)
		assert.Zero(t, a.Health)
		assert.Equal(t, sim.cfg.Physics.World.DyingTime, a.DyingTime)

		a.DyingTime = 0.2
		sim.hurt(a, hurter, 1)
		assert.Zero(t, a.Health)
		assert.Equal(t, 0.2, a.DyingTime)
	})

	t.Run("no knockback flag", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		a := createTestBody(300, 300)
		a.NoKnockback = true

		sim.hurt(a, createTestBody(200, 300), 1)

		assert.Equal(t, geom.Vec{}, a.Vel)
	})

	t.Run("player gets invulnerability and a hurt outcome", func(t *testing.T) {
		sim := createTestSim(t, openWater(20, 20)...)
		sounds := recordSounds(sim)
		p := sim.Player()

		sim.hurt(p, createTestBody(200, 300), 1)

		assert.Equal(t, 2, p.Health)
		assert.Equal(t, sim.cfg.Physics.Puff.InvulTime, p.Player.InvulTime)
		assert.True(t, sim.outcome.Has(OutcomePlayerHurt))
		assert.Equal(t, []entity.Sound{entity.SoundPlayerHurt}, *sounds)
		assert.False(t, vulnerable(p))
	})
}

func TestDie_Idempotent(t *testing.T) {
	sim := createTestSim(t, openWater(20, 20)...)
	a := createTestBody(300, 300)

	sim.die(a)
	sim.die(a)

	assert.True(t, a.Dead)
	assert.Equal(t, 1, sim.Stats().Kills[entity.KindFish])

	p := sim.Player()
	sim.die(p)
	require.True(t, sim.outcome.Has(OutcomePlayerDied))
}
