package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
)

var pocket = []string{
	"#####",
	"#...#",
	"#.P.#",
	"#...#",
	"#####",
}

func TestMigrationSteps(t *testing.T) {
	tests := []struct {
		name    string
		maxStep float64
		deltas  []float64
		want    int
	}{
		{name: "no change", maxStep: 30, deltas: []float64{0, 0}, want: 0},
		{name: "just over one step", maxStep: 30, deltas: []float64{31}, want: 2},
		{name: "negative delta", maxStep: 30, deltas: []float64{-90}, want: 3},
		{name: "largest delta wins", maxStep: 30, deltas: []float64{10, -65, 20}, want: 3},
		{name: "disabled", maxStep: 0, deltas: []float64{100}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migrationSteps(tt.maxStep, tt.deltas...))
		})
	}
}

func TestTryHitRectChange_ReachesTargetExactly(t *testing.T) {
	sim := createTestSim(t, openWater(20, 20)...)
	a := createTestBody(300, 300)
	a.HitRect = geom.R(0, 0, 40, 40)
	a.Vel = geom.V(5, 5)
	target := geom.R(-20, -20, 80, 80)

	ok := sim.tryHitRectChange(a, geom.V(10, 0), target)

	require.True(t, ok)
	assert.Equal(t, target, a.HitRect)
	assert.Equal(t, geom.V(310, 300), a.Pos)
	assert.Equal(t, geom.V(5, 5), a.Vel)
}

func TestTryHitRectChange_NoDriftOverSubSteps(t *testing.T) {
	sim := createTestSim(t, openWater(20, 20)...)
	a := createTestBody(500, 500)
	small, big := geom.R(0, 0, 40, 40), geom.R(-50, -50, 140, 140)
	a.HitRect = small
	delta := geom.V(-100.1, 70.3)

	for i := 0; i < 20; i++ {
		want := a.Pos.Add(delta)
		require.True(t, sim.tryHitRectChange(a, delta, big))
		assert.Equal(t, want, a.Pos, "grow %d", i)

		want = a.Pos.Add(delta.Neg())
		require.True(t, sim.tryHitRectChange(a, delta.Neg(), small))
		assert.Equal(t, want, a.Pos, "shrink %d", i)
	}
}

func TestTryHitRectChange_RefusedWhenBoxedIn(t *testing.T) {
	sim := createTestSim(t, pocket...)
	a := createTestBody(130, 130)
	a.HitRect = geom.R(0, 0, 40, 40)
	a.Vel = geom.V(12, -7)

	ok := sim.tryHitRectChange(a, geom.Vec{}, geom.R(-100, -100, 240, 240))

	assert.False(t, ok)
	assert.Equal(t, geom.V(130, 130), a.Pos)
	assert.Equal(t, geom.V(12, -7), a.Vel)
	assert.Equal(t, geom.R(0, 0, 40, 40), a.HitRect)
}

func TestTryHitRectChange_PushesAwayFromOneSide(t *testing.T) {
	rows := openWater(10, 10)
	for y := range rows {
		rows = withGlyph(rows, 0, y, '#')
	}
	sim := createTestSim(t, rows...)
	a := createTestBody(62, 300)
	a.HitRect = geom.R(0, 0, 40, 40)

	ok := sim.tryHitRectChange(a, geom.Vec{}, geom.R(-10, 0, 60, 40))

	require.True(t, ok)
	assert.Equal(t, 70.0, a.Pos.X)
	assert.Equal(t, 300.0, a.Pos.Y)
	assert.Equal(t, sim.cfg.Physics.Shape.PushImpulse, a.Vel.X)
	assert.Zero(t, a.Vel.Y)
	assert.Equal(t, entity.NoSolid, sim.Level().Blocking(a.Hitbox()))
}

func TestUpdatePlayer_PuffCycle(t *testing.T) {
	sim := createTestSim(t, openWater(20, 20)...)
	sounds := recordSounds(sim)
	p := sim.Player()
	ps := p.Player
	p.Pos = geom.V(500, 500)
	const dt = 0.01

	sim.updatePlayer(p, entity.ControlInput{A: true}, dt)
	assert.Equal(t, 2, p.PuffingFrames)
	assert.Equal(t, ps.Phases[entity.PhaseSmall], p.HitRect)
	assert.Equal(t, ps.PuffedSize.X, p.Width)

	for i := 0; i < 30; i++ {
		sim.updatePlayer(p, entity.ControlInput{}, dt)
	}
	require.True(t, p.Puffed)
	assert.Zero(t, p.PuffingFrames)
	assert.Equal(t, ps.Phases[entity.PhaseInflated], p.HitRect)
	assert.Equal(t, geom.V(264, 206), p.Pos)

	sim.updatePlayer(p, entity.ControlInput{A: true}, dt)
	assert.True(t, p.Puffed, "the short cooldown still runs")

	for i := 0; i < 100; i++ {
		sim.updatePlayer(p, entity.ControlInput{}, dt)
	}
	sim.updatePlayer(p, entity.ControlInput{A: true}, dt)
	assert.Equal(t, -2, p.PuffingFrames)
	assert.InDelta(t, sim.cfg.Physics.Puff.Cooldown, ps.PuffCooldown, dt+1e-9)

	for i := 0; i < 30; i++ {
		sim.updatePlayer(p, entity.ControlInput{}, dt)
	}
	assert.False(t, p.Puffed)
	assert.Equal(t, ps.Phases[entity.PhaseDeflated], p.HitRect)
	assert.Equal(t, ps.NormalSize.X, p.Width)
	assert.Equal(t, geom.V(500, 500), p.Pos)
	assert.Equal(t, geom.Vec{}, ps.PuffShift)
	assert.Equal(t, []entity.Sound{entity.SoundInflate, entity.SoundDeflate}, *sounds)
}

func TestUpdatePlayer_RefusedInflateRecovers(t *testing.T) {
	sim := createTestSim(t, pocket...)
	sounds := recordSounds(sim)
	p := sim.Player()
	ps := p.Player
	ps.PuffOffset = geom.Vec{}
	ps.Phases[entity.PhaseDeflated] = geom.R(0, 0, 40, 40)
	ps.Phases[entity.PhaseSmall] = geom.R(-100, -100, 240, 240)
	p.HitRect = ps.Phases[entity.PhaseDeflated]
	p.Pos = geom.V(130, 130)
	const dt = 0.01

	sim.updatePlayer(p, entity.ControlInput{A: true}, dt)
	assert.Equal(t, -1, p.PuffingFrames)
	assert.Equal(t, ps.Phases[entity.PhaseDeflated], p.HitRect)
	assert.InDelta(t, sim.cfg.Physics.Puff.Cooldown, ps.PuffCooldown, dt+1e-9)

	for i := 0; i < 10; i++ {
		sim.updatePlayer(p, entity.ControlInput{}, dt)
	}
	assert.Zero(t, p.PuffingFrames)
	assert.False(t, p.Puffed)
	assert.Equal(t, geom.V(130, 130), p.Pos)
	assert.Equal(t, ps.Phases[entity.PhaseDeflated], p.HitRect)
	assert.Empty(t, *sounds)
}
