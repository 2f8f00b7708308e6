package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewFSLoader(DefaultFS(), "defaults")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 360, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 60.0, cfg.World.TileSize)
	assert.Equal(t, 0.6, cfg.World.WaterFriction)
	assert.Equal(t, 1200.0, cfg.World.BreakSpeed)
	assert.Equal(t, 30.0, cfg.Shape.MaxStep)
	assert.Equal(t, 0.05, cfg.Puff.StepTime)
	assert.Equal(t, 3840.0, cfg.Camera.Width)
	assert.True(t, cfg.Feedback.ScreenShake.Enabled)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewFSLoader(DefaultFS(), "defaults")

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Player.Health)
	assert.Equal(t, 3600.0, cfg.Player.Acceleration)
	assert.Equal(t, Rect{X: 77, Y: 74, W: 499, H: 487}, cfg.Player.Phases[3])
	assert.Equal(t, Point{X: 236, Y: 294}, cfg.Player.PuffOffset)

	fish, ok := cfg.Enemies["fish"]
	require.True(t, ok)
	assert.Equal(t, 5, fish.Health)
	assert.Equal(t, 12000.0, fish.MaxSpeed)

	_, ok = cfg.Enemies["boss"]
	assert.True(t, ok)
	assert.Len(t, cfg.Boss.ClawRects, 3)
	assert.Equal(t, -30.0, cfg.Boss.StartClawAngle)
	assert.Equal(t, 3.0, cfg.Bubble.BigScale)

	_, ok = cfg.Props["key"]
	assert.True(t, ok)
	assert.Contains(t, cfg.Decor, "seaweed")
}

func TestLoader_LoadStageYAML(t *testing.T) {
	loader := NewFSLoader(DefaultFS(), "defaults")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 1, cfg.Index)
	assert.Len(t, cfg.Layers.Collision, 36)
	assert.Equal(t, "breakable", cfg.TileMapping["x"].Type)
	assert.True(t, cfg.TileMapping["S"].Inverted)
	assert.Nil(t, cfg.Arena)
	assert.NotEmpty(t, cfg.Dialogue)
}

func TestLoader_LoadStageJSONFallback(t *testing.T) {
	loader := NewFSLoader(DefaultFS(), "defaults")

	cfg, err := loader.LoadStage("arena")
	require.NoError(t, err)

	require.NotNil(t, cfg.Arena)
	assert.Equal(t, 40, cfg.Arena.TriggerColumn)
	assert.Equal(t, 6, cfg.Arena.Batches)
	assert.Equal(t, "boss", cfg.TileMapping["X"].Enemy)
}

func TestLoader_LoadStageMissing(t *testing.T) {
	loader := NewFSLoader(DefaultFS(), "defaults")

	_, err := loader.LoadStage("nowhere")
	assert.Error(t, err)
}

func TestLoader_LoadStageDefaultsID(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/tiny.yaml": {Data: []byte(`
tileMapping:
  "#": {type: ground}
  "P": {type: player}
layers:
  collision:
    - "###"
    - "#P#"
    - "###"
`)},
	}
	cfg, err := NewFSLoader(fsys, "mem").LoadStage("tiny")
	require.NoError(t, err)
	assert.Equal(t, "tiny", cfg.ID)
}

func TestLoader_LoadAll(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
}

func TestLoader_BadJSON(t *testing.T) {
	fsys := fstest.MapFS{"physics.json": {Data: []byte("{")}}

	_, err := NewFSLoader(fsys, "mem").LoadPhysics()
	assert.ErrorContains(t, err, "failed to parse physics.json")
}

func TestStageConfig_Validate(t *testing.T) {
	base := func() StageConfig {
		return StageConfig{
			ID: "t",
			TileMapping: map[string]TileMappingConfig{
				"#": {Type: "ground"},
				"P": {Type: "player"},
			},
			Layers: LayersConfig{Collision: []string{"###", "#P#", "###"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*StageConfig)
		errMsg string
	}{
		{"valid", func(*StageConfig) {}, ""},
		{"empty", func(s *StageConfig) { s.Layers.Collision = nil }, "empty collision layer"},
		{"ragged", func(s *StageConfig) { s.Layers.Collision[1] = "#P" }, "has width 2"},
		{"long glyph", func(s *StageConfig) { s.TileMapping["##"] = TileMappingConfig{Type: "ground"} }, "single character"},
		{"unknown type", func(s *StageConfig) { s.TileMapping["#"] = TileMappingConfig{Type: "lava"} }, "unknown type"},
		{"no player", func(s *StageConfig) { s.Layers.Collision[1] = "#.#" }, "found 0 player spawns"},
		{"two players", func(s *StageConfig) { s.Layers.Collision[0] = "#P#" }, "found 2 player spawns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)
			err := s.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
