// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"log"
	"time"

	"github.com/younwookim/pufferdive/internal/application/replay"
	"github.com/younwookim/pufferdive/internal/application/scene"
	"github.com/younwookim/pufferdive/internal/application/state"
	"github.com/younwookim/pufferdive/internal/application/system"
	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/infrastructure/config"
)

const (
	wallInterval = 0.5 // seconds between arena wall batches
	deadDelay    = 1.0 // seconds the dead screen stays up before respawn
	shakeStop    = 0.5 // shake amplitude below which play resumes
)

// InputSource supplies the player's controls each frame.
type InputSource interface {
	GetInput() entity.ControlInput
	PausePressed() bool
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	stageCfg *config.StageConfig
	build    replay.LevelSource
	sim      *system.Simulation
	input    InputSource
	state    state.GameState
	paused   state.GameState // state to resume after a pause
	screenW  int
	screenH  int
	scale    float64 // world units per screen pixel
	dt       float64

	// Feedback
	shake      float64
	wallTimer  float64
	deadTimer  float64
	lastSound  entity.Sound
	soundTimer float64
	deaths     int

	// Stage hot reload
	watcher *config.Watcher
	loader  *config.Loader

	seed int64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene on the given stage.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, recordPath string) (*Playing, error) {
	display := cfg.Physics.Display
	p := &Playing{
		config:         cfg,
		stageCfg:       stageCfg,
		build:          replay.StageSource(stageCfg, cfg),
		input:          system.NewInputSystem(system.DefaultKeyMap()),
		state:          state.StatePlaying,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		scale:          display.WorldScale,
		dt:             1.0 / 60.0,
		recordFilename: recordPath,
	}
	if display.Framerate > 0 {
		p.dt = 1.0 / float64(display.Framerate)
	}
	if p.scale <= 0 {
		p.scale = 1
	}

	if err := p.start(time.Now().UnixNano()); err != nil {
		return nil, err
	}
	return p, nil
}

// start builds a fresh simulation with seed.
func (p *Playing) start(seed int64) error {
	level, err := p.build()
	if err != nil {
		return fmt.Errorf("failed to build stage %s: %w", p.stageCfg.ID, err)
	}

	p.seed = seed
	p.sim = system.New(p.config, level, seed)
	p.sim.OnSound = p.onSound
	p.state = state.StatePlaying
	p.shake = 0
	p.wallTimer = 0
	p.deadTimer = 0

	if p.recordFilename != "" {
		p.recorder = NewRecorder(seed, p.stageCfg.ID, p.dt)
		log.Printf("Recording enabled: %s (seed: %d)", p.recordFilename, seed)
	}
	return nil
}

// SetInput replaces the keyboard and gamepad reader.
func (p *Playing) SetInput(in InputSource) {
	p.input = in
}

// WatchStages restarts the scene whenever the watcher reports an edit to
// the current stage. Stages are reloaded through loader.
func (p *Playing) WatchStages(w *config.Watcher, loader *config.Loader) {
	p.watcher = w
	p.loader = loader
}

// Simulation returns the running simulation.
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}

// State returns what the scene is currently doing.
func (p *Playing) State() state.GameState {
	return p.state
}

func (p *Playing) onSound(snd entity.Sound) {
	p.lastSound = snd
	p.soundTimer = 1
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.pollReload()

	if p.soundTimer > 0 {
		p.soundTimer -= p.dt
	}

	if p.input.PausePressed() {
		switch p.state {
		case state.StatePaused:
			p.state = p.paused
			return nil, nil
		case state.StatePlaying, state.StateShaking, state.StateBossEntrance:
			p.paused = p.state
			p.state = state.StatePaused
			return nil, nil
		}
	}

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StateShaking:
		p.shake *= p.config.Physics.Feedback.ScreenShake.Decay
		if p.shake < shakeStop {
			p.shake = 0
			p.state = state.StatePlaying
		}
	case state.StateBossEntrance:
		p.wallTimer += p.dt
		if p.wallTimer >= wallInterval {
			p.wallTimer -= wallInterval
			if p.sim.RaiseArenaWall() {
				p.sim.StartBossEncounter()
				p.state = state.StatePlaying
				log.Printf("Boss encounter started")
			}
		}
	case state.StateDead:
		p.deadTimer -= p.dt
		if p.deadTimer <= 0 {
			if err := replay.Respawn(p.sim, p.build); err != nil {
				return nil, err
			}
			p.state = state.StatePlaying
		}
	case state.StateVictory, state.StateEnding:
		if p.input.GetInput().A {
			if err := p.start(time.Now().UnixNano()); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	in := p.input.GetInput()

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	out := p.sim.Update(in, p.dt)

	switch {
	case out.Has(system.OutcomeBossDefeated):
		p.state = state.StateEnding
		log.Printf("Boss defeated after %.1fs", p.sim.Time())
		p.finishRecording()
	case out.Has(system.OutcomeVictory):
		p.state = state.StateVictory
		log.Printf("Stage %s cleared after %.1fs", p.stageCfg.ID, p.sim.Time())
		p.finishRecording()
	case out.Has(system.OutcomePlayerDied):
		p.deaths++
		p.deadTimer = deadDelay
		p.state = state.StateDead
		log.Printf("Player died (%d deaths)", p.deaths)
	case out.Has(system.OutcomeBossEncounter):
		p.wallTimer = 0
		p.state = state.StateBossEntrance
		log.Printf("Boss arena reached, sealing the wall")
	case out.Has(system.OutcomePlayerHurt):
		shake := p.config.Physics.Feedback.ScreenShake
		if shake.Enabled && shake.Intensity >= shakeStop {
			p.shake = shake.Intensity
			p.state = state.StateShaking
		}
	}
}

// pollReload drains the stage watcher without blocking.
func (p *Playing) pollReload() {
	if p.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			if config.StageName(path) != p.stageCfg.ID {
				continue
			}
			p.reload()
		case err, ok := <-p.watcher.Errors:
			if !ok {
				p.watcher = nil
				return
			}
			log.Printf("Stage watcher error: %v", err)
		default:
			return
		}
	}
}

func (p *Playing) reload() {
	stageCfg, err := p.loader.LoadStage(p.stageCfg.ID)
	if err != nil {
		log.Printf("Failed to reload stage: %v", err)
		return
	}

	prevCfg, prevBuild := p.stageCfg, p.build
	p.stageCfg = stageCfg
	p.build = replay.StageSource(stageCfg, p.config)
	if err := p.start(p.seed); err != nil {
		log.Printf("Failed to rebuild stage: %v", err)
		p.stageCfg, p.build = prevCfg, prevBuild
		return
	}
	log.Printf("Stage %s reloaded", stageCfg.ID)
}

// finishRecording saves and stops the current recording
func (p *Playing) finishRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.saveRecording()
	p.recorder.Stop()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.finishRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
