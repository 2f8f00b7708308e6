package entity

import "github.com/younwookim/pufferdive/internal/domain/geom"

// Inflation phases index PlayerState.Phases.
const (
	PhaseDeflated = iota
	PhaseSmall
	PhaseLarge
	PhaseInflated
	PhaseCount
)

// PlayerState is the pufferfish controlled by the user.
type PlayerState struct {
	Phases       [PhaseCount]geom.Rect
	NormalSize   geom.Vec
	PuffedSize   geom.Vec
	PuffOffset   geom.Vec
	PuffShift    geom.Vec // position change to undo when fully deflated
	PuffingTime  float64
	PuffCooldown float64
	InvulTime    float64
	InButt       bool
}

// FishState is the chase/patrol perception of a fish.
type FishState struct {
	SeesPlayer    bool
	ChasingPlayer bool
}

// ShrimpState tracks alertness and the independently animated claw.
type ShrimpState struct {
	Inverted      bool
	Targeting     bool
	Vigilant      bool
	ClawOffset    geom.Vec
	ClawFrame     int
	ClawLast      float64
	ShootCooldown float64
}

// BubbleState is a projectile owned by the actor that fired it.
type BubbleState struct {
	Creator  EntityID
	Big      bool
	Bounced  bool
	Speed    float64
	Lifespan float64
}

// BossPhase is the top-level boss state.
type BossPhase int

const (
	BossWaiting BossPhase = iota
	BossIdle
	BossBubbles
	BossBigBubble
	BossSweep
	BossStunned
	BossHurt
)

func (p BossPhase) String() string {
	switch p {
	case BossWaiting:
		return "Waiting"
	case BossIdle:
		return "Idle"
	case BossBubbles:
		return "Bubbles"
	case BossBigBubble:
		return "BigBubble"
	case BossSweep:
		return "Sweep"
	case BossStunned:
		return "Stunned"
	case BossHurt:
		return "Hurt"
	default:
		return "Unknown"
	}
}

// SweepPhase is the claw sweep sub-state.
type SweepPhase int

const (
	SweepWindup SweepPhase = iota
	SweepBeforeSlash
	SweepSlash
	SweepAfterSlash
	SweepBringback
)

// BigBubblePhase is the big bubble sub-state.
type BigBubblePhase int

const (
	BigBubbleWindup BigBubblePhase = iota
	BigBubbleShoot
)

// BossState is the composite boss state machine.
type BossState struct {
	Phase     BossPhase
	Sweep     SweepPhase
	BigBubble BigBubblePhase
	Started   bool

	PhaseSince     float64
	SweepSince     float64
	BigBubbleSince float64

	IdleDelay     float64
	CycleCount    int
	ShotCount     int
	ShootCooldown float64

	ClawAngle      float64
	ClawWave       float64
	ClawSpeed      float64
	SmallClawAngle float64
	ClawFrame      int
	StunFrame      int
	Tinted         bool
}

// KeyState links a key to the actor carrying it.
type KeyState struct {
	Holder EntityID
}

// ButtonState is a pressure button.
type ButtonState struct {
	Inverted bool
	Pressed  bool
}

// GrampaPhase is the dialogue state of the NPC.
type GrampaPhase int

const (
	GrampaWaiting GrampaPhase = iota
	GrampaTalking
	GrampaDone
	GrampaPause
)

// GrampaState drives the scripted dialogue.
type GrampaState struct {
	Lines []string
	Line  int
	Phase GrampaPhase
	Timer float64
}

// Revealed returns how many characters of the current line are shown.
func (g *GrampaState) Revealed(charTime float64) int {
	if g.Line >= len(g.Lines) {
		return 0
	}
	n := int(g.Timer / charTime)
	if l := len(g.Lines[g.Line]); n > l {
		n = l
	}
	return n
}

// DecorState names the decoration.
type DecorState struct {
	Name string
}

// DiagonalState is a sloped deflector.
type DiagonalState struct {
	Dir    DiagonalDir
	P1     geom.Vec
	P2     geom.Vec
	Normal geom.Vec
}
