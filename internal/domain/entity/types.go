package entity

// EntityID is a unique identifier for an actor (never recycled).
type EntityID uint64

// Kind tags an actor with its species. Shared logic branches on the kind
// instead of inspecting the concrete state attached to the actor.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindKey
	KindDoor
	KindHeart
	KindGrampa
	KindDecor
	KindDiagonal
	KindButton
	KindFish
	KindJellyfish
	KindShrimp
	KindBubble
	KindBoss
)

// IsEnemy reports whether the kind belongs to the enemy family.
func (k Kind) IsEnemy() bool {
	return k >= KindFish && k <= KindBoss
}

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindKey:
		return "key"
	case KindDoor:
		return "door"
	case KindHeart:
		return "heart"
	case KindGrampa:
		return "grampa"
	case KindDecor:
		return "decor"
	case KindDiagonal:
		return "diagonal"
	case KindButton:
		return "button"
	case KindFish:
		return "fish"
	case KindJellyfish:
		return "jellyfish"
	case KindShrimp:
		return "shrimp"
	case KindBubble:
		return "bubble"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// ControlInput is the per-tick control snapshot fed to the integration
// step. The player gets it from the keyboard, creatures synthesize it.
type ControlInput struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	A     bool // puff
	B     bool // creature attack
}

// Axis returns the movement axes as signed values in [-1, 1].
func (in ControlInput) Axis() (float64, float64) {
	var x, y float64
	if in.Right {
		x++
	}
	if in.Left {
		x--
	}
	if in.Down {
		y++
	}
	if in.Up {
		y--
	}
	return x, y
}

// Invert flips every direction, used to run away from a chase target.
func (in ControlInput) Invert() ControlInput {
	in.Left, in.Right = !in.Left, !in.Right
	in.Up, in.Down = !in.Up, !in.Down
	return in
}

// Facing is the horizontal direction an actor looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// AnimSet selects which frame strip an actor is playing.
type AnimSet int

const (
	AnimIdle AnimSet = iota
	AnimSwim
)

// Sound identifies a one-shot audio cue raised by the simulation.
type Sound int

const (
	SoundBlockBreak Sound = iota
	SoundPlayerHurt
	SoundInflate
	SoundDeflate
	SoundFishHurt
	SoundFishDie
	SoundPopHurt
	SoundPopHarmless
	SoundShoot
	SoundEnterButt
	SoundBossHurt
	SoundKeyPickup
	SoundHeartPopped
	SoundHeartPickup
	SoundButtonPress
	SoundBlockBuild
)

var soundNames = [...]string{
	SoundBlockBreak:  "block_break",
	SoundPlayerHurt:  "player_hurt",
	SoundInflate:     "inflate",
	SoundDeflate:     "deflate",
	SoundFishHurt:    "fish_hurt",
	SoundFishDie:     "fish_die",
	SoundPopHurt:     "pop_hurt",
	SoundPopHarmless: "pop_harmless",
	SoundShoot:       "shoot",
	SoundEnterButt:   "enter_butt",
	SoundBossHurt:    "boss_hurt",
	SoundKeyPickup:   "key_pickup",
	SoundHeartPopped: "heart_popped",
	SoundHeartPickup: "heart_pickup",
	SoundButtonPress: "button_press",
	SoundBlockBuild:  "block_build",
}

func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}
