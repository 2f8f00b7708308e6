package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig           `json:"player"`
	Enemies map[string]ActorConfig `json:"enemies"`
	Props   map[string]ActorConfig `json:"props"`
	Shrimp  ShrimpConfig           `json:"shrimp"`
	Bubble  BubbleConfig           `json:"bubble"`
	Boss    BossConfig             `json:"boss"`
	Decor   map[string]Size        `json:"decor"`
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ActorConfig describes the body and movement of one species.
type ActorConfig struct {
	Size         Size    `json:"size"`
	Hitbox       Rect    `json:"hitbox"`
	Acceleration float64 `json:"acceleration"`
	MaxSpeed     float64 `json:"maxSpeed"`
	Health       int     `json:"health"`
	IdleFrames   int     `json:"idleFrames"`
	SwimFrames   int     `json:"swimFrames,omitempty"`
	IdleDelay    float64 `json:"idleDelay,omitempty"`
	MoveDelay    float64 `json:"moveDelay,omitempty"`
}

type PlayerConfig struct {
	ActorConfig
	Phases     [4]Rect `json:"phases"`
	PuffedSize Size    `json:"puffedSize"`
	PuffOffset Point   `json:"puffOffset"`
}

type ShrimpConfig struct {
	InvertedHitbox     Rect  `json:"invertedHitbox"`
	ClawOffset         Point `json:"clawOffset"`
	InvertedClawOffset Point `json:"invertedClawOffset"`
}

type BubbleConfig struct {
	BigScale  float64 `json:"bigScale"`
	BigHitbox Rect    `json:"bigHitbox"`
	Speed     float64 `json:"speed"`
	Lifespan  float64 `json:"lifespan"`
}

type BossConfig struct {
	ClawRects      []Rect  `json:"clawRects"`
	ButtRect       Rect    `json:"buttRect"`
	ClawOffset     Point   `json:"clawOffset"`
	ClawJoint      Point   `json:"clawJoint"`
	SmallClawJoint Point   `json:"smallClawJoint"`
	Mouth          Point   `json:"mouth"`
	StartClawAngle float64 `json:"startClawAngle"`
}
