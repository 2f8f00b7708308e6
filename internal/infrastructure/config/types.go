package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig  `json:"display"`
	World    WorldConfig    `json:"world"`
	Shape    ShapeConfig    `json:"shape"`
	Puff     PuffConfig     `json:"puff"`
	Camera   CameraConfig   `json:"camera"`
	Feedback FeedbackConfig `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        int     `json:"scale"`
	Framerate    int     `json:"framerate"`
	WorldScale   float64 `json:"worldScale"` // world units per screen pixel
}

// WorldConfig holds the constants of the water physics.
type WorldConfig struct {
	TileSize         float64 `json:"tileSize"`
	WaterFriction    float64 `json:"waterFriction"`    // fraction of velocity lost per second
	VelocityDeadzone float64 `json:"velocityDeadzone"` // speeds below this snap to zero without input
	BreakSpeed       float64 `json:"breakSpeed"`       // speed needed to smash breakable blocks
	SlowDivisor      float64 `json:"slowDivisor"`
	DyingTime        float64 `json:"dyingTime"`
	Knockback        float64 `json:"knockback"`
}

// ShapeConfig tunes the hit-rectangle migration used by inflation.
type ShapeConfig struct {
	MaxStep     float64 `json:"maxStep"`
	PushImpulse float64 `json:"pushImpulse"`
}

type PuffConfig struct {
	StepTime      float64 `json:"stepTime"`
	Cooldown      float64 `json:"cooldown"`
	ShortCooldown float64 `json:"shortCooldown"`
	InvulTime     float64 `json:"invulTime"`
}

// CameraConfig sizes the view that bounds which enemies are simulated.
// A zero size simulates every enemy.
type CameraConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `json:"screenShake"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
	Decay     float64 `json:"decay"`
}
