package state

// GameState is what the playing screen is currently doing around the
// simulation.
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateShaking      // brief freeze after the player is hurt
	StateBossEntrance // arena wall rising, boss not yet awake
	StateDead         // dying timer ran out, waiting to restart
	StateVictory      // door opened
	StateEnding       // boss defeated
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateShaking:
		return "Shaking"
	case StateBossEntrance:
		return "BossEntrance"
	case StateDead:
		return "Dead"
	case StateVictory:
		return "Victory"
	case StateEnding:
		return "Ending"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the simulation advances in this state.
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// Finished reports whether the run is over and only a restart leaves it.
func (s GameState) Finished() bool {
	return s == StateVictory || s == StateEnding
}
