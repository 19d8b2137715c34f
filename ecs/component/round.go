package component

// RoundStatus is the state of the round state machine.
type RoundStatus uint8

const (
	StatusRunning RoundStatus = iota
	StatusGameOver
)

func (s RoundStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Round is the singleton tracking the current play-through.
type Round struct {
	Status      RoundStatus
	Tick        int
	Collected   int
	PickupsLeft int
	// Caught is raised by collision detection and consumed by the round
	// state machine.
	Caught bool
	// Cleared reports that every pickup has been collected.
	Cleared bool
}

var RoundComponent = NewComponent[Round]()
