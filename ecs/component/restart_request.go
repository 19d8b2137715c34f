package component

// RestartRequest is a marker component used to ask the round state machine
// for a fresh round. It is honored only after the round is over; otherwise
// it is discarded.
type RestartRequest struct{}

var RestartRequestComponent = NewComponent[RestartRequest]()
