package core

// Event is a discrete, fire-and-forget notification emitted by the simulation.
// Audio and cosmetic effects subscribe to events; they never feed back into the game.
type Event string

const (
	EventJump           Event = "jump"
	EventTokenCollected Event = "tokenCollected"
	EventObstacleHit    Event = "obstacleHit"
	EventGameOver       Event = "gameOver"
)

// EventSink consumes simulation events.
type EventSink interface {
	Handle(e Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(e Event)

// Handle calls f(e).
func (f EventSinkFunc) Handle(e Event) {
	f(e)
}
