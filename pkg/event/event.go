package event

// DrawObject tells the renderer which part of the screen is stale.
type DrawObject int

const (
	DrawAll DrawObject = iota
	DrawMessages
)

type Event struct {
	Message string
}

func (e Event) String() string {
	return e.Message
}

// LockEvent is emitted when a piece locks into the matrix.
type LockEvent struct {
	Event
	Lines int
	Score int
}

type LevelEvent struct {
	Event
	Level int
}

type GameOverEvent struct {
	Event
	Score int
}
