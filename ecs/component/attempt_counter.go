package component

// AttemptCounter counts respawns since the current Level session opened.
type AttemptCounter struct {
	Attempts     int
	RenderedText string
}

var AttemptCounterComponent = NewComponent[AttemptCounter]()
