package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// GameStateTag marks the startup singleton that carries process-wide state
// (mode, editor selection, attempts, frame time and input).
type GameStateTag struct{}

var GameStateTagComponent = NewComponent[GameStateTag]()
