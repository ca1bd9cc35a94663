package component

// Mode is one of the two mutually exclusive top-level application states.
type Mode int

const (
	ModeEditor Mode = iota
	ModeLevel
)

func (m Mode) String() string {
	switch m {
	case ModeEditor:
		return "editor"
	case ModeLevel:
		return "level"
	default:
		return "unknown"
	}
}

// ModeState records the desired mode and which session is live. The active
// flags are only flipped by the mode system's open/close handlers.
type ModeState struct {
	Desired         Mode
	EditorActive    bool
	LevelActive     bool
	ReloadRequested bool
}

var ModeStateComponent = NewComponent[ModeState]()

// SessionOwner ties an entity to the session that spawned it so the
// session's exit handler can despawn everything it created.
type SessionOwner struct {
	Mode Mode
}

var SessionOwnerComponent = NewComponent[SessionOwner]()
