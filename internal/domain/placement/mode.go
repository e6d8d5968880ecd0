package placement

type Mode string

const (
	ModeOff Mode = "off"
	ModeOn  Mode = "on"
)

type Event string

const (
	EventEnterBuildMode Event = "enter_build_mode"
	EventCancel         Event = "cancel"
	EventCommitted      Event = "committed"
)

// Transition is the whole build-mode state machine. Entering while already
// on restarts the session but stays On.
func Transition(m Mode, e Event) Mode {
	switch e {
	case EventEnterBuildMode:
		return ModeOn
	case EventCancel, EventCommitted:
		return ModeOff
	default:
		return m
	}
}
