package component

type Mode int

const (
	ModeLoading Mode = iota
	ModePlaying
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// RenderMode is decided once per tick from frame readiness.
type RenderMode struct {
	Mode Mode
}

var RenderModeComponent = NewComponent[RenderMode]()
