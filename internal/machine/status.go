package machine

// Status describes the execution state of the machine after a step.
type Status uint8

const (
	// StatusRunning means the last instruction completed and execution can continue.
	StatusRunning Status = iota
	// StatusBlocked means the machine waits for a key press on LD Vx, K.
	// Step has to be called again after the keypad state changed.
	StatusBlocked
	// StatusHalted means execution stopped on a fatal error.
	StatusHalted
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusBlocked:
		return "blocked"
	case StatusHalted:
		return "halted"
	default:
		return "invalid"
	}
}
