package transmit

// State is the lifecycle of one send operation.
//
//	Idle -> Confirming -> Sending -> Completed
//	        Confirming -> Idle (abandon)
type State string

const (
	StateIdle       State = "idle"
	StateConfirming State = "confirming"
	StateSending    State = "sending"
	StateCompleted  State = "completed"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsTerminal() bool {
	return s == StateCompleted
}
