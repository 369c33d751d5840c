package session

// State is the position of a session in its lifecycle, derived from the last
// accepted event.
type State int

const (
	StateWorking State = iota
	StateResting
	StateClosed
)

var stateNames = [...]string{
	StateWorking: "working",
	StateResting: "resting",
	StateClosed:  "closed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// transitions lists, for every state, the event kinds it accepts and the
// state each one leads to. Anything not listed is rejected. Create is only
// ever recorded by New.
var transitions = map[State]map[Kind]State{
	StateWorking: {
		KindLock:  StateResting,
		KindClose: StateClosed,
	},
	StateResting: {
		KindUnlock: StateWorking,
		KindClose:  StateClosed,
	},
	StateClosed: {},
}

// next returns the state reached by applying k in s and whether the
// transition is allowed.
func next(s State, k Kind) (State, bool) {
	to, ok := transitions[s][k]
	return to, ok
}
