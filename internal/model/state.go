package model

import "fmt"

// State is the protocol state of a single client.
type State int

const (
	// StateIdle waits for a voice code. It is also the state of any client without a session.
	StateIdle State = iota
	// StateAuthFactor1 waits for the answer to the first knowledge factor.
	StateAuthFactor1
	// StateAuthFactor2 waits for the answer to the second knowledge factor.
	StateAuthFactor2
	// StateAuthFactor3 waits for the answer to the third knowledge factor.
	StateAuthFactor3
	// StateAuthenticated routes utterances to the conversational engine.
	StateAuthenticated
)

var stateNames = map[State]string{
	StateIdle:          "IDLE",
	StateAuthFactor1:   "AUTH_FACTOR_1",
	StateAuthFactor2:   "AUTH_FACTOR_2",
	StateAuthFactor3:   "AUTH_FACTOR_3",
	StateAuthenticated: "AUTHENTICATED",
}

// String returns the wire name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState converts a wire name back into a State.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return StateIdle, fmt.Errorf("unknown protocol state %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if _, ok := stateNames[s]; !ok {
		return nil, fmt.Errorf("unknown protocol state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsAuthFactor reports whether the state is one of the factor verification states.
func (s State) IsAuthFactor() bool {
	return s >= StateAuthFactor1 && s <= StateAuthFactor3
}

// FactorIndex returns the zero-based factor index verified in this state.
// It returns -1 for non-factor states.
func (s State) FactorIndex() int {
	if !s.IsAuthFactor() {
		return -1
	}
	return int(s - StateAuthFactor1)
}

// AuthFactorState returns the verification state for the zero-based factor index.
func AuthFactorState(index int) (State, bool) {
	if index < 0 || index >= MaxFactors {
		return StateIdle, false
	}
	return StateAuthFactor1 + State(index), true
}
