package game

type Phase int

const (
	PhaseDealt Phase = iota
	PhasePlaying
	PhaseBlocked
	PhaseHandEmpty
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseDealt:
		return "dealt"
	case PhasePlaying:
		return "playing"
	case PhaseBlocked:
		return "blocked"
	case PhaseHandEmpty:
		return "hand-empty"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Phase reports where the match is in its life cycle.
func (m *Match) Phase() Phase {
	switch {
	case m.resolved:
		return PhaseResolved
	case m.emptyHand() >= 0:
		return PhaseHandEmpty
	case m.Blocked():
		return PhaseBlocked
	case m.turns == 0:
		return PhaseDealt
	default:
		return PhasePlaying
	}
}

// Resolve scores a finished match and moves it to PhaseResolved. Later calls
// return the same result.
func (m *Match) Resolve() Result {
	if m.resolved {
		return m.result
	}
	if !m.IsOver() {
		panic("cannot resolve a match that is not over")
	}
	m.result = m.Winner()
	m.resolved = true
	return m.result
}
