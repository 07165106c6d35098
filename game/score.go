package game

import "fmt"

type ResultKind int

const (
	ResultTie ResultKind = iota
	ResultPlayer
	ResultTeam
)

// Result is the outcome of a match. Player is set for ResultPlayer, and for
// ResultTeam when a player emptied their hand; Team is set for ResultTeam.
type Result struct {
	Kind   ResultKind
	Player int
	Team   int
}

// Tie is the result of a blocked match with no unique lowest pip count.
var Tie = Result{Kind: ResultTie, Player: -1, Team: -1}

// Includes reports whether player is among the winners.
func (r Result) Includes(player int, teams Teams) bool {
	switch r.Kind {
	case ResultPlayer:
		return r.Player == player
	case ResultTeam:
		return teams.TeamOf(player) == r.Team
	default:
		return false
	}
}

func (r Result) String() string {
	switch r.Kind {
	case ResultPlayer:
		return fmt.Sprintf("player %d", r.Player)
	case ResultTeam:
		return fmt.Sprintf("team %d", r.Team)
	default:
		return "tie"
	}
}

// IsOver reports whether a hand is empty or every player passed in a row.
func (m *Match) IsOver() bool {
	return m.emptyHand() >= 0 || m.Blocked()
}

// Winner scores the current position without changing it. An emptied hand wins
// outright; otherwise the lowest pip count wins and a shared minimum is a tie.
func (m *Match) Winner() Result {
	if p := m.emptyHand(); p >= 0 {
		if m.teams.Enabled() {
			return Result{Kind: ResultTeam, Player: p, Team: m.teams.TeamOf(p)}
		}
		return Result{Kind: ResultPlayer, Player: p, Team: -1}
	}

	if m.teams.Enabled() {
		first, second := m.TeamPipCount(0), m.TeamPipCount(1)
		switch {
		case first < second:
			return Result{Kind: ResultTeam, Player: -1, Team: 0}
		case second < first:
			return Result{Kind: ResultTeam, Player: -1, Team: 1}
		default:
			return Tie
		}
	}

	best, lowest, tied := -1, 0, false
	for p := range m.hands {
		pips := m.PipCount(p)
		switch {
		case best < 0 || pips < lowest:
			best, lowest, tied = p, pips, false
		case pips == lowest:
			tied = true
		}
	}
	if tied {
		return Tie
	}
	return Result{Kind: ResultPlayer, Player: best, Team: -1}
}

// PipCount sums both values of every tile left in player's hand.
func (m *Match) PipCount(player int) int {
	total := 0
	for _, t := range m.hands[player] {
		total += t.Pips()
	}
	return total
}

// TeamPipCount sums the pip counts of team's members.
func (m *Match) TeamPipCount(team int) int {
	total := 0
	for _, p := range m.teams.groups[team] {
		total += m.PipCount(p)
	}
	return total
}

func (m *Match) emptyHand() int {
	for p, hand := range m.hands {
		if len(hand) == 0 {
			return p
		}
	}
	return -1
}

// Blocked reports whether every player passed in a row since the last play.
func (m *Match) Blocked() bool {
	return m.passes >= m.players
}
