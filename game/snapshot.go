package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Snapshot is a plain copy of a match, for presentation layers and for setting up
// specific positions.
type Snapshot struct {
	Players  int      `json:"players"`
	Teams    [][]int  `json:"teams,omitempty"`
	Hands    [][]Tile `json:"hands"`
	Stock    []Tile   `json:"stock"`
	Board    []Tile   `json:"board"`
	Owners   []int    `json:"owners"`
	Current  int      `json:"current"`
	Passes   int      `json:"passes"`
	Turns    int      `json:"turns"`
	Opener   *Tile    `json:"opener,omitempty"`
	OpenedBy int      `json:"opened_by"`
}

// Snapshot copies the match state.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Players:  m.players,
		Hands:    make([][]Tile, len(m.hands)),
		Stock:    slices.Clone(m.stock),
		Board:    slices.Clone(m.board),
		Owners:   slices.Clone(m.owners),
		Current:  m.current,
		Passes:   m.passes,
		Turns:    m.turns,
		OpenedBy: m.openedBy,
	}
	if m.teams.Enabled() {
		s.Teams = [][]int{m.teams.Members(0), m.teams.Members(1)}
	}
	for p, hand := range m.hands {
		s.Hands[p] = slices.Clone(hand)
	}
	if m.openedBy >= 0 {
		opener := m.opener
		s.Opener = &opener
	}
	return s
}

// Restore rebuilds a match from a snapshot after checking every match invariant.
func Restore(s Snapshot) (*Match, error) {
	if err := checkPlayers(s.Players); err != nil {
		return nil, err
	}
	teams := NoTeams
	if len(s.Teams) > 0 {
		if len(s.Teams) != 2 {
			return nil, fmt.Errorf("%w: %d teams, want 2", ErrInvalidConfig, len(s.Teams))
		}
		var err error
		if teams, err = NewTeams(s.Players, s.Teams[0], s.Teams[1]); err != nil {
			return nil, err
		}
	}
	if len(s.Hands) != s.Players {
		return nil, fmt.Errorf("%w: %d hands for %d players", ErrInvalidConfig, len(s.Hands), s.Players)
	}
	if len(s.Owners) != len(s.Board) {
		return nil, fmt.Errorf("%w: %d owners for %d board tiles", ErrInvalidConfig, len(s.Owners), len(s.Board))
	}
	for _, owner := range s.Owners {
		if owner < 0 || owner >= s.Players {
			return nil, fmt.Errorf("%w: board owner %d out of range", ErrInvalidConfig, owner)
		}
	}
	if s.Current < 0 || s.Current >= s.Players {
		return nil, fmt.Errorf("%w: current player %d out of range", ErrInvalidConfig, s.Current)
	}
	if s.Passes < 0 || s.Passes > s.Players || s.Turns < 0 {
		return nil, fmt.Errorf("%w: passes %d, turns %d", ErrInvalidConfig, s.Passes, s.Turns)
	}
	for i := 1; i < len(s.Board); i++ {
		if s.Board[i-1].Right != s.Board[i].Left {
			return nil, fmt.Errorf("%w: board breaks between %s and %s", ErrInvalidConfig, s.Board[i-1], s.Board[i])
		}
	}

	m := &Match{
		players:  s.Players,
		teams:    teams,
		hands:    make([][]Tile, s.Players),
		stock:    canonical(s.Stock),
		board:    append(make([]Tile, 0, NumTiles), s.Board...),
		owners:   append(make([]int, 0, NumTiles), s.Owners...),
		current:  s.Current,
		passes:   s.Passes,
		turns:    s.Turns,
		openedBy: -1,
	}
	for p, hand := range s.Hands {
		m.hands[p] = append(make([]Tile, 0, NumTiles), canonical(hand)...)
	}
	if s.Opener != nil && s.OpenedBy >= 0 {
		m.opener = s.Opener.Canonical()
		m.openedBy = s.OpenedBy
	}
	if err := m.checkTiles(); err != nil {
		return nil, err
	}
	return m, nil
}

// checkTiles verifies that stock, hands and board hold each of the 28 tiles
// exactly once.
func (m *Match) checkTiles() error {
	var seen uint32
	count := 0
	zones := append([][]Tile{m.stock, m.board}, m.hands...)
	for _, zone := range zones {
		for _, t := range zone {
			if !t.Valid() {
				return fmt.Errorf("%w: tile %s out of range", ErrInvalidConfig, t)
			}
			bit := uint32(1) << t.Index()
			if seen&bit != 0 {
				return fmt.Errorf("%w: tile %s appears twice", ErrInvalidConfig, t)
			}
			seen |= bit
			count++
		}
	}
	if count != NumTiles {
		return fmt.Errorf("%w: %d tiles in play, want %d", ErrInvalidConfig, count, NumTiles)
	}
	return nil
}

func canonical(tiles []Tile) []Tile {
	out := make([]Tile, len(tiles))
	for i, t := range tiles {
		out[i] = t.Canonical()
	}
	return out
}
