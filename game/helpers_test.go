package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tile(a, b int) Tile {
	return NewTile(a, b)
}

// restOf returns every tile of the set that is not in any of the given groups.
func restOf(groups ...[]Tile) []Tile {
	used := make(map[int]bool)
	for _, group := range groups {
		for _, t := range group {
			used[t.Index()] = true
		}
	}
	var rest []Tile
	for _, t := range GenerateTiles() {
		if !used[t.Index()] {
			rest = append(rest, t)
		}
	}
	return rest
}

func mustRestore(t *testing.T, s Snapshot) *Match {
	t.Helper()
	m, err := Restore(s)
	require.NoError(t, err)
	return m
}

// headsUp sets up a two-player match with the given hands and board; every other
// tile goes to the stock.
func headsUp(t *testing.T, board []Tile, owners []int, first, second []Tile, current int) *Match {
	t.Helper()
	return mustRestore(t, Snapshot{
		Players: 2,
		Hands:   [][]Tile{first, second},
		Stock:   restOf(board, first, second),
		Board:   board,
		Owners:  owners,
		Current: current,
	})
}

// blockedMatch builds a four-player match where everybody passed. Tiles not in a
// hand are put on the board without forming a chain; scoring never looks at it.
func blockedMatch(hands [][]Tile, teams Teams) *Match {
	board := restOf(hands...)
	owners := make([]int, len(board))
	return &Match{
		players:  4,
		teams:    teams,
		hands:    hands,
		board:    board,
		owners:   owners,
		passes:   4,
		turns:    4,
		openedBy: -1,
	}
}

func tileCount(m *Match) int {
	total := len(m.stock) + len(m.board)
	for _, hand := range m.hands {
		total += len(hand)
	}
	return total
}

func requireChain(t *testing.T, m *Match) {
	t.Helper()
	require.Len(t, m.owners, len(m.board))
	for i := 1; i < len(m.board); i++ {
		require.Equal(t, m.board[i-1].Right, m.board[i].Left, "board %v breaks at %d", m.board, i)
	}
}
