package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"golang.org/x/exp/slices"
)

// Match is the complete state of one domino match.
type Match struct {
	players  int
	teams    Teams
	hands    [][]Tile // canonical tiles per player
	stock    []Tile   // drawn from the end
	board    []Tile   // oriented chain, left to right
	owners   []int    // player who placed each board tile
	current  int      // player to act
	passes   int      // consecutive passes since the last play
	turns    int      // plays, draws and passes after the deal
	opener   Tile
	openedBy int // -1 when no double opened the match
	resolved bool
	result   Result
}

// NewMatch deals a new match for 2 or 4 players and places the forced opener.
// Use NoTeams for free-for-all.
func NewMatch(players int, teams Teams, rng *rand.Rand) (*Match, error) {
	if err := checkPlayers(players); err != nil {
		return nil, err
	}
	if err := checkTeams(players, teams); err != nil {
		return nil, err
	}

	hands, stock := Deal(GenerateTiles(), players, rng)
	m := &Match{
		players: players,
		teams:   teams,
		hands:   hands,
		stock:   stock,
		board:   make([]Tile, 0, NumTiles),
		owners:  make([]int, 0, NumTiles),
	}
	m.placeOpener()
	return m, nil
}

func checkTeams(players int, teams Teams) error {
	if !teams.Enabled() {
		return nil
	}
	_, err := NewTeams(players, teams.groups[0], teams.groups[1])
	return err
}

// Clone returns a deep copy that shares nothing mutable with m.
func (m *Match) Clone() *Match {
	c := *m
	c.hands = make([][]Tile, len(m.hands))
	for p, hand := range m.hands {
		c.hands[p] = append(make([]Tile, 0, NumTiles), hand...)
	}
	c.stock = slices.Clone(m.stock)
	c.board = append(make([]Tile, 0, NumTiles), m.board...)
	c.owners = append(make([]int, 0, NumTiles), m.owners...)
	return &c
}

func (m *Match) Players() int {
	return m.players
}

func (m *Match) Teams() Teams {
	return m.teams
}

// Current returns the player whose turn it is.
func (m *Match) Current() int {
	return m.current
}

// Passes returns the number of consecutive passes since the last play.
func (m *Match) Passes() int {
	return m.passes
}

// Turns returns the number of plays, draws and passes made after the deal.
func (m *Match) Turns() int {
	return m.turns
}

// Hand returns a copy of the player's tiles.
func (m *Match) Hand(player int) []Tile {
	return slices.Clone(m.hands[player])
}

func (m *Match) HandSize(player int) int {
	return len(m.hands[player])
}

// Board returns a copy of the oriented chain, left to right.
func (m *Match) Board() []Tile {
	return slices.Clone(m.board)
}

// Owners returns a copy of who placed each board tile, parallel to Board.
func (m *Match) Owners() []int {
	return slices.Clone(m.owners)
}

func (m *Match) StockSize() int {
	return len(m.stock)
}

// Ends returns the open ends of the board; ok is false while the board is empty.
func (m *Match) Ends() (left, right int, ok bool) {
	if len(m.board) == 0 {
		return 0, 0, false
	}
	return m.board[0].Left, m.board[len(m.board)-1].Right, true
}

// Opener returns the forced opening double and its holder; ok is false when the
// match started on an empty board.
func (m *Match) Opener() (tile Tile, player int, ok bool) {
	if m.openedBy < 0 {
		return Tile{}, -1, false
	}
	return m.opener, m.openedBy, true
}

// Hash fingerprints the state. Hands are hashed as tile sets; board order counts.
func (m *Match) Hash() StateHash {
	hasher := fnv.New64a()
	write := func(v int64) {
		_ = binary.Write(hasher, binary.LittleEndian, v)
	}

	write(int64(m.current))
	write(int64(m.passes))
	for _, hand := range m.hands {
		write(int64(tileMask(hand)))
	}
	write(int64(tileMask(m.stock)))
	for i, t := range m.board {
		write(int64(t.Left*tilesPerSuit + t.Right))
		write(int64(m.owners[i]))
	}
	return StateHash(hasher.Sum64())
}

func (m *Match) String() string {
	return fmt.Sprintf("players=%d teams=%s current=%d passes=%d stock=%d board=%v",
		m.players, m.teams, m.current, m.passes, len(m.stock), m.board)
}

func (m *Match) next(player int) int {
	return (player + 1) % m.players
}

func (m *Match) advance() {
	m.current = m.next(m.current)
}

func tileMask(tiles []Tile) uint32 {
	var mask uint32
	for _, t := range tiles {
		mask |= 1 << t.Index()
	}
	return mask
}

func indexOf(tiles []Tile, tile Tile) int {
	return slices.IndexFunc(tiles, func(t Tile) bool {
		return t.Same(tile)
	})
}

func removeAt(tiles []Tile, i int) []Tile {
	return slices.Delete(tiles, i, i+1)
}
