package game

import "fmt"

// End selects a side of the board chain.
type End int

const (
	EndRight End = iota
	EndLeft
)

func (e End) String() string {
	if e == EndLeft {
		return "left"
	}
	return "right"
}

// ValidMoves returns the tiles of hand that can be played on board, in hand order.
// Every tile is playable on an empty board.
func ValidMoves(hand []Tile, board []Tile) []Tile {
	moves := make([]Tile, 0, len(hand))
	if len(board) == 0 {
		return append(moves, hand...)
	}
	left, right := board[0].Left, board[len(board)-1].Right
	for _, t := range hand {
		if IsValidMove(t, left) || IsValidMove(t, right) {
			moves = append(moves, t)
		}
	}
	return moves
}

// LegalMoves returns the tiles player could play right now.
func (m *Match) LegalMoves(player int) []Tile {
	return ValidMoves(m.hands[player], m.board)
}

// ApplyMove plays tile for player. A tile that fits both ends goes to the right.
func (m *Match) ApplyMove(player int, tile Tile) error {
	m.mustAct(player)

	i, err := m.findInHand(player, tile)
	if err != nil {
		return err
	}
	end := EndRight
	if left, right, ok := m.Ends(); ok && !IsValidMove(tile, right) {
		if !IsValidMove(tile, left) {
			return fmt.Errorf("%w: %s matches neither end (%d, %d)", ErrInvalidMove, tile, left, right)
		}
		end = EndLeft
	}
	m.place(player, i, end)
	return nil
}

// ApplyMoveAt plays tile for player on the chosen end.
func (m *Match) ApplyMoveAt(player int, tile Tile, end End) error {
	m.mustAct(player)

	i, err := m.findInHand(player, tile)
	if err != nil {
		return err
	}
	if left, right, ok := m.Ends(); ok {
		pip := right
		if end == EndLeft {
			pip = left
		}
		if !IsValidMove(tile, pip) {
			return fmt.Errorf("%w: %s does not match the %s end (%d)", ErrInvalidMove, tile, end, pip)
		}
	}
	m.place(player, i, end)
	return nil
}

// Draw moves the last stock tile into player's hand. It returns false when the
// stock is empty. The turn does not advance.
func (m *Match) Draw(player int) (Tile, bool) {
	m.mustAct(player)

	if len(m.stock) == 0 {
		return Tile{}, false
	}
	last := len(m.stock) - 1
	tile := m.stock[last]
	m.stock = m.stock[:last]
	m.hands[player] = append(m.hands[player], tile)
	m.turns++
	return tile, true
}

// Pass records that player could not or would not play and hands the turn on.
func (m *Match) Pass(player int) {
	m.mustAct(player)

	m.passes++
	m.turns++
	m.advance()
}

func (m *Match) findInHand(player int, tile Tile) (int, error) {
	i := indexOf(m.hands[player], tile)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s is not in player %d's hand", ErrInvalidMove, tile, player)
	}
	return i, nil
}

// place attaches the hand tile at index i to end, oriented so that the matching
// pip touches the chain. The caller has checked that it fits.
func (m *Match) place(player, i int, end End) {
	tile := m.hands[player][i]
	m.hands[player] = removeAt(m.hands[player], i)

	left, right, ok := m.Ends()
	switch {
	case !ok:
		m.board = append(m.board, tile)
		m.owners = append(m.owners, player)
	case end == EndLeft:
		tile = Tile{Left: tile.Other(left), Right: left}
		m.board = append([]Tile{tile}, m.board...)
		m.owners = append([]int{player}, m.owners...)
	default:
		tile = Tile{Left: right, Right: tile.Other(right)}
		m.board = append(m.board, tile)
		m.owners = append(m.owners, player)
	}

	m.passes = 0
	m.turns++
	m.advance()
}

func (m *Match) mustAct(player int) {
	if m.IsOver() {
		panic("match is over")
	}
	if player != m.current {
		panic(fmt.Sprintf("player %d acted on player %d's turn", player, m.current))
	}
}
