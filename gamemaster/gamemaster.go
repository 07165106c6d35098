package gamemaster

import (
	"errors"
	"fmt"

	"domino/game"
)

var (
	ErrGameOver  = errors.New("game is over - no moves allowed")
	ErrOutOfTurn = errors.New("not this player's turn")
)

type Action string

const (
	ActionPlay Action = "play"
	ActionDraw Action = "draw"
	ActionPass Action = "pass"
)

// Update records one accepted action and the state it produced.
type Update struct {
	Step   int
	Player int
	Action Action
	Tile   game.Tile // Zero for passes
	Hash   game.StateHash
}

func (u Update) String() string {
	if u.Action == ActionPass {
		return fmt.Sprintf("%d: player %d passes", u.Step, u.Player)
	}
	return fmt.Sprintf("%d: player %d %ss %s", u.Step, u.Player, u.Action, u.Tile)
}

// UpdateGetter returns the next unread update, or false when there is none yet.
type UpdateGetter func() (Update, bool)

// Engine is the turn-by-turn surface for drivers that do not hold the match
// themselves, such as a human seat.
type Engine interface {
	Init() (game.Snapshot, UpdateGetter)
	Play(player int, tile game.Tile) error
	PlayAt(player int, tile game.Tile, end game.End) error
	Draw(player int) (game.Tile, bool, error)
	Pass(player int) error
}
