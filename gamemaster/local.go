package gamemaster

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"domino/game"
)

// Local owns a match and accepts only actions that the rules allow: a tile that
// fits an end, a draw when nothing fits, a pass when nothing fits and the stock
// is empty. Errors replace the panics the match raises on broken turn order.
type Local struct {
	mu      sync.Mutex
	match   *game.Match
	updates []Update
	read    int
	result  game.Result
}

func NewLocal(players int, teams game.Teams, rng *rand.Rand) (*Local, error) {
	match, err := game.NewMatch(players, teams, rng)
	if err != nil {
		return nil, err
	}
	return &Local{match: match}, nil
}

// FromMatch wraps an existing match, for example one restored from a snapshot.
func FromMatch(match *game.Match) *Local {
	return &Local{match: match}
}

// Init returns a copy of the starting state and a getter for later updates.
func (e *Local) Init() (game.Snapshot, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.match.Snapshot(), func() (Update, bool) {
		e.mu.Lock()
		defer e.mu.Unlock()

		if e.read >= len(e.updates) {
			return Update{}, false
		}
		u := e.updates[e.read]
		e.read++
		return u, true
	}
}

// Match exposes the live match for reading. Callers must not mutate it.
func (e *Local) Match() *game.Match {
	return e.match
}

func (e *Local) Play(player int, tile game.Tile) error {
	return e.play(player, tile, func() error {
		return e.match.ApplyMove(player, tile)
	})
}

func (e *Local) PlayAt(player int, tile game.Tile, end game.End) error {
	return e.play(player, tile, func() error {
		return e.match.ApplyMoveAt(player, tile, end)
	})
}

func (e *Local) play(player int, tile game.Tile, apply func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.check(player); err != nil {
		return err
	}
	if err := apply(); err != nil {
		return err
	}
	e.record(player, ActionPlay, tile.Canonical())
	return nil
}

// Draw takes one tile from the stock. It reports false, without error, when the
// stock is empty.
func (e *Local) Draw(player int) (game.Tile, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.check(player); err != nil {
		return game.Tile{}, false, err
	}
	if len(e.match.LegalMoves(player)) > 0 {
		return game.Tile{}, false, fmt.Errorf("%w: player %d can play and may not draw", game.ErrInvalidMove, player)
	}
	tile, ok := e.match.Draw(player)
	if ok {
		e.record(player, ActionDraw, tile)
	}
	return tile, ok, nil
}

func (e *Local) Pass(player int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.check(player); err != nil {
		return err
	}
	if len(e.match.LegalMoves(player)) > 0 {
		return fmt.Errorf("%w: player %d can play and may not pass", game.ErrInvalidMove, player)
	}
	if e.match.StockSize() > 0 {
		return fmt.Errorf("%w: player %d must draw before passing", game.ErrInvalidMove, player)
	}
	e.match.Pass(player)
	e.record(player, ActionPass, game.Tile{})
	return nil
}

// Result returns the final result once the match is over.
func (e *Local) Result() (game.Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Phase() != game.PhaseResolved {
		return game.Result{}, false
	}
	return e.result, true
}

func (e *Local) check(player int) error {
	if e.match.IsOver() {
		return ErrGameOver
	}
	if player != e.match.Current() {
		return fmt.Errorf("%w: player %d acted, player %d is to act", ErrOutOfTurn, player, e.match.Current())
	}
	return nil
}

func (e *Local) record(player int, action Action, tile game.Tile) {
	e.updates = append(e.updates, Update{
		Step:   len(e.updates) + 1,
		Player: player,
		Action: action,
		Tile:   tile,
		Hash:   e.match.Hash(),
	})
	if e.match.IsOver() {
		e.result = e.match.Resolve()
	}
}
