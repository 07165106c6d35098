// Package game implements a double-six domino match for two or four players,
// free-for-all or in two teams. A Match is a plain value that is mutated only
// through its play operations and can be cloned cheaply for simulation.
package game

import "errors"

var (
	// ErrInvalidMove is returned when a tile is not in the player's hand or does not
	// match an open end. The match is left unchanged.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidConfig is returned for unsupported player counts, team tables and
	// inconsistent snapshots.
	ErrInvalidConfig = errors.New("invalid match configuration")
)

type StateHash uint64
