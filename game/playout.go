package game

import (
	"fmt"
	"math/rand/v2"
)

// MaxSteps bounds the length of a playout: every tile is played at most once,
// every stock tile drawn at most once, and at most players passes separate two
// plays before the match blocks.
func MaxSteps(players int) int {
	plays := NumTiles
	draws := NumTiles - players*HandSize
	passes := players * (plays + 1)
	return plays + draws + passes
}

// Playout finishes the match with uniformly random play and returns the number of
// steps taken. Each step the player to act plays a random legal tile, else draws
// one tile and yields the turn, else passes.
func (m *Match) Playout(rng *rand.Rand) int {
	limit := MaxSteps(m.players)
	steps := 0
	for !m.IsOver() {
		if steps >= limit {
			panic(fmt.Sprintf("playout exceeded %d steps: %s", limit, m))
		}
		m.randomStep(rng)
		steps++
	}
	return steps
}

func (m *Match) randomStep(rng *rand.Rand) {
	player := m.current
	moves := m.LegalMoves(player)
	switch {
	case len(moves) > 0:
		if err := m.ApplyMove(player, moves[rng.IntN(len(moves))]); err != nil {
			panic(err)
		}
	case len(m.stock) > 0:
		m.Draw(player)
		m.advance()
	default:
		m.Pass(player)
	}
}
