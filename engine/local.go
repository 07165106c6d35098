package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"domino/experiments/metrics"
	"domino/game"
	"domino/gamemaster"
	"domino/searcher/agent"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine runs one match between agents, one per seat.
type Engine struct {
	ID     uuid.UUID
	Table  *gamemaster.Local
	Agents []agent.Agent
	clock  quartz.Clock
}

func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

func New(players int, teams game.Teams, agents []agent.Agent, rng *rand.Rand, options ...Option) (*Engine, error) {
	if len(agents) != players {
		return nil, fmt.Errorf("%w: %d agents for %d players", game.ErrInvalidConfig, len(agents), players)
	}
	table, err := gamemaster.NewLocal(players, teams, rng)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		ID:     uuid.New(),
		Table:  table,
		Agents: agents,
		clock:  quartz.NewReal(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the entire match. A seat without a playable tile draws until one
// fits or the stock runs out, then its agent is asked; a seat that still cannot
// play passes.
func (e *Engine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	match := e.Table.Match()
	id := e.ID.String()
	gameMetric := metrics.GameMetric{
		ID:             id,
		Players:        match.Players(),
		StartingPlayer: match.Current(),
		StartTime:      e.clock.Now(),
	}
	if match.Teams().Enabled() {
		gameMetric.Layout = match.Teams().String()
	}
	if opener, _, ok := match.Opener(); ok {
		gameMetric.Opener = opener.String()
	}

	log.Info().Str("match", id).Msgf("player %d is starting", match.Current())

	var moveMetrics []metrics.MoveMetric
	step := 0
	record := func(player int, action gamemaster.Action, tile game.Tile, search metrics.SearchMetric) {
		step++
		mm := metrics.MoveMetric{Step: step, Player: player, Action: string(action), SearchMetric: search}
		if action != gamemaster.ActionPass {
			mm.Tile = tile.String()
		}
		moveMetrics = append(moveMetrics, mm)
		log.Debug().Str("match", id).Int("player", player).Str("action", mm.Action).Str("tile", mm.Tile).Msg("turn")
	}

	limit := game.MaxSteps(match.Players())
	for !match.IsOver() {
		if step > limit {
			panic(fmt.Sprintf("match %s exceeded %d steps", id, limit))
		}
		player := match.Current()

		for len(match.LegalMoves(player)) == 0 {
			tile, ok, err := e.Table.Draw(player)
			if err != nil {
				panic(err)
			}
			if !ok {
				break
			}
			record(player, gamemaster.ActionDraw, tile, metrics.SearchMetric{})
		}

		tile, ok, search := e.Agents[player].FindMove(match, player)
		if ok {
			err := e.Table.Play(player, tile)
			if err == nil {
				record(player, gamemaster.ActionPlay, tile, search)
				continue
			}
			if !errors.Is(err, game.ErrInvalidMove) {
				panic(err)
			}
			log.Warn().Str("match", id).Int("player", player).Msgf("agent returned an invalid move: %v", err)
		}

		if moves := match.LegalMoves(player); len(moves) > 0 {
			if ok {
				log.Warn().Str("match", id).Int("player", player).Msgf("forcing fallback move %s", moves[0])
			} else {
				log.Warn().Str("match", id).Int("player", player).Msgf("agent declined to play, forcing %s", moves[0])
			}
			if err := e.Table.Play(player, moves[0]); err != nil {
				panic(err)
			}
			record(player, gamemaster.ActionPlay, moves[0], search)
			continue
		}

		if err := e.Table.Pass(player); err != nil {
			panic(err)
		}
		record(player, gamemaster.ActionPass, game.Tile{}, search)
	}

	gameMetric.Blocked = match.Blocked()
	result, _ := e.Table.Result()
	for _, mm := range moveMetrics {
		switch gamemaster.Action(mm.Action) {
		case gamemaster.ActionDraw:
			gameMetric.Draws++
		case gamemaster.ActionPass:
			gameMetric.Passes++
		}
	}
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = result.String()
	gameMetric.EndTime = e.clock.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Str("match", id).Int("turns", match.Turns()).Msgf("match over after %d moves, result: %s", gameMetric.TotalMoves, result)
	return result, gameMetric, moveMetrics
}
