package experiments

import (
	"fmt"
	"math/rand/v2"

	"domino/engine"
	"domino/experiments/metrics"
	"domino/game"
	"domino/searcher"
	"domino/searcher/agent"
	"domino/utils"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
)

// Run plays every configured experiment and writes its records under
// cfg.Output. It returns one tracker per experiment, in configuration order.
func Run(cfg *Config, clock quartz.Clock) ([]*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	trackers := make([]*Tracker, 0, len(cfg.Experiments))
	for _, exp := range cfg.Experiments {
		tracker, err := runExperiment(cfg.Output, exp, clock)
		if err != nil {
			return trackers, fmt.Errorf("experiment %s: %w", exp.Name, err)
		}
		tracker.Report()
		trackers = append(trackers, tracker)
	}
	return trackers, nil
}

func runExperiment(output string, exp ExperimentConfig, clock quartz.Clock) (*Tracker, error) {
	teams, err := game.ParseLayout(exp.Layout, exp.Players)
	if err != nil {
		return nil, err
	}
	writer, err := metrics.NewWriter(output, exp.Name, clock.Now())
	if err != nil {
		return nil, err
	}

	configs := make([]metrics.AgentConfig, len(exp.Seats))
	for i, seat := range exp.Seats {
		configs[i] = metrics.AgentConfig{
			ID:         i + 1,
			Experiment: exp.Name,
			Seat:       i,
			Kind:       seat.Kind,
			Rollouts:   seat.Rollouts,
			Goroutines: seat.Goroutines,
		}
	}

	tracker := NewTracker(exp.Name, exp.Players, teams)
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	rng := utils.NewRand(exp.Seed)

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for i := 0; i < exp.Games; i++ {
		log.Info().Msgf("starting %s game %d of %d...", exp.Name, i+1, exp.Games)

		agents := CreateAgents(exp.Seats, rng, clock)
		e, err := engine.New(exp.Players, teams, agents, utils.NewRand(rng.Int64()), engine.WithClock(clock))
		if err != nil {
			return nil, err
		}
		result, gameMetric, moveMetrics := e.Run()
		tracker.Record(e.Table.Match(), result)

		gameMetric.Layout = exp.Layout
		gameRecords = append(gameRecords, metrics.GameRecord{
			Game:       i + 1,
			Experiment: exp.Name,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed %s game %d with result: %s", exp.Name, i+1, result)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %s records in %s", exp.Name, writer.BaseDir())

	return tracker, nil
}

// CreateAgents builds fresh agents for one game, each with its own seed from rng.
func CreateAgents(seats []SeatConfig, rng *rand.Rand, clock quartz.Clock) []agent.Agent {
	agents := make([]agent.Agent, len(seats))
	for i, seat := range seats {
		seed := rng.Int64()
		switch seat.Kind {
		case agent.KindRandom:
			agents[i] = agent.NewRandomAgent(seed)
		case agent.KindSampling:
			agents[i] = agent.NewSamplingAgent(createMonteCarlo(seat, clock), seat.Temperature, seed)
		default:
			agents[i] = agent.NewEvaluationAgent(createMonteCarlo(seat, clock), seed)
		}
	}
	return agents
}

func createMonteCarlo(seat SeatConfig, clock quartz.Clock) *searcher.MonteCarlo {
	return searcher.NewMonteCarlo(
		searcher.WithRollouts(seat.Rollouts),
		searcher.WithGoroutines(seat.Goroutines),
		searcher.WithMetrics(clock),
	)
}
