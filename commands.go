package main

import (
	"fmt"

	"domino/engine"
	"domino/experiments"
	"domino/game"
	"domino/meta"
	"domino/utils"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
)

type PlayCmd struct {
	Players     int      `default:"${players}" help:"Number of players (2 or 4)"`
	Layout      string   `help:"Team layout: across, adjacent, corner or an explicit partition such as 0,2/1,3"`
	Seats       []string `default:"montecarlo,random,montecarlo,random" help:"Agent kind per seat: montecarlo, sampling or random"`
	Rollouts    int      `default:"${rollouts}" help:"Rollouts per candidate tile"`
	Goroutines  int      `default:"${goroutines}" help:"Goroutines running rollouts"`
	Temperature float64  `default:"1" help:"Temperature of sampling seats"`
	Seed        int64    `default:"${seed}" help:"Seed for the deal and every agent"`
}

func (c *PlayCmd) Run() error {
	exp := experiments.ExperimentConfig{
		Name:    "play",
		Games:   1,
		Players: c.Players,
		Layout:  c.Layout,
		Seed:    c.Seed,
	}
	for _, kind := range c.Seats {
		exp.Seats = append(exp.Seats, experiments.SeatConfig{
			Kind:        kind,
			Rollouts:    c.Rollouts,
			Goroutines:  c.Goroutines,
			Temperature: c.Temperature,
		})
	}
	cfg := &experiments.Config{Output: meta.OUTPUT_DIR, Experiments: []experiments.ExperimentConfig{exp}}
	if err := cfg.Validate(); err != nil {
		return err
	}
	teams, err := game.ParseLayout(c.Layout, c.Players)
	if err != nil {
		return err
	}

	clock := quartz.NewReal()
	rng := utils.NewRand(c.Seed)
	agents := experiments.CreateAgents(exp.Seats, rng, clock)
	e, err := engine.New(c.Players, teams, agents, utils.NewRand(rng.Int64()), engine.WithClock(clock))
	if err != nil {
		return err
	}

	_, getUpdate := e.Table.Init()
	result, gameMetric, _ := e.Run()
	for u, ok := getUpdate(); ok; u, ok = getUpdate() {
		log.Info().Msg(u.String())
	}

	match := e.Table.Match()
	log.Info().Msgf("board: %v", match.Board())
	for p := 0; p < match.Players(); p++ {
		log.Info().Msgf("player %d (%s) holds %v, %d pips", p, c.Seats[p], match.Hand(p), match.PipCount(p))
	}
	log.Info().Msgf("result: %s after %d turns (%d draws, %d passes) in %s", result, match.Turns(), gameMetric.Draws, gameMetric.Passes, gameMetric.Duration)
	return nil
}

type ExperimentCmd struct {
	Config string `default:"experiments.hcl" help:"HCL experiment file; defaults apply when it does not exist"`
	Out    string `help:"Directory for CSV records, overrides the file's output"`
}

func (c *ExperimentCmd) Run() error {
	cfg, err := experiments.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.Out != "" {
		cfg.Output = c.Out
	}
	_, err = experiments.Run(cfg, quartz.NewReal())
	return err
}

type ThroughputCmd struct {
	Players    int   `default:"${players}" help:"Number of players (2 or 4)"`
	Positions  int   `default:"20" help:"Positions searched per goroutine count"`
	Rollouts   int   `default:"${rollouts}" help:"Rollouts per candidate tile"`
	Goroutines []int `default:"1,2,4,8,16" help:"Goroutine counts to compare"`
	Seed       int64 `default:"${seed}" help:"Seed for the positions and rollouts"`
}

func (c *ThroughputCmd) Run() error {
	if c.Rollouts < 1 || c.Positions < 1 {
		return fmt.Errorf("rollouts and positions must be positive")
	}
	_, err := experiments.RunThroughputExperiment(c.Players, c.Positions, c.Rollouts, c.Goroutines, c.Seed, quartz.NewReal())
	return err
}
