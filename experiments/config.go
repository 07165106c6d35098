package experiments

import (
	"fmt"
	"os"

	"domino/game"
	"domino/meta"
	"domino/searcher/agent"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the experiment file: a set of match-ups, each played a number of
// times with fixed seats.
type Config struct {
	Output      string             `hcl:"output,optional"`
	Experiments []ExperimentConfig `hcl:"experiment,block"`
}

// ExperimentConfig defines one match-up
type ExperimentConfig struct {
	Name    string       `hcl:"name,label"`
	Games   int          `hcl:"games,optional"`
	Players int          `hcl:"players,optional"`
	Layout  string       `hcl:"layout,optional"`
	Seed    int64        `hcl:"seed,optional"`
	Seats   []SeatConfig `hcl:"seat,block"`
}

// SeatConfig defines the agent in one seat, in seat order
type SeatConfig struct {
	Kind        string  `hcl:"kind,label"`
	Rollouts    int     `hcl:"rollouts,optional"`
	Goroutines  int     `hcl:"goroutines,optional"`
	Temperature float64 `hcl:"temperature,optional"`
}

// DefaultConfig returns a single across-the-table match-up of Monte Carlo
// partners against random partners.
func DefaultConfig() *Config {
	mc := SeatConfig{Kind: agent.KindMonteCarlo, Rollouts: meta.ROLLOUTS, Goroutines: meta.GO_ROUTINES}
	random := SeatConfig{Kind: agent.KindRandom}
	return &Config{
		Output: meta.OUTPUT_DIR,
		Experiments: []ExperimentConfig{
			{
				Name:    "montecarlo_vs_random",
				Games:   meta.NUM_GAMES,
				Players: meta.PLAYERS,
				Layout:  game.LayoutAcross,
				Seed:    meta.SEED,
				Seats:   []SeatConfig{mc, random, mc, random},
			},
		},
	}
}

// LoadConfig loads the experiment configuration from an HCL file
func LoadConfig(filename string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = meta.OUTPUT_DIR
	}
	for i := range c.Experiments {
		exp := &c.Experiments[i]
		if exp.Games == 0 {
			exp.Games = meta.NUM_GAMES
		}
		if exp.Players == 0 {
			exp.Players = len(exp.Seats)
		}
		if exp.Seed == 0 {
			exp.Seed = meta.SEED
		}
		for j := range exp.Seats {
			seat := &exp.Seats[j]
			if seat.Kind == agent.KindRandom {
				continue
			}
			if seat.Rollouts == 0 {
				seat.Rollouts = meta.ROLLOUTS
			}
			if seat.Goroutines == 0 {
				seat.Goroutines = meta.GO_ROUTINES
			}
			if seat.Kind == agent.KindSampling && seat.Temperature == 0 {
				seat.Temperature = 1
			}
		}
	}
}

// Validate validates the experiment configuration
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output directory must be set")
	}
	if len(c.Experiments) == 0 {
		return fmt.Errorf("at least one experiment must be configured")
	}

	names := make(map[string]bool, len(c.Experiments))
	for _, exp := range c.Experiments {
		if names[exp.Name] {
			return fmt.Errorf("experiment %s: defined twice", exp.Name)
		}
		names[exp.Name] = true

		if exp.Games <= 0 {
			return fmt.Errorf("experiment %s: games must be positive", exp.Name)
		}
		if _, err := game.ParseLayout(exp.Layout, exp.Players); err != nil {
			return fmt.Errorf("experiment %s: %w", exp.Name, err)
		}
		if len(exp.Seats) != exp.Players {
			return fmt.Errorf("experiment %s: %d seats for %d players", exp.Name, len(exp.Seats), exp.Players)
		}
		for i, seat := range exp.Seats {
			switch seat.Kind {
			case agent.KindRandom:
			case agent.KindMonteCarlo, agent.KindSampling:
				if seat.Rollouts < 1 {
					return fmt.Errorf("experiment %s: seat %d: rollouts must be positive", exp.Name, i)
				}
				if seat.Goroutines < 1 {
					return fmt.Errorf("experiment %s: seat %d: goroutines must be positive", exp.Name, i)
				}
				if seat.Kind == agent.KindSampling && seat.Temperature <= 0 {
					return fmt.Errorf("experiment %s: seat %d: temperature must be positive", exp.Name, i)
				}
			default:
				return fmt.Errorf("experiment %s: seat %d: invalid kind %s", exp.Name, i, seat.Kind)
			}
		}
	}
	return nil
}
