package main

import (
	"strconv"

	"domino/meta"
	"domino/utils"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Debug      bool             `help:"Log every turn and rollout score"`
	JSON       bool             `name:"json" help:"Log JSON lines instead of console output"`
	Play       PlayCmd          `cmd:"" help:"Play one match between agents"`
	Experiment ExperimentCmd    `cmd:"" help:"Run the experiments of an HCL file and store CSV records"`
	Throughput ThroughputCmd    `cmd:"" help:"Measure rollouts per second for several goroutine counts"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("domino"),
		kong.Description("Double-six dominoes with Monte Carlo agents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":    version,
			"players":    strconv.Itoa(meta.PLAYERS),
			"rollouts":   strconv.Itoa(meta.ROLLOUTS),
			"goroutines": strconv.Itoa(meta.GO_ROUTINES),
			"seed":       strconv.Itoa(meta.SEED),
		},
	)
	utils.SetupLogger(cli.Debug, cli.JSON)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
