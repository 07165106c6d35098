// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines running rollouts for one move.
const GO_ROUTINES = 8

// ROLLOUTS defines the number of random playouts per candidate tile.
const ROLLOUTS = 25

// NUM_GAMES defines the number of matches an experiment plays by default.
const NUM_GAMES = 100

// PLAYERS defines the default table size.
const PLAYERS = 4

// SEED defines the default seed for dealing and rollouts.
const SEED = 1

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "results"
