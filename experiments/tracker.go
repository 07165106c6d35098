package experiments

import (
	"domino/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Tracker accumulates results and final pip counts over the games of one
// experiment.
type Tracker struct {
	Name     string
	Players  int
	Teams    game.Teams
	Games    int
	Ties     int
	Blocked  int
	SeatWins []int
	TeamWins [2]int
	seatPips []int
	teamPips [2]int
}

func NewTracker(name string, players int, teams game.Teams) *Tracker {
	return &Tracker{
		Name:     name,
		Players:  players,
		Teams:    teams,
		SeatWins: make([]int, players),
		seatPips: make([]int, players),
	}
}

// Record adds a finished match.
func (t *Tracker) Record(match *game.Match, result game.Result) {
	t.Games++
	if match.Blocked() {
		t.Blocked++
	}
	switch result.Kind {
	case game.ResultPlayer:
		t.SeatWins[result.Player]++
	case game.ResultTeam:
		t.TeamWins[result.Team]++
	default:
		t.Ties++
	}
	for p := range t.seatPips {
		t.seatPips[p] += match.PipCount(p)
	}
	if t.Teams.Enabled() {
		t.teamPips[0] += match.TeamPipCount(0)
		t.teamPips[1] += match.TeamPipCount(1)
	}
}

func (t *Tracker) WinRate(seat int) float64 {
	return t.rate(t.SeatWins[seat])
}

func (t *Tracker) TeamWinRate(team int) float64 {
	return t.rate(t.TeamWins[team])
}

func (t *Tracker) TieRate() float64 {
	return t.rate(t.Ties)
}

// AveragePips is the mean pip count left in seat's hand at the end of a game.
func (t *Tracker) AveragePips(seat int) float64 {
	return t.average(t.seatPips[seat])
}

func (t *Tracker) AverageTeamPips(team int) float64 {
	return t.average(t.teamPips[team])
}

// Ranking returns the seats ordered by wins, most first, seat order on ties.
func (t *Tracker) Ranking() []int {
	seats := make([]int, t.Players)
	for i := range seats {
		seats[i] = i
	}
	slices.SortStableFunc(seats, func(a, b int) int {
		return t.SeatWins[b] - t.SeatWins[a]
	})
	return seats
}

// Report logs the summary.
func (t *Tracker) Report() {
	log.Info().Msgf("=== %s: %d games, %d blocked ===", t.Name, t.Games, t.Blocked)
	if t.Teams.Enabled() {
		for team := 0; team < 2; team++ {
			log.Info().Msgf("team %d (%v): %d wins (%.1f%%), average pips %.2f",
				team, t.Teams.Members(team), t.TeamWins[team], 100*t.TeamWinRate(team), t.AverageTeamPips(team))
		}
	} else {
		for _, seat := range t.Ranking() {
			log.Info().Msgf("player %d: %d wins (%.1f%%), average pips %.2f",
				seat, t.SeatWins[seat], 100*t.WinRate(seat), t.AveragePips(seat))
		}
	}
	log.Info().Msgf("ties: %d (%.1f%%)", t.Ties, 100*t.TieRate())
}

func (t *Tracker) rate(count int) float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(count) / float64(t.Games)
}

func (t *Tracker) average(total int) float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(total) / float64(t.Games)
}
