package game

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Preset team layouts for four players.
const (
	LayoutNone     = ""
	LayoutAcross   = "across"   // 0+2 vs 1+3, partners sit opposite
	LayoutAdjacent = "adjacent" // 0+1 vs 2+3
	LayoutCorner   = "corner"   // 0+3 vs 1+2
)

// Teams partitions the players into two non-empty groups. The zero value means
// free-for-all.
type Teams struct {
	groups [2][]int
}

// NoTeams is the free-for-all table.
var NoTeams = Teams{}

// NewTeams builds a team table for the given player count from the members of
// team 0 and team 1.
func NewTeams(players int, first, second []int) (Teams, error) {
	if err := checkPlayers(players); err != nil {
		return Teams{}, err
	}
	if len(first) == 0 || len(second) == 0 {
		return Teams{}, fmt.Errorf("%w: both teams need at least one player", ErrInvalidConfig)
	}
	seen := make([]bool, players)
	for _, group := range [][]int{first, second} {
		for _, p := range group {
			if p < 0 || p >= players {
				return Teams{}, fmt.Errorf("%w: player %d out of range", ErrInvalidConfig, p)
			}
			if seen[p] {
				return Teams{}, fmt.Errorf("%w: player %d assigned twice", ErrInvalidConfig, p)
			}
			seen[p] = true
		}
	}
	if len(first)+len(second) != players {
		return Teams{}, fmt.Errorf("%w: teams must cover all %d players", ErrInvalidConfig, players)
	}
	return Teams{groups: [2][]int{slices.Clone(first), slices.Clone(second)}}, nil
}

// ParseLayout resolves a preset name or an explicit "0,2/1,3" partition.
func ParseLayout(layout string, players int) (Teams, error) {
	switch layout {
	case LayoutNone:
		return NoTeams, nil
	case LayoutAcross:
		return NewTeams(players, []int{0, 2}, []int{1, 3})
	case LayoutAdjacent:
		return NewTeams(players, []int{0, 1}, []int{2, 3})
	case LayoutCorner:
		return NewTeams(players, []int{0, 3}, []int{1, 2})
	}

	parts := strings.Split(layout, "/")
	if len(parts) != 2 {
		return Teams{}, fmt.Errorf("%w: unknown team layout %q", ErrInvalidConfig, layout)
	}
	var groups [2][]int
	for i, part := range parts {
		for _, field := range strings.Split(part, ",") {
			p, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return Teams{}, fmt.Errorf("%w: team layout %q: %v", ErrInvalidConfig, layout, err)
			}
			groups[i] = append(groups[i], p)
		}
	}
	return NewTeams(players, groups[0], groups[1])
}

func (t Teams) Enabled() bool {
	return len(t.groups[0]) > 0
}

// TeamOf returns the team (0 or 1) of player, or -1 in free-for-all mode.
func (t Teams) TeamOf(player int) int {
	for team, group := range t.groups {
		if slices.Contains(group, player) {
			return team
		}
	}
	return -1
}

// Members returns a copy of the players on team.
func (t Teams) Members(team int) []int {
	return slices.Clone(t.groups[team])
}

func (t Teams) String() string {
	if !t.Enabled() {
		return "free-for-all"
	}
	names := make([]string, 2)
	for i, group := range t.groups {
		ids := make([]string, len(group))
		for j, p := range group {
			ids[j] = strconv.Itoa(p)
		}
		names[i] = strings.Join(ids, ",")
	}
	return strings.Join(names, "/")
}

func checkPlayers(players int) error {
	if players != 2 && players != 4 {
		return fmt.Errorf("%w: %d players, want 2 or 4", ErrInvalidConfig, players)
	}
	return nil
}
