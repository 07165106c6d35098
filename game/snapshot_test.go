package game

import (
	"encoding/json"
	"testing"

	"domino/utils"

	"github.com/stretchr/testify/require"
)

func TestRestore(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		teams, err := ParseLayout(LayoutAcross, 4)
		require.NoError(t, err)
		m, err := NewMatch(4, teams, utils.NewRand(5))
		require.NoError(t, err)
		rng := utils.NewRand(6)
		for i := 0; i < 6 && !m.IsOver(); i++ {
			m.randomStep(rng)
		}

		restored := mustRestore(t, m.Snapshot())
		require.Equal(t, m.Snapshot(), restored.Snapshot())
		require.Equal(t, m.Hash(), restored.Hash())
		require.Equal(t, m.Phase(), restored.Phase())
	})

	t.Run("survives json", func(t *testing.T) {
		m, err := NewMatch(2, NoTeams, utils.NewRand(9))
		require.NoError(t, err)

		data, err := json.Marshal(m.Snapshot())
		require.NoError(t, err)
		var s Snapshot
		require.NoError(t, json.Unmarshal(data, &s))
		require.Equal(t, m.Hash(), mustRestore(t, s).Hash())
	})

	t.Run("hands are canonicalised", func(t *testing.T) {
		m := headsUp(t, nil, nil,
			[]Tile{{Left: 6, Right: 2}},
			[]Tile{tile(1, 1)}, 0)
		require.Equal(t, []Tile{tile(2, 6)}, m.Hand(0))
	})

	t.Run("rejects broken positions", func(t *testing.T) {
		valid := func() Snapshot {
			first := []Tile{tile(5, 6)}
			second := []Tile{tile(1, 1)}
			board := []Tile{{Left: 2, Right: 5}}
			return Snapshot{
				Players: 2,
				Hands:   [][]Tile{first, second},
				Stock:   restOf(board, first, second),
				Board:   board,
				Owners:  []int{1},
			}
		}
		_, err := Restore(valid())
		require.NoError(t, err)

		for name, mutate := range map[string]func(s *Snapshot){
			"players":         func(s *Snapshot) { s.Players = 3 },
			"hand count":      func(s *Snapshot) { s.Hands = s.Hands[:1] },
			"owners length":   func(s *Snapshot) { s.Owners = nil },
			"owner range":     func(s *Snapshot) { s.Owners = []int{2} },
			"current":         func(s *Snapshot) { s.Current = 2 },
			"passes":          func(s *Snapshot) { s.Passes = 3 },
			"missing tile":    func(s *Snapshot) { s.Stock = s.Stock[1:] },
			"duplicate tile":  func(s *Snapshot) { s.Stock[0] = tile(5, 6) },
			"invalid tile":    func(s *Snapshot) { s.Stock[0] = Tile{Left: 0, Right: 9} },
			"broken chain": func(s *Snapshot) {
				s.Board = []Tile{{Left: 2, Right: 5}, {Left: 6, Right: 6}}
				s.Owners = []int{1, 0}
			},
			"bad teams":       func(s *Snapshot) { s.Teams = [][]int{{0, 1}, {}} },
			"too many teams":  func(s *Snapshot) { s.Teams = [][]int{{0}, {1}, {}} },
			"negative passes": func(s *Snapshot) { s.Passes = -1 },
		} {
			s := valid()
			mutate(&s)
			_, err := Restore(s)
			require.ErrorIs(t, err, ErrInvalidConfig, name)
		}
	})
}

func TestClone(t *testing.T) {
	m, err := NewMatch(2, NoTeams, utils.NewRand(21))
	require.NoError(t, err)
	c := m.Clone()
	require.Equal(t, m.Snapshot(), c.Snapshot())

	before := m.Hash()
	c.Playout(utils.NewRand(22))
	require.Equal(t, before, m.Hash())
	require.NotEqual(t, before, c.Hash())
}
