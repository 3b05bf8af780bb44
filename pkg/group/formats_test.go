package group

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/ttourney/pkg/match"
)

// generate calls NextRound until the group runs out of rounds, deciding
// every round with decide before the next one is generated.
func generate(t *testing.T, g Group, decide func(*match.Match) string) []*match.Round {
	t.Helper()

	var rounds []*match.Round
	for i := 0; i < 100; i++ {
		r, err := g.NextRound()
		if errors.Is(err, ErrNoMoreRounds) {
			return rounds
		}

		require.NoError(t, err)
		playRound(t, g, r, decide)
		rounds = append(rounds, r)
	}

	t.Fatalf("group %s didn't run out of rounds", g.Name())
	return nil
}

func TestRoundRobin(t *testing.T) {
	g, err := New(RoundRobin, "A", newPlayers(5))
	require.NoError(t, err)

	rounds := generate(t, g, favourite)
	require.Len(t, rounds, 10)

	assert.Equal(t, []string{"p01:p02"}, matchIDs(rounds[0]))
	assert.Equal(t, []string{"p01:p03"}, matchIDs(rounds[1]))
	assert.Equal(t, []string{"p02:p03"}, matchIDs(rounds[4]))
	assert.Equal(t, []string{"p04:p05"}, matchIDs(rounds[9]))

	played := g.PlayedPairs(Latest)
	assert.Len(t, played, 10)

	for i, r := range rounds {
		assert.Equal(t, i+1, r.Number)
		assert.Len(t, r.Matches(), 1)
	}

	assert.Equal(t, []string{"p01", "p02", "p03", "p04", "p05"}, ids(g.Ranking(Latest)))
	assert.Equal(t, 10, g.RoundsCompleted())
}

func TestBerger(t *testing.T) {
	for n := 2; n <= 9; n++ {
		g, err := New(Berger, "A", newPlayers(n))
		require.NoError(t, err)

		rounds := generate(t, g, favourite)
		require.Len(t, rounds, n+n%2-1, "players: %d", n)

		pairs := make(PairSet)
		for _, r := range rounds {
			seen := make(map[string]bool)
			for _, m := range r.Matches() {
				for _, p := range m.Players() {
					assert.False(t, seen[p.ID()], "%s plays twice in round %d", p.ID(), r.Number)
					seen[p.ID()] = true
				}

				a, b := m.Player1().ID(), m.Player2().ID()
				assert.False(t, pairs.Has(a, b), "%s and %s meet twice", a, b)
				pairs.Add(a, b)
			}

			// an odd player count leaves exactly one player out
			assert.Len(t, seen, n-n%2, "players: %d", n)
		}

		assert.Len(t, pairs, n*(n-1)/2, "players: %d", n)
	}
}

func TestBerger_FirstRound(t *testing.T) {
	g, err := New(Berger, "A", newPlayers(4))
	require.NoError(t, err)

	r, err := g.NextRound()
	require.NoError(t, err)
	assert.Equal(t, []string{"p01:p04", "p02:p03"}, matchIDs(r))

	playRound(t, g, r, favourite)

	r, err = g.NextRound()
	require.NoError(t, err)
	assert.Equal(t, []string{"p01:p03", "p04:p02"}, matchIDs(r))
}

func TestSwiss_FirstRound(t *testing.T) {
	newGroup := func() Group {
		g, err := New(Swiss, "A", newPlayers(5), WithRand(rand.New(rand.NewSource(42))))
		require.NoError(t, err)
		return g
	}

	g, h := newGroup(), newGroup()

	r, err := g.NextRound()
	require.NoError(t, err)
	s, err := h.NextRound()
	require.NoError(t, err)

	// a pinned random source pins the pairing
	assert.Equal(t, matchIDs(r), matchIDs(s))

	matches := r.Matches()
	require.Len(t, matches, 3)

	top := map[string]bool{"p01": true, "p02": true}
	for i, m := range matches[:2] {
		assert.Equal(t, []string{"p01", "p02"}[i], m.Player1().ID())
		assert.False(t, top[m.Player2().ID()])
	}

	assert.True(t, matches[2].IsBye())
	assert.False(t, top[matches[2].Player1().ID()])
}

func TestSwiss_NoRepeatPairings(t *testing.T) {
	g, err := New(Swiss, "A", newPlayers(8), WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	rounds := generate(t, g, favourite)
	require.NotEmpty(t, rounds)

	pairs := make(PairSet)
	for _, r := range rounds {
		for _, m := range r.Matches() {
			if m.IsBye() {
				continue
			}

			a, b := m.Player1().ID(), m.Player2().ID()
			assert.False(t, pairs.Has(a, b), "%s and %s meet twice", a, b)
			pairs.Add(a, b)
		}
	}

	// the favourite wins every match it plays
	assert.Equal(t, "p01", g.Ranking(Latest)[0].ID())
}

func TestSwiss_WithRounds(t *testing.T) {
	g, err := New(Swiss, "A", newPlayers(8), WithRounds(3))
	require.NoError(t, err)

	rounds := generate(t, g, favourite)
	assert.Len(t, rounds, 3)
}

func TestSwiss_Exclude(t *testing.T) {
	g, err := New(Swiss, "A", newPlayers(4), WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	r, err := g.NextRound()
	require.NoError(t, err)
	playRound(t, g, r, favourite)

	require.NoError(t, g.Exclude("p02", "p01"))

	r, err = g.NextRound()
	require.NoError(t, err)
	require.Len(t, r.Matches(), 2)

	played := g.PlayedPairs(1)
	for _, m := range r.Matches() {
		a, b := m.Player1().ID(), m.Player2().ID()
		assert.NotEqual(t, NewPair("p01", "p02"), NewPair(a, b))
		assert.False(t, played.Has(a, b))
	}
}

func TestSwiss_IncompleteRound(t *testing.T) {
	g, err := New(Swiss, "A", newPlayers(4))
	require.NoError(t, err)

	_, err = g.NextRound()
	require.NoError(t, err)

	// pairing goes ahead with the results known so far
	r, err := g.NextRound()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Number)

	first := g.Rounds()[0]
	for _, m := range r.Matches() {
		assert.Nil(t, first.Match(m.ID()), "%s is scheduled twice", m.ID())
	}

	// the matches of the first round can still be scored
	for _, m := range first.Matches() {
		win(t, g, m, favourite(m))

		found, err := g.Match(m.ID())
		require.NoError(t, err)
		assert.Equal(t, 1, found.Round())
		assert.True(t, found.Completed())
	}

	assert.True(t, first.Completed())
}

func TestSwiss_TooFewPlayers(t *testing.T) {
	g, err := New(Swiss, "A", newPlayers(1))
	require.NoError(t, err)

	_, err = g.NextRound()
	require.ErrorIs(t, err, ErrNoMoreRounds)
}

func TestBracketOrder(t *testing.T) {
	assert.Equal(t, []int{0}, BracketOrder(1))
	assert.Equal(t, []int{0, 1}, BracketOrder(2))
	assert.Equal(t, []int{0, 3, 1, 2}, BracketOrder(4))
	assert.Equal(t, []int{0, 7, 3, 4, 1, 6, 2, 5}, BracketOrder(8))
}

func TestKnockout_Symmetry(t *testing.T) {
	for k := 1; k <= 5; k++ {
		n := 1 << k

		g, err := New(SingleElimination, "A", newPlayers(n))
		require.NoError(t, err)

		rounds := generate(t, g, favourite)
		require.Len(t, rounds, k)

		for i, r := range rounds {
			size := n >> i
			assert.Equal(t, StageName(size), r.Stage)
			assert.Len(t, r.Matches(), size/2)

			for _, m := range r.Matches() {
				if m.Involves("p01") && m.Involves("p02") {
					assert.Equal(t, "Final", r.Stage, "top seeds meet before the final")
				}
			}
		}

		final := rounds[len(rounds)-1].Matches()[0]
		assert.Equal(t, "p01:p02", final.ID())

		ranking := ids(g.Ranking(Latest))
		assert.Equal(t, []string{"p01", "p02"}, ranking[:2])
	}
}

func TestKnockout_Qualification(t *testing.T) {
	g, err := New(SingleElimination, "A", newPlayers(6))
	require.NoError(t, err)

	r, err := g.NextRound()
	require.NoError(t, err)
	assert.Equal(t, Qualification, r.Stage)
	assert.Equal(t, []string{"p03:p06", "p04:p05"}, matchIDs(r))

	_, err = g.NextRound()
	require.ErrorIs(t, err, ErrRoundIncomplete)

	// the underdogs win the qualification
	underdog := func(m *match.Match) string { return m.Player2().ID() }
	playRound(t, g, r, underdog)

	assert.Equal(t,
		[]string{"p01", "p02", "p05", "p06", "p03", "p04"},
		ids(g.Ranking(Latest)),
	)

	reached := g.(*KnockoutGroup).Reached(Latest)
	assert.Equal(t, Qualification, reached["p03"])
	assert.Equal(t, "Semi Finals", reached["p06"])
	assert.Equal(t, "Semi Finals", reached["p01"])

	r, err = g.NextRound()
	require.NoError(t, err)
	assert.Equal(t, "Semi Finals", r.Stage)
	assert.Equal(t, []string{"p01:p06", "p02:p05"}, matchIDs(r))

	playRound(t, g, r, favourite)

	r, err = g.NextRound()
	require.NoError(t, err)
	assert.Equal(t, "Final", r.Stage)
	assert.Equal(t, []string{"p01:p02"}, matchIDs(r))

	playRound(t, g, r, underdog)

	_, err = g.NextRound()
	require.ErrorIs(t, err, ErrNoMoreRounds)

	assert.Equal(t,
		[]string{"p02", "p01", "p05", "p06", "p03", "p04"},
		ids(g.Ranking(Latest)),
	)

	reached = g.(*KnockoutGroup).Reached(Latest)
	assert.Equal(t, "Winner", reached["p02"])
	assert.Equal(t, "Final", reached["p01"])
}

func TestKnockout_Sizes(t *testing.T) {
	for n := 2; n <= 17; n++ {
		g, err := New(SingleElimination, "A", newPlayers(n))
		require.NoError(t, err)

		rounds := generate(t, g, favourite)
		require.NotEmpty(t, rounds)

		final := rounds[len(rounds)-1]
		assert.Equal(t, "Final", final.Stage, "players: %d", n)
		assert.Equal(t, "p01", final.Matches()[0].Winner().ID(), "players: %d", n)
	}
}
