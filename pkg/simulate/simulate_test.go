package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/player"
)

func TestPlayers(t *testing.T) {
	players := New(1).Players(16)
	require.Len(t, players, 16)

	ids := make(map[string]bool)
	for _, p := range players {
		assert.GreaterOrEqual(t, p.Rating(), MinRating)
		assert.LessOrEqual(t, p.Rating(), MaxRating)
		assert.NotEmpty(t, p.Name())
		assert.NotEmpty(t, p.Club())
		ids[p.ID()] = true
	}

	assert.Len(t, ids, 16)
}

func TestSet(t *testing.T) {
	s := New(2)

	for i := 0; i < 200; i++ {
		set := s.Set(1000+10*i, 2000-10*i)
		assert.True(t, set.Valid(), set.String())
	}
}

func TestSets(t *testing.T) {
	s := New(3)
	p1 := player.New("Timo", "Boll", 2000)
	p2 := player.New("Ma", "Long", 1500)

	favourite := 0
	for i := 0; i < 50; i++ {
		m := match.New(p1, p2)
		require.NoError(t, m.SetSets(s.Sets(p1, p2)...))
		require.True(t, m.Completed())

		if m.Winner() == p1 {
			favourite++
		}
	}

	assert.Greater(t, favourite, 25)
}

func TestRun(t *testing.T) {
	for _, format := range group.Formats {
		t.Run(string(format), func(t *testing.T) {
			s := New(4)

			g, err := group.New(format, "Simulated", s.Players(7))
			require.NoError(t, err)

			observed := 0
			require.NoError(t, s.Run(g, 0, func(r *match.Round) {
				observed++
				assert.True(t, r.Completed())
			}))

			assert.Equal(t, observed, g.CurrentRound())
			assert.Equal(t, g.CurrentRound(), g.RoundsCompleted())
		})
	}

	s := New(5)
	g, err := group.New(group.Swiss, "Capped", s.Players(8))
	require.NoError(t, err)
	require.NoError(t, s.Run(g, 3, nil))
	assert.Equal(t, 3, g.CurrentRound())
}
