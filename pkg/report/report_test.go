package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/player"
)

// playedGroup creates a completed group of four players in which the
// higher rated player wins every match 3:1.
func playedGroup(t *testing.T, format group.Format) group.Group {
	t.Helper()

	players := make([]*player.Player, 4)
	for i := range players {
		players[i] = player.New("Player", fmt.Sprint(i+1), 1800-100*i, player.WithID(fmt.Sprintf("p%d", i+1)))
	}

	g, err := group.New(format, "Group A", players)
	require.NoError(t, err)

	for {
		r, err := g.NextRound()
		if err != nil {
			require.ErrorIs(t, err, group.ErrNoMoreRounds)
			return g
		}

		for _, m := range r.Matches() {
			score := []string{"+7", "-7", "+7", "+7"}
			if m.Player2().Rating() > m.Player1().Rating() {
				score = []string{"-7", "+7", "-7", "-7"}
			}

			require.NoError(t, g.SubmitScores(m.ID(), score...))
		}
	}
}

func TestStandings(t *testing.T) {
	standings := Standings(playedGroup(t, group.RoundRobin), group.Latest)
	require.Len(t, standings, 4)

	for i, standing := range standings {
		assert.Equal(t, i+1, standing.Rank)
		assert.Equal(t, fmt.Sprintf("p%d", i+1), standing.Player.ID())
		assert.Equal(t, 3-i, standing.Stats.Wins)
		assert.Empty(t, standing.Stage)
	}

	// perfect and zero scores have no finite Elo difference
	assert.Zero(t, standings[0].Elo.Elo)
	assert.Greater(t, standings[1].Elo.Elo, 0.0)
	assert.Less(t, standings[2].Elo.Elo, 0.0)

	// p2 played p1, p3, and p4
	average := (1800.0 + 1600 + 1500) / 3
	assert.InDelta(t, average+standings[1].Elo.Elo, standings[1].Performance, 1e-9)

	initial := Standings(playedGroup(t, group.RoundRobin), 0)
	assert.Zero(t, initial[0].Performance)
	assert.Zero(t, initial[0].Stats.Wins)
}

func TestStandings_Knockout(t *testing.T) {
	standings := Standings(playedGroup(t, group.SingleElimination), group.Latest)

	assert.Equal(t, "Winner", standings[0].Stage)
	assert.Equal(t, "Final", standings[1].Stage)
	assert.Equal(t, "Semi Finals", standings[2].Stage)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, Standings(playedGroup(t, group.Berger), group.Latest)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4+4)

	width := utf8.RuneCountInString(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(line), line)
	}

	assert.Contains(t, lines[3], " 1. Player 1")
	assert.Contains(t, lines[3], "9:3")
}

func TestWriteRounds(t *testing.T) {
	g := playedGroup(t, group.SingleElimination)

	var buf bytes.Buffer
	require.NoError(t, WriteRounds(&buf, g.Rounds()))

	out := buf.String()
	assert.Contains(t, out, "Round 1 (Semi Finals)\n")
	assert.Contains(t, out, "Round 2 (Final)\n")
	assert.Contains(t, out, "p1:p2")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, playedGroup(t, group.RoundRobin), group.Latest))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{StandingsSheet, MatchesSheet}, f.GetSheetList())

	rows, err := f.GetRows(StandingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Rank", rows[0][0])
	assert.Equal(t, []string{"1", "Player 1"}, rows[1][:2])

	rows, err = f.GetRows(MatchesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, "p1:p2", rows[1][2])
	assert.Equal(t, "11:7, 7:11, 11:7, 11:7", rows[1][5])
	assert.Equal(t, "3:1", rows[1][6])
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, "Group A", Standings(playedGroup(t, group.RoundRobin), group.Latest)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	require.Error(t, WriteChart(&buf, "Empty", nil))
}
