package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/snapshot"
)

const players = `players:
  - id: boll
    first-name: Timo
    last-name: Boll
    rating: 2000
  - id: long
    first-name: Ma
    last-name: Long
    rating: 2100
  - id: waldner
    first-name: Jan-Ove
    last-name: Waldner
    rating: 1900
  - id: ovtcharov
    first-name: Dimitrij
    last-name: Ovtcharov
    rating: 1950
`

// setup points the snapshot directory to a temporary one and writes the
// player list into it, returning the path of the list.
func setup(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	previous := snapshot.Directory
	snapshot.Directory = filepath.Join(dir, "groups")
	t.Cleanup(func() { snapshot.Directory = previous })

	file := filepath.Join(dir, "players.yaml")
	require.NoError(t, os.WriteFile(file, []byte(players), 0644))
	return file
}

func execute(args ...string) (string, error) {
	root := Root()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestGroupLifecycle(t *testing.T) {
	file := setup(t)

	out, err := execute("new", "group-a", file, "--format", "round-robin")
	require.NoError(t, err)
	assert.Contains(t, out, "Created Group")

	out, err = execute("pair", "group-a")
	require.NoError(t, err)
	assert.Contains(t, out, "long:boll")

	_, err = execute("submit", "group-a", "long:boll", "+5", "x")
	require.ErrorIs(t, err, match.ErrInvalidScoreFormat)

	_, err = execute("submit", "group-a", "boll:long", "+5")
	require.ErrorIs(t, err, group.ErrUnknownMatch)

	out, err = execute("submit", "group-a", "long:boll", "+5", "+5")
	require.NoError(t, err)
	assert.Contains(t, out, "In Progress")

	out, err = execute("submit", "group-a", "long:boll", "+5", "+5", "-9", "+5")
	require.NoError(t, err)
	assert.Contains(t, out, "Finished")

	out, err = execute("standings", "group-a", "--matches")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 1 rounds completed")
	assert.Contains(t, out, " 1. Ma Long")
	assert.Contains(t, out, "Round 1")

	out, err = execute("list")
	require.NoError(t, err)
	assert.Contains(t, out, "group-a")

	dir := t.TempDir()
	xlsx, chart := filepath.Join(dir, "a.xlsx"), filepath.Join(dir, "a.png")
	_, err = execute("export", "group-a", "--xlsx", xlsx, "--chart", chart)
	require.NoError(t, err)
	assert.FileExists(t, xlsx)
	assert.FileExists(t, chart)

	_, err = execute("export", "group-a")
	require.Error(t, err)
}

func TestNew_Groups(t *testing.T) {
	file := setup(t)

	_, err := execute("new", "group", file, "--groups", "2", "--format", "berger")
	require.NoError(t, err)

	names, err := snapshot.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"group-1", "group-2"}, names)

	g, err := snapshot.Load("group-1")
	require.NoError(t, err)
	require.Len(t, g.Players(), 2)
	assert.Equal(t, "long", g.Players()[0].ID())
	assert.Equal(t, "waldner", g.Players()[1].ID())
	assert.Equal(t, 1, g.Players()[0].StartNumber())
}

func TestNew_Invalid(t *testing.T) {
	file := setup(t)

	_, err := execute("new", "group", file, "--format", "double-elimination")
	require.ErrorIs(t, err, group.ErrUnsupportedFormat)

	_, err = execute("new", "group", file, "--exclude", "boll")
	require.Error(t, err)

	_, err = execute("new", "group", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestPair_Knockout(t *testing.T) {
	file := setup(t)

	_, err := execute("new", "cup", file, "--format", "single-elimination")
	require.NoError(t, err)

	out, err := execute("pair", "cup")
	require.NoError(t, err)
	assert.Contains(t, out, "Semi Finals")

	_, err = execute("pair", "cup")
	require.ErrorIs(t, err, group.ErrRoundIncomplete)
}

func TestSimulate(t *testing.T) {
	setup(t)

	out, err := execute("simulate", "--format", "single-elimination", "--players", "6", "--seed", "3", "--save", "sim")
	require.NoError(t, err)
	assert.Contains(t, out, "(Qualification)")
	assert.Contains(t, out, "(Final)")

	g, err := snapshot.Load("sim")
	require.NoError(t, err)
	assert.Equal(t, g.CurrentRound(), g.RoundsCompleted())

	out, err = execute("pair", "sim")
	require.NoError(t, err)
	assert.Contains(t, out, "no more rounds")
}

func TestCompletion(t *testing.T) {
	out, err := execute("completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "ttourney")

	_, err = execute("completion", "tcsh")
	require.Error(t, err)
}
