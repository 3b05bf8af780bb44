package player

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name        string
		first, last string
		club        string
		pattern     string
	}{
		{name: "with club", first: "Jan-Ove", last: "Waldner", club: "Angby BTK Stockholm", pattern: `^jan-ov_waldne_angby_btk_st_[0-9a-f]{4}$`},
		{name: "without club", first: "Ma", last: "Long", pattern: `^ma_long_[0-9a-f]{4}$`},
		{name: "spaces in name", first: "Anna Lena", last: "de Vries", pattern: `^anna_l_de_vri_[0-9a-f]{4}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewID(tt.first, tt.last, tt.club)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), id)
		})
	}
}

func TestNew(t *testing.T) {
	p := New("Timo", "Boll", 2000, WithClub("Borussia Düsseldorf"), WithAge(43), WithGender("m"))

	assert.Equal(t, "Timo Boll", p.Name())
	assert.Equal(t, 2000, p.Rating())
	assert.Equal(t, 43, p.Age())
	assert.Equal(t, "m", p.Gender())
	assert.Equal(t, "Timo Boll, Borussia Düsseldorf (2000)", p.String())
	assert.NotEmpty(t, p.ID())

	// the identifier never changes
	assert.Equal(t, p.ID(), p.ID())
	assert.Equal(t, "fixed", New("A", "B", 1, WithID("fixed")).ID())
}

func TestSetStartNumbers(t *testing.T) {
	players := []*Player{
		New("A", "A", 1000),
		New("B", "B", 1500),
		New("C", "C", 1200),
	}

	SortByRating(players)
	SetStartNumbers(players)

	assert.Equal(t, "B B", players[0].Name())
	for i, p := range players {
		assert.Equal(t, i+1, p.StartNumber())
	}
}

func TestRecordRoundTrip(t *testing.T) {
	p := New("Timo", "Boll", 2000, WithClub("Düsseldorf"), WithAge(43))
	SetStartNumbers([]*Player{p})

	data, err := yaml.Marshal(p.Record())
	require.NoError(t, err)

	var record Record
	require.NoError(t, yaml.Unmarshal(data, &record))

	got, err := FromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = FromRecord(Record{ID: "x"})
	require.Error(t, err)
}

func TestIndex_Lookup(t *testing.T) {
	p := New("Timo", "Boll", 2000)
	index := NewIndex([]*Player{p})

	got, err := index.Lookup(p.ID())
	require.NoError(t, err)
	assert.Same(t, p, got)

	_, err = index.Lookup("missing")
	require.ErrorIs(t, err, ErrUnknownPlayer)
}
