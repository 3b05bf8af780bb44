// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package match

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ttourney/pkg/player"
)

// SetRecord is the plain key/value representation of a Set.
type SetRecord struct {
	Points1 int  `yaml:"points1" json:"points1"`
	Points2 int  `yaml:"points2" json:"points2"`
	Winner  Side `yaml:"winner,omitempty" json:"winner,omitempty"`
}

// Record returns the SetRecord representation of the Set.
func (set Set) Record() SetRecord {
	winner, _ := set.Winner()
	return SetRecord{Points1: set.Points1, Points2: set.Points2, Winner: winner}
}

// SetFromRecord reconstructs a Set from its SetRecord. The stored winner
// is derived data and is not trusted.
func SetFromRecord(record SetRecord) (Set, error) {
	return NewSet(record.Points1, record.Points2)
}

// Record is the plain key/value representation of a Match. The result,
// winner, loser, and completed fields are derived data.
type Record struct {
	ID        string         `yaml:"id" json:"id"`
	Player1   player.Record  `yaml:"player1" json:"player1"`
	Player2   *player.Record `yaml:"player2,omitempty" json:"player2,omitempty"`
	Round     int            `yaml:"round" json:"round"`
	Stage     string         `yaml:"stage,omitempty" json:"stage,omitempty"`
	Sets      []SetRecord    `yaml:"sets,omitempty" json:"sets,omitempty"`
	Result    [2]int         `yaml:"result,flow" json:"result"`
	Winner    string         `yaml:"winner,omitempty" json:"winner,omitempty"`
	Loser     string         `yaml:"loser,omitempty" json:"loser,omitempty"`
	Completed bool           `yaml:"completed" json:"completed"`
}

// Record returns the Record representation of the Match.
func (m *Match) Record() Record {
	record := Record{
		ID:        m.ID(),
		Player1:   m.player1.Record(),
		Round:     m.round,
		Stage:     m.stage,
		Result:    m.result,
		Completed: m.Completed(),
	}

	if m.player2 != nil {
		p2 := m.player2.Record()
		record.Player2 = &p2
	}

	for _, set := range m.sets {
		record.Sets = append(record.Sets, set.Record())
	}

	if m.Completed() {
		record.Winner = m.Winner().ID()
		record.Loser = m.Loser().ID()
	}

	return record
}

// FromRecord reconstructs a Match from its Record. If index is not nil, the
// players are resolved from it so that they are shared with the caller,
// otherwise they are reconstructed from the Record.
//
// The derived fields are recomputed from the sets; a Record whose stored
// result disagrees with its sets is reconstructed with the recomputed one.
func FromRecord(record Record, index player.Index) (*Match, error) {
	resolve := func(r player.Record) (*player.Player, error) {
		if index != nil {
			return index.Lookup(r.ID)
		}

		return player.FromRecord(r)
	}

	p1, err := resolve(record.Player1)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", record.ID, err)
	}

	m := NewBye(p1)
	if record.Player2 != nil {
		if m.player2, err = resolve(*record.Player2); err != nil {
			return nil, fmt.Errorf("match %s: %w", record.ID, err)
		}
	}

	m.round, m.stage = record.Round, record.Stage

	sets := make([]Set, len(record.Sets))
	for i, setRecord := range record.Sets {
		if sets[i], err = SetFromRecord(setRecord); err != nil {
			return nil, fmt.Errorf("match %s: %w", record.ID, err)
		}
	}

	if err := m.SetSets(sets...); err != nil {
		return nil, err
	}

	if m.result != record.Result || m.Completed() != record.Completed {
		logrus.WithFields(logrus.Fields{
			"match":  m.ID(),
			"stored": fmt.Sprintf("%d:%d", record.Result[0], record.Result[1]),
			"actual": fmt.Sprintf("%d:%d", m.result[0], m.result[1]),
		}).Warn("Stored match result disagrees with its sets")
	}

	return m, nil
}

// RoundRecord is the plain key/value representation of a Round.
type RoundRecord struct {
	Number    int      `yaml:"number" json:"number"`
	Name      string   `yaml:"name" json:"name"`
	Stage     string   `yaml:"stage,omitempty" json:"stage,omitempty"`
	Completed bool     `yaml:"completed" json:"completed"`
	Matches   []Record `yaml:"matches" json:"matches"`
}

// Record returns the RoundRecord representation of the Round.
func (r *Round) Record() RoundRecord {
	record := RoundRecord{
		Number:    r.Number,
		Name:      r.Name,
		Stage:     r.Stage,
		Completed: r.Completed(),
		Matches:   make([]Record, len(r.matches)),
	}

	for i, m := range r.matches {
		record.Matches[i] = m.Record()
	}

	return record
}

// RoundFromRecord reconstructs a Round from its RoundRecord, resolving the
// players of its matches like FromRecord.
func RoundFromRecord(record RoundRecord, index player.Index) (*Round, error) {
	r := NewRound(record.Number, record.Stage)
	if record.Name != "" {
		r.Name = record.Name
	}

	for _, matchRecord := range record.Matches {
		m, err := FromRecord(matchRecord, index)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", record.Number, err)
		}

		r.Add(m)
	}

	return r, nil
}
