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

package group

import (
	"fmt"

	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/player"
)

// Record is the plain key/value representation of a Group. The state of
// the pairing algorithms is derived from the rounds, so a Group rebuilt
// from its Record continues exactly where the original left off.
type Record struct {
	Name   string `yaml:"name" json:"name"`
	Format Format `yaml:"format" json:"format"`

	ByeCredit bool `yaml:"bye-credit,omitempty" json:"bye-credit,omitempty"`
	MaxRounds int  `yaml:"max-rounds,omitempty" json:"max-rounds,omitempty"`

	Players  []player.Record     `yaml:"players" json:"players"`
	Excluded []Pair              `yaml:"excluded,omitempty,flow" json:"excluded,omitempty"`
	Rounds   []match.RoundRecord `yaml:"rounds,omitempty" json:"rounds,omitempty"`
}

func (b *base) Record() Record {
	record := Record{
		Name:   b.name,
		Format: b.format,

		ByeCredit: b.options.byeCredit,
		MaxRounds: b.options.rounds,

		Players:  make([]player.Record, len(b.players)),
		Excluded: b.excluded.Sorted(),
		Rounds:   make([]match.RoundRecord, len(b.rounds)),
	}

	for i, p := range b.players {
		record.Players[i] = p.Record()
	}

	for i, r := range b.rounds {
		record.Rounds[i] = r.Record()
	}

	return record
}

// FromRecord reconstructs a Group from its Record. The given options are
// applied after the ones stored in the record, so they can supply a
// random source or override the stored settings.
func FromRecord(record Record, options ...Option) (Group, error) {
	players := make([]*player.Player, len(record.Players))
	for i, playerRecord := range record.Players {
		p, err := player.FromRecord(playerRecord)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", record.Name, err)
		}

		players[i] = p
	}

	options = append([]Option{
		WithByeCredit(record.ByeCredit),
		WithRounds(record.MaxRounds),
		WithExcluded(record.Excluded...),
	}, options...)

	b, err := newBase(record.Format, record.Name, players, options...)
	if err != nil {
		return nil, err
	}

	for _, roundRecord := range record.Rounds {
		r, err := match.RoundFromRecord(roundRecord, b.index)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", record.Name, err)
		}

		if r.Number != b.CurrentRound()+1 {
			return nil, fmt.Errorf("group %q: round %d out of sequence", record.Name, r.Number)
		}

		b.rounds = append(b.rounds, r)
	}

	return wrap(b)
}
