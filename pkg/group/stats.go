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
	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/player"
)

// Stats are the cumulative statistics of a player as of some round.
type Stats struct {
	Player string `yaml:"player" json:"player"`
	Round  int    `yaml:"round" json:"round"`

	Wins   int `yaml:"wins" json:"wins"`
	Losses int `yaml:"losses" json:"losses"`
	Byes   int `yaml:"byes" json:"byes"`

	SetsWon    int `yaml:"sets-won" json:"sets-won"`
	SetsLost   int `yaml:"sets-lost" json:"sets-lost"`
	PointsWon  int `yaml:"points-won" json:"points-won"`
	PointsLost int `yaml:"points-lost" json:"points-lost"`

	// Buchholz is the sum of the wins of the distinct opponents which
	// the player has completed a match against.
	Buchholz int `yaml:"buchholz" json:"buchholz"`
}

// Played returns the number of completed matches of the player.
func (s Stats) Played() int {
	return s.Wins + s.Losses
}

func (s Stats) SetDifference() int {
	return s.SetsWon - s.SetsLost
}

func (s Stats) PointDifference() int {
	return s.PointsWon - s.PointsLost
}

// Table holds the Stats of every player of a group as of a round.
type Table struct {
	Round int

	rows  []Stats
	index map[string]int
}

// Rows returns the Stats of every player in seeding order.
func (t Table) Rows() []Stats {
	return append([]Stats(nil), t.rows...)
}

// Get returns the Stats of the player with the given identifier.
func (t Table) Get(id string) (Stats, bool) {
	i, found := t.index[id]
	if !found {
		return Stats{Player: id, Round: t.Round}, false
	}

	return t.rows[i], true
}

// standing is everything which is derived from the matches of a group up
// to some round: the statistics table and the head-to-head results.
type standing struct {
	table Table

	// winners maps pairs of players to the winner of their latest
	// completed match against each other.
	winners map[Pair]string
}

// computeStanding aggregates the given matches into a standing.
func computeStanding(players []*player.Player, matches []*match.Match, cutoff int, byeCredit bool) *standing {
	s := &standing{
		table: Table{
			Round: cutoff,
			rows:  make([]Stats, len(players)),
			index: make(map[string]int, len(players)),
		},
		winners: make(map[Pair]string),
	}

	opponents := make([]map[string]struct{}, len(players))
	for i, p := range players {
		s.table.rows[i] = Stats{Player: p.ID(), Round: cutoff}
		s.table.index[p.ID()] = i
		opponents[i] = make(map[string]struct{})
	}

	for _, m := range matches {
		if m.IsBye() {
			if i, found := s.table.index[m.Player1().ID()]; found {
				s.table.rows[i].Byes++
				if byeCredit {
					s.table.rows[i].Wins++
				}
			}

			continue
		}

		if !m.Completed() {
			continue
		}

		winner, loser := m.Winner().ID(), m.Loser().ID()
		s.winners[NewPair(winner, loser)] = winner

		for _, p := range m.Players() {
			i, found := s.table.index[p.ID()]
			if !found {
				continue
			}

			row := &s.table.rows[i]
			if p.ID() == winner {
				row.Wins++
			} else {
				row.Losses++
			}

			won, lost := m.SetsOf(p.ID())
			row.SetsWon += won
			row.SetsLost += lost

			won, lost = m.PointsOf(p.ID())
			row.PointsWon += won
			row.PointsLost += lost

			opponents[i][m.Opponent(p.ID()).ID()] = struct{}{}
		}
	}

	for i := range s.table.rows {
		for opponent := range opponents[i] {
			if j, found := s.table.index[opponent]; found {
				s.table.rows[i].Buchholz += s.table.rows[j].Wins
			}
		}
	}

	return s
}

// statsCache memoizes standings by their cutoff round. Every entry keeps
// the revision of the matches it was computed from, since the matches of
// a group can be scored directly and not only through the group.
type statsCache struct {
	enabled   bool
	standings map[int]cachedStanding
}

type cachedStanding struct {
	*standing
	revision int
}

func newStatsCache(enabled bool) *statsCache {
	return &statsCache{
		enabled:   enabled,
		standings: make(map[int]cachedStanding),
	}
}

// get returns the cached standing for the given cutoff, computing and
// storing it if there is none or if the matches have been revised since.
func (c *statsCache) get(cutoff, revision int, compute func() *standing) *standing {
	if !c.enabled {
		return compute()
	}

	if s, found := c.standings[cutoff]; found && s.revision == revision {
		return s.standing
	}

	s := compute()
	c.standings[cutoff] = cachedStanding{standing: s, revision: revision}
	return s
}

// invalidate drops every standing whose cutoff is at or after the given
// round, since the matches of that round contribute to all of them.
func (c *statsCache) invalidate(round int) {
	for cutoff := range c.standings {
		if cutoff >= round {
			delete(c.standings, cutoff)
		}
	}
}

// standing returns the standing of the group as of the given cutoff.
func (b *base) standing(cutoff int) *standing {
	return b.cache.get(cutoff, b.revision(cutoff), func() *standing {
		return computeStanding(b.players, b.matchesUpTo(cutoff), cutoff, b.options.byeCredit)
	})
}

// revision returns the combined revision of the rounds up to the cutoff.
func (b *base) revision(cutoff int) int {
	revision := 0
	for _, r := range b.rounds {
		if r.Number > cutoff {
			break
		}

		revision += r.Revision()
	}

	return revision
}

func (b *base) Stats(asOf int) Table {
	return b.standing(b.cutoff(asOf)).table
}
