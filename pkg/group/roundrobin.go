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
	"slices"

	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/player"
)

// RoundRobinGroup plays every pair of players exactly once, one pair per
// round, in seeding order: 1-2, 1-3, ..., 2-3, ...
type RoundRobinGroup struct {
	*base
}

var _ Group = (*RoundRobinGroup)(nil)

// TotalRounds returns the number of rounds of the group.
func (g *RoundRobinGroup) TotalRounds() int {
	n := len(g.players)
	return n * (n - 1) / 2
}

func (g *RoundRobinGroup) NextRound() (*match.Round, error) {
	encounter := len(g.rounds)
	if encounter >= g.TotalRounds() {
		return nil, ErrNoMoreRounds
	}

	// find the encounter'th pair in the enumeration
	n := len(g.players)
	for i := 0; i < n; i++ {
		if pairs := n - i - 1; encounter >= pairs {
			encounter -= pairs
			continue
		}

		round := g.nextRound("")
		round.Add(match.New(g.players[i], g.players[i+1+encounter]))

		g.appendRound(round)
		return round, nil
	}

	return nil, ErrNoMoreRounds
}

// Ranking ranks the players by wins, set difference, point difference,
// and seed, in that order.
func (g *RoundRobinGroup) Ranking(asOf int) []*player.Player {
	return g.rank(asOf, criteria{})
}

// BergerGroup schedules a round robin using Berger tables: every player
// plays in every round, except for one player per round if the number
// of players is odd.
type BergerGroup struct {
	*base
}

var _ Group = (*BergerGroup)(nil)

// TotalRounds returns the number of rounds of the group.
func (g *BergerGroup) TotalRounds() int {
	if len(g.players) < 2 {
		return 0
	}

	return seats(len(g.players)) - 1
}

// seats returns the number of seats at the berger table for n players,
// which is n rounded up to an even number.
func seats(n int) int {
	return n + n%2
}

// table returns the seating of the given round of the group. Seats with
// a number not less than the number of players are empty.
func (g *BergerGroup) table(round int) []int {
	table := make([]int, seats(len(g.players)))
	for i := range table {
		table[i] = i
	}

	// rotate everyone but the first seat one place clockwise
	for ; round > 0; round-- {
		last := len(table) - 1
		table = slices.Insert(table[:last], 1, table[last])
	}

	return table
}

func (g *BergerGroup) NextRound() (*match.Round, error) {
	if len(g.rounds) >= g.TotalRounds() {
		return nil, ErrNoMoreRounds
	}

	table := g.table(len(g.rounds))
	round := g.nextRound("")

	n := len(table)
	for i := 0; i < n/2; i++ {
		p1, p2 := table[i], table[n-1-i]
		if p1 < len(g.players) && p2 < len(g.players) {
			round.Add(match.New(g.players[p1], g.players[p2]))
		}
	}

	g.appendRound(round)
	return round, nil
}

// Ranking ranks the players by wins, set difference, point difference,
// and seed, in that order.
func (g *BergerGroup) Ranking(asOf int) []*player.Player {
	return g.rank(asOf, criteria{})
}
