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
	"math"
	"sort"

	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/player"
)

// Qualification is the stage of the matches which reduce the field of a
// knockout group to a power of two.
const Qualification = "Qualification"

// KnockoutGroup is a seeded single elimination bracket. If the number of
// players isn't a power of two, the lowest seeds first play a
// qualification round for the remaining places of the main draw.
type KnockoutGroup struct {
	*base

	// size is the number of players in the main draw, the largest power
	// of two not greater than the number of players.
	size int

	// direct is the number of top seeds which skip the qualification.
	direct int
}

var _ Group = (*KnockoutGroup)(nil)

func newKnockout(b *base) *KnockoutGroup {
	g := &KnockoutGroup{base: b}

	n := len(b.players)
	if n < 2 {
		return g
	}

	g.size = 1
	for g.size*2 <= n {
		g.size *= 2
	}

	g.direct = max(0, 2*g.size-n)
	return g
}

// StageName returns the name of a knockout stage with the given number
// of players.
func StageName(size int) string {
	switch size {
	case 1:
		return "Winner"
	case 2:
		return "Final"
	case 4:
		return "Semi Finals"
	case 8:
		return "Quarter Finals"
	default:
		return fmt.Sprintf("Round of %d", size)
	}
}

// BracketOrder returns the seeds, numbered from 0, of a bracket with the
// given power of two size in the order of their bracket positions. Every
// consecutive pair of positions meet in the first round, and the top two
// seeds can only meet in the final. The bracket of size 2m is derived
// from the bracket of size m by following every seed s with 2m-1-s.
func BracketOrder(size int) []int {
	order := []int{0}
	for len(order) < size {
		m := 2 * len(order)

		next := make([]int, 0, m)
		for _, seed := range order {
			next = append(next, seed, m-1-seed)
		}

		order = next
	}

	return order
}

func (g *KnockoutGroup) NextRound() (*match.Round, error) {
	if g.size < 2 {
		return nil, ErrNoMoreRounds
	}

	var round *match.Round
	if len(g.rounds) == 0 {
		if g.direct < len(g.players) {
			round = g.qualification()
		} else {
			round = g.mainDraw(g.players)
		}
	} else {
		last := g.rounds[len(g.rounds)-1]
		switch {
		case !last.Completed():
			return nil, fmt.Errorf("round %d: %w", last.Number, ErrRoundIncomplete)
		case last.Stage == Qualification:
			entrants := append(g.players[:g.direct:g.direct], winners(last)...)
			sort.SliceStable(entrants, func(i, j int) bool {
				return g.seeds[entrants[i].ID()] < g.seeds[entrants[j].ID()]
			})

			round = g.mainDraw(entrants)
		case len(last.Matches()) == 1:
			return nil, ErrNoMoreRounds
		default:
			survivors := winners(last)

			round = g.nextRound(StageName(len(survivors)))
			for i := 0; i+1 < len(survivors); i += 2 {
				round.Add(match.New(survivors[i], survivors[i+1]))
			}
		}
	}

	g.appendRound(round)
	return round, nil
}

// qualification pairs the players who aren't seeded directly into the
// main draw, the highest remaining seed against the lowest.
func (g *KnockoutGroup) qualification() *match.Round {
	round := g.nextRound(Qualification)

	rest := g.players[g.direct:]
	for i, j := 0, len(rest)-1; i < j; i, j = i+1, j-1 {
		round.Add(match.New(rest[i], rest[j]))
	}

	return round
}

// mainDraw creates the first round of the main draw from the given
// entrants, which must be in seeding order.
func (g *KnockoutGroup) mainDraw(entrants []*player.Player) *match.Round {
	round := g.nextRound(StageName(len(entrants)))

	order := BracketOrder(len(entrants))
	for i := 0; i+1 < len(order); i += 2 {
		round.Add(match.New(entrants[order[i]], entrants[order[i+1]]))
	}

	return round
}

// winners returns the winners of the matches of a completed round.
func winners(r *match.Round) []*player.Player {
	var winners []*player.Player
	for _, m := range r.Matches() {
		winners = append(winners, m.Winner())
	}

	return winners
}

// Reached returns the name of the furthest stage every player has
// reached as of round asOf. Players who haven't played yet are absent.
func (g *KnockoutGroup) Reached(asOf int) map[string]string {
	levels := g.levels(g.cutoff(asOf))

	reached := make(map[string]string, len(levels))
	for id, level := range levels {
		if level == qualificationLevel {
			reached[id] = Qualification
		} else {
			reached[id] = StageName(math.MaxInt32 - level)
		}
	}

	return reached
}

const qualificationLevel = 1

// stageLevel orders the main draw stages by importance, the fewer the
// players the further the stage.
func stageLevel(size int) int {
	return math.MaxInt32 - size
}

// levels computes the furthest stage level of every player as of the
// given round. The winner of a completed match has reached the stage
// after it, and direct seeds have reached the main draw.
func (g *KnockoutGroup) levels(cutoff int) map[string]int {
	levels := make(map[string]int)
	reach := func(id string, level int) {
		levels[id] = max(levels[id], level)
	}

	for _, r := range g.rounds {
		if r.Number > cutoff {
			break
		}

		level, next := qualificationLevel, stageLevel(g.size)
		if r.Stage == Qualification {
			for _, p := range g.players[:g.direct] {
				reach(p.ID(), next)
			}
		} else {
			size := 2 * len(r.Matches())
			level, next = stageLevel(size), stageLevel(size/2)
		}

		for _, m := range r.Matches() {
			for _, p := range m.Players() {
				reach(p.ID(), level)
			}

			if m.Completed() {
				reach(m.Winner().ID(), next)
			}
		}
	}

	return levels
}

// Ranking ranks the players by the furthest stage reached, and then by
// seed. Before the first round it is the seeding order.
func (g *KnockoutGroup) Ranking(asOf int) []*player.Player {
	ranking := g.Players()

	cutoff := g.cutoff(asOf)
	if cutoff == 0 {
		return ranking
	}

	levels := g.levels(cutoff)
	sort.SliceStable(ranking, func(i, j int) bool {
		return levels[ranking[i].ID()] > levels[ranking[j].ID()]
	})

	return ranking
}
