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
	"sort"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ttourney/pkg/player"
)

// criteria is a tie-break cascade used to rank the players of a group.
type criteria struct {
	// buchholz ranks by Buchholz score right after wins, and makes it
	// part of what counts as a tie for the direct encounter rule.
	buchholz bool
}

// less reports whether a ranks above b in the given standing. Players
// which are equal on every criterion are ordered by their seed.
func (c criteria) less(s *standing, seeds map[string]int, a, b *player.Player) bool {
	x, _ := s.table.Get(a.ID())
	y, _ := s.table.Get(b.ID())

	switch {
	case x.Wins != y.Wins:
		return x.Wins > y.Wins
	case c.buchholz && x.Buchholz != y.Buchholz:
		return x.Buchholz > y.Buchholz
	case x.SetDifference() != y.SetDifference():
		return x.SetDifference() > y.SetDifference()
	}

	if c.buchholz {
		// the seed decides before the point difference
		return seeds[a.ID()] < seeds[b.ID()]
	}

	if x.PointDifference() != y.PointDifference() {
		return x.PointDifference() > y.PointDifference()
	}

	return seeds[a.ID()] < seeds[b.ID()]
}

// tied reports whether a and b are tied for the direct encounter rule.
func (c criteria) tied(s *standing, a, b *player.Player) bool {
	x, _ := s.table.Get(a.ID())
	y, _ := s.table.Get(b.ID())

	return x.Wins == y.Wins && (!c.buchholz || x.Buchholz == y.Buchholz)
}

// rank orders the players of the group as of round asOf using the given
// criteria. Without any rounds the ranking is the seeding order.
func (b *base) rank(asOf int, c criteria) []*player.Player {
	ranking := b.Players()

	cutoff := b.cutoff(asOf)
	if cutoff == 0 {
		return ranking
	}

	s := b.standing(cutoff)
	sort.SliceStable(ranking, func(i, j int) bool {
		return c.less(s, b.seeds, ranking[i], ranking[j])
	})

	for start := 0; start < len(ranking); {
		end := start + 1
		for end < len(ranking) && c.tied(s, ranking[start], ranking[end]) {
			end++
		}

		if end-start > 1 {
			breakTie(s, ranking[start:end])
		}

		start = end
	}

	return ranking
}

// breakTie reorders a run of tied players by their wins against each
// other, if every pair in the run has decided a match between them.
func breakTie(s *standing, run []*player.Player) {
	direct := make(map[string]int, len(run))
	for i, a := range run {
		for _, b := range run[i+1:] {
			winner, played := s.winners[NewPair(a.ID(), b.ID())]
			if !played {
				return
			}

			direct[winner]++
		}
	}

	logrus.WithField("players", len(run)).Debug("Breaking tie by direct encounters")
	sort.SliceStable(run, func(i, j int) bool {
		return direct[run[i].ID()] > direct[run[j].ID()]
	})
}
