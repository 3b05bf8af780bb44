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

// Package report renders the standings and matches of a group as console
// tables, spreadsheets, and charts.
package report

import (
	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/player"
	"laptudirm.com/x/ttourney/pkg/rating"
)

// Standing is a row of the standings of a group.
type Standing struct {
	Rank   int
	Player *player.Player
	Stats  group.Stats

	// Stage is the furthest stage reached, for knockout groups.
	Stage string

	// Elo is the estimated Elo difference of the player to their
	// opposition, and Performance the resulting performance rating.
	Elo         rating.Estimate
	Performance float64
}

// Standings ranks the players of the group as of round asOf.
func Standings(g group.Group, asOf int) []Standing {
	table := g.Stats(asOf)

	opponents := make(map[string][]int)
	for _, m := range g.Matches() {
		if m.Round() > table.Round || !m.Completed() {
			continue
		}

		p1, p2 := m.Player1(), m.Player2()
		opponents[p1.ID()] = append(opponents[p1.ID()], p2.Rating())
		opponents[p2.ID()] = append(opponents[p2.ID()], p1.Rating())
	}

	var reached map[string]string
	if knockout, ok := g.(*group.KnockoutGroup); ok {
		reached = knockout.Reached(asOf)
	}

	ranking := g.Ranking(asOf)
	standings := make([]Standing, len(ranking))
	for i, p := range ranking {
		stats, _ := table.Get(p.ID())
		standings[i] = Standing{
			Rank:   i + 1,
			Player: p,
			Stats:  stats,
			Stage:  reached[p.ID()],

			Elo:         rating.Elo(stats.Wins, stats.Losses),
			Performance: rating.Performance(opponents[p.ID()], stats.Wins, stats.Losses),
		}
	}

	return standings
}
