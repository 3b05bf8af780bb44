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

	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/player"
)

// SwissGroup pairs players with similar scores who haven't played each
// other yet. The number of rounds is open ended unless limited with the
// WithRounds option.
type SwissGroup struct {
	*base
}

var _ Group = (*SwissGroup)(nil)

func (g *SwissGroup) NextRound() (*match.Round, error) {
	if len(g.players) < 2 {
		return nil, ErrNoMoreRounds
	}

	if g.options.rounds > 0 && len(g.rounds) >= g.options.rounds {
		return nil, ErrNoMoreRounds
	}

	var round *match.Round
	if len(g.rounds) == 0 {
		round = g.firstRound()
	} else {
		if last := g.rounds[len(g.rounds)-1]; !last.Completed() {
			logrus.WithFields(logrus.Fields{
				"group": g.name,
				"round": last.Number,
			}).Warn("Pairing swiss round while the previous round is incomplete")
		}

		round = g.pairRound()
		if round == nil {
			return nil, ErrNoMoreRounds
		}
	}

	g.appendRound(round)
	return round, nil
}

// firstRound pairs the top half of the seeding against a shuffled bottom
// half. With an odd number of players the last of the shuffled bottom
// half gets a bye.
func (g *SwissGroup) firstRound() *match.Round {
	round := g.nextRound("")

	half := len(g.players) / 2
	top := g.players[:half]
	bottom := append([]*player.Player(nil), g.players[half:]...)

	g.options.rand.Shuffle(len(bottom), func(i, j int) {
		bottom[i], bottom[j] = bottom[j], bottom[i]
	})

	for i, p := range top {
		round.Add(match.New(p, bottom[i]))
	}

	if len(bottom) > len(top) {
		round.Add(match.NewBye(bottom[len(bottom)-1]))
	}

	return round
}

// pairRound pairs every player, in order of wins, with the first player
// after them whom they haven't been scheduled against and aren't excluded
// from playing. Players without any such opponent get a bye. It returns
// nil if nobody could be paired at all.
func (g *SwissGroup) pairRound() *match.Round {
	table := g.Stats(Latest)

	// unfinished matches count too, as a second match between the same
	// players would share its ID with the first
	played := g.scheduledPairs()

	remaining := g.Players()
	sort.SliceStable(remaining, func(i, j int) bool {
		x, _ := table.Get(remaining[i].ID())
		y, _ := table.Get(remaining[j].ID())
		return x.Wins > y.Wins
	})

	round := g.nextRound("")
	paired := false

	for len(remaining) > 0 {
		p := remaining[0]
		remaining = remaining[1:]

		opponent := -1
		for i, q := range remaining {
			if !g.blocked(played, p.ID(), q.ID()) {
				opponent = i
				break
			}
		}

		if opponent < 0 {
			logrus.WithField("player", p.ID()).Debug("No opponent available, assigning bye")
			round.Add(match.NewBye(p))
			continue
		}

		q := remaining[opponent]
		remaining = append(remaining[:opponent], remaining[opponent+1:]...)

		logrus.WithFields(logrus.Fields{
			"player":   p.ID(),
			"opponent": q.ID(),
		}).Debug("Paired players")
		round.Add(match.New(p, q))
		paired = true
	}

	if !paired {
		return nil
	}

	return round
}

// Ranking ranks the players by wins, Buchholz score, set difference,
// seed, and point difference, in that order.
func (g *SwissGroup) Ranking(asOf int) []*player.Player {
	return g.rank(asOf, criteria{buchholz: true})
}
