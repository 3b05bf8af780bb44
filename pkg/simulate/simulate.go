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

// Package simulate generates sample players and plays out groups with
// simulated results, where the higher rated player is more likely to win
// every rally.
package simulate

import (
	"errors"
	"fmt"
	"math"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/player"
)

// Rating bounds of generated players.
const (
	MinRating = 1000
	MaxRating = 2000
)

// MaxHeadStart is the largest number of points the favourite of a set can
// start with.
const MaxHeadStart = 5

// Simulator generates players and match results from a seeded source.
type Simulator struct {
	faker *gofakeit.Faker
}

// New creates a new Simulator with the given seed. A zero seed picks a
// random one.
func New(seed uint64) *Simulator {
	return &Simulator{faker: gofakeit.New(seed)}
}

// Players generates n sample players.
func (s *Simulator) Players(n int) []*player.Player {
	players := make([]*player.Player, n)
	for i := range players {
		players[i] = player.New(
			s.faker.FirstName(), s.faker.LastName(),
			s.faker.Number(MinRating, MaxRating),
			player.WithClub("TTC "+s.faker.City()),
			player.WithAge(s.faker.Number(18, 45)),
			player.WithGender(s.faker.RandomString([]string{"m", "f"})),
		)
	}

	return players
}

// Set simulates a single set between players with the given ratings.
// Every 100 rating points are worth a percent of rally win probability,
// and every 200 a point of head start for the favourite, up to MaxHeadStart.
func (s *Simulator) Set(rating1, rating2 int) match.Set {
	diff := rating1 - rating2
	advantage := math.Max(-0.45, math.Min(0.45, float64(diff)/10000))

	start := int(math.Round(float64(diff) / 200))
	start = max(-MaxHeadStart, min(MaxHeadStart, start))

	var points [2]int
	if start > 0 {
		points[0] = start
	} else {
		points[1] = -start
	}

	for {
		if s.faker.Float64Range(0, 1) < 0.5+advantage {
			points[0]++
		} else {
			points[1]++
		}

		set := match.Set{Points1: points[0], Points2: points[1]}
		if set.Valid() {
			return set
		}
	}
}

// Sets simulates the sets of a match between the given players.
func (s *Simulator) Sets(player1, player2 *player.Player) []match.Set {
	var sets []match.Set
	var won [2]int

	for won[0] < match.SetsToWin && won[1] < match.SetsToWin {
		set := s.Set(player1.Rating(), player2.Rating())
		if set.Points1 > set.Points2 {
			won[0]++
		} else {
			won[1]++
		}

		sets = append(sets, set)
	}

	return sets
}

// Play submits simulated results for every undecided match of the round.
func (s *Simulator) Play(g group.Group, r *match.Round) error {
	for _, m := range r.Matches() {
		if m.IsBye() || m.Completed() {
			continue
		}

		if err := g.SubmitSets(m.ID(), s.Sets(m.Player1(), m.Player2())...); err != nil {
			return fmt.Errorf("simulate round %d: %w", r.Number, err)
		}

		logrus.WithFields(logrus.Fields{
			"round": r.Number,
			"match": m.ID(),
		}).Debug("Simulated match")
	}

	return nil
}

// Run generates and plays rounds of the group until it runs out of
// rounds, or until the given number of rounds if it is positive. The
// observe function, if not nil, is called after every played round.
func (s *Simulator) Run(g group.Group, rounds int, observe func(*match.Round)) error {
	for played := 0; rounds <= 0 || played < rounds; played++ {
		r, err := g.NextRound()
		switch {
		case errors.Is(err, group.ErrNoMoreRounds):
			return nil
		case err != nil:
			return err
		}

		if err := s.Play(g, r); err != nil {
			return err
		}

		if observe != nil {
			observe(r)
		}
	}

	return nil
}
