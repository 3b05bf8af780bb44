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

// Package group implements groups of players competing with each other
// in one of several tournament formats. A Group generates its rounds one
// at a time, accepts match results, and ranks its players as of any round.
//
// A Group is not safe for concurrent use.
package group

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/player"
)

// Format is the name of a tournament format.
type Format string

const (
	Swiss             Format = "swiss"
	RoundRobin        Format = "round-robin"
	Berger            Format = "berger"
	SingleElimination Format = "single-elimination"
	DoubleElimination Format = "double-elimination"
)

// Formats lists the formats which a Group can be created in.
var Formats = []Format{Swiss, RoundRobin, Berger, SingleElimination}

// Latest can be passed as the asOf argument of Ranking, Stats, and
// PlayedPairs to consider every round of the group.
const Latest = -1

// Group is a set of players competing in a particular format.
type Group interface {
	Name() string
	Format() Format

	// Players returns the players of the group in seeding order, which
	// is by rating, highest first.
	Players() []*player.Player

	Rounds() []*match.Round
	Matches() []*match.Match
	Match(id string) (*match.Match, error)

	// NextRound generates and appends the next round of the group. It
	// returns ErrNoMoreRounds when the format is exhausted.
	NextRound() (*match.Round, error)

	// SubmitSets replaces the sets of the given match with the provided
	// ones. SubmitScores does the same with set scores in text form.
	SubmitSets(id string, sets ...match.Set) error
	SubmitScores(id string, scores ...string) error

	// Ranking orders the players of the group using the results of the
	// rounds up to and including round asOf. Stats returns the raw
	// statistics which the ranking is based on.
	Ranking(asOf int) []*player.Player
	Stats(asOf int) Table

	// PlayedPairs returns the pairs of players which have completed a
	// match against each other by round asOf.
	PlayedPairs(asOf int) PairSet

	// Exclude prevents the pairing of the given players in future rounds.
	Exclude(a, b string) error

	RoundsCompleted() int
	CurrentRound() int

	Record() Record
}

// New creates a new Group with the given format, name, and players.
func New(format Format, name string, players []*player.Player, options ...Option) (Group, error) {
	b, err := newBase(format, name, players, options...)
	if err != nil {
		return nil, err
	}

	return wrap(b)
}

// wrap creates the Group of the base's format around it.
func wrap(b *base) (Group, error) {
	switch b.format {
	case Swiss:
		return &SwissGroup{base: b}, nil
	case RoundRobin:
		return &RoundRobinGroup{base: b}, nil
	case Berger:
		return &BergerGroup{base: b}, nil
	case SingleElimination:
		return newKnockout(b), nil
	default:
		return nil, fmt.Errorf("new %q group: %w", b.format, ErrUnsupportedFormat)
	}
}

// Option configures a Group.
type Option func(*options)

type options struct {
	rand      *rand.Rand
	byeCredit bool
	rounds    int
	noCache   bool
	excluded  []Pair
}

// WithRand sets the random source which is used for pairing decisions,
// like the shuffle of the first swiss round.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithByeCredit sets whether byes count as wins in the statistics.
func WithByeCredit(credit bool) Option {
	return func(o *options) { o.byeCredit = credit }
}

// WithRounds limits the number of rounds of a swiss group.
func WithRounds(rounds int) Option {
	return func(o *options) { o.rounds = rounds }
}

// WithoutStatsCache disables the caching of statistics.
func WithoutStatsCache() Option {
	return func(o *options) { o.noCache = true }
}

// WithExcluded prevents the pairing of the given pairs of players.
func WithExcluded(pairs ...Pair) Option {
	return func(o *options) { o.excluded = append(o.excluded, pairs...) }
}

// base implements the parts of a Group which are shared by every format.
type base struct {
	name   string
	format Format

	players []*player.Player
	index   player.Index
	seeds   map[string]int

	rounds   []*match.Round
	excluded PairSet

	options options
	cache   *statsCache
}

func newBase(format Format, name string, players []*player.Player, opts ...Option) (*base, error) {
	b := &base{
		name:   name,
		format: format,

		players: append([]*player.Player(nil), players...),
		seeds:   make(map[string]int, len(players)),

		excluded: make(PairSet),
	}

	for _, option := range opts {
		option(&b.options)
	}

	if b.options.rand == nil {
		b.options.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b.cache = newStatsCache(!b.options.noCache)

	player.SortByRating(b.players)
	b.index = player.NewIndex(b.players)
	if len(b.index) != len(b.players) {
		return nil, fmt.Errorf("new group %q: duplicate player identifiers", name)
	}

	for i, p := range b.players {
		b.seeds[p.ID()] = i
	}

	for _, pair := range b.options.excluded {
		if err := b.Exclude(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (b *base) Name() string   { return b.name }
func (b *base) Format() Format { return b.format }

func (b *base) Players() []*player.Player {
	return append([]*player.Player(nil), b.players...)
}

func (b *base) Rounds() []*match.Round {
	return append([]*match.Round(nil), b.rounds...)
}

func (b *base) Matches() []*match.Match {
	var matches []*match.Match
	for _, r := range b.rounds {
		matches = append(matches, r.Matches()...)
	}

	return matches
}

// Match finds the match with the given identifier. The latest rounds are
// searched first.
func (b *base) Match(id string) (*match.Match, error) {
	for i := len(b.rounds) - 1; i >= 0; i-- {
		if m := b.rounds[i].Match(id); m != nil {
			return m, nil
		}
	}

	return nil, fmt.Errorf("match %q: %w", id, ErrUnknownMatch)
}

func (b *base) SubmitSets(id string, sets ...match.Set) error {
	m, err := b.Match(id)
	if err != nil {
		return err
	}

	if err := m.SetSets(sets...); err != nil {
		return fmt.Errorf("submit %s: %w", id, err)
	}

	b.cache.invalidate(m.Round())

	logrus.WithFields(logrus.Fields{
		"group": b.name,
		"match": id,
		"round": m.Round(),
	}).Debug("Submitted match result")
	return nil
}

func (b *base) SubmitScores(id string, scores ...string) error {
	sets, err := match.ParseSets(scores...)
	if err != nil {
		return fmt.Errorf("submit %s: %w", id, err)
	}

	return b.SubmitSets(id, sets...)
}

func (b *base) Exclude(x, y string) error {
	for _, id := range []string{x, y} {
		if _, err := b.index.Lookup(id); err != nil {
			return fmt.Errorf("exclude %s and %s: %w", x, y, err)
		}
	}

	b.excluded.Add(x, y)
	b.cache.invalidate(b.CurrentRound() + 1)
	return nil
}

// scheduledPairs returns the pairs of players who have a match in any
// round, whether it is completed or not.
func (b *base) scheduledPairs() PairSet {
	scheduled := make(PairSet)
	for _, m := range b.Matches() {
		if !m.IsBye() {
			scheduled.Add(m.Player1().ID(), m.Player2().ID())
		}
	}

	return scheduled
}

// blocked checks if the given players may not be paired with each other.
func (b *base) blocked(played PairSet, x, y string) bool {
	return played.Has(x, y) || b.excluded.Has(x, y)
}

// CurrentRound returns the number of the latest generated round, or 0 if
// no round has been generated yet.
func (b *base) CurrentRound() int {
	if len(b.rounds) == 0 {
		return 0
	}

	return b.rounds[len(b.rounds)-1].Number
}

// RoundsCompleted returns the number of leading rounds which are completed.
func (b *base) RoundsCompleted() int {
	completed := 0
	for _, r := range b.rounds {
		if !r.Completed() {
			break
		}

		completed++
	}

	return completed
}

// cutoff resolves the asOf argument of a query to a round number.
func (b *base) cutoff(asOf int) int {
	if last := b.CurrentRound(); asOf < 0 || asOf > last {
		return last
	}

	return asOf
}

func (b *base) PlayedPairs(asOf int) PairSet {
	played := make(PairSet)
	for _, m := range b.matchesUpTo(b.cutoff(asOf)) {
		if m.Completed() {
			played.Add(m.Player1().ID(), m.Player2().ID())
		}
	}

	return played
}

// matchesUpTo returns the matches of the rounds up to and including the
// given round number.
func (b *base) matchesUpTo(cutoff int) []*match.Match {
	var matches []*match.Match
	for _, r := range b.rounds {
		if r.Number > cutoff {
			break
		}

		matches = append(matches, r.Matches()...)
	}

	return matches
}

// appendRound adds a newly generated round to the group.
func (b *base) appendRound(r *match.Round) {
	b.rounds = append(b.rounds, r)
	b.cache.invalidate(r.Number)

	logrus.WithFields(logrus.Fields{
		"group":   b.name,
		"round":   r.Number,
		"stage":   r.Stage,
		"matches": len(r.Matches()),
	}).Debug("Generated round")
}

// nextRound creates an empty round numbered after the latest one.
func (b *base) nextRound(stage string) *match.Round {
	return match.NewRound(b.CurrentRound()+1, stage)
}
