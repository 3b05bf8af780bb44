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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidScoreFormat is returned when a set score can't be parsed.
	ErrInvalidScoreFormat = errors.New("invalid score format")

	// ErrInvalidSetResult is returned when a set score is well-formed but
	// is not a finished set, or can't be recorded in the target match.
	ErrInvalidSetResult = errors.New("invalid set result")
)

const (
	// SetPoints is the number of points needed to win a set.
	SetPoints = 11

	// SetMargin is the lead a player needs over the opponent to win a set.
	SetMargin = 2
)

// Side identifies one of the two sides of a Set or Match.
type Side int

const (
	NoSide Side = 0
	Side1  Side = 1
	Side2  Side = 2
)

// Other returns the opposite Side.
func (side Side) Other() Side {
	switch side {
	case Side1:
		return Side2
	case Side2:
		return Side1
	default:
		return NoSide
	}
}

// Set represents the point score of a single game in a match.
type Set struct {
	Points1 int
	Points2 int
}

// NewSet creates a Set from a raw pair of points. Only the format of the
// score is checked, use Valid to check if the Set is finished.
func NewSet(points1, points2 int) (Set, error) {
	if points1 < 0 || points2 < 0 {
		return Set{}, fmt.Errorf("set %d:%d: %w", points1, points2, ErrInvalidScoreFormat)
	}

	return Set{Points1: points1, Points2: points2}, nil
}

// ParseSet parses a Set from its string representation. The following
// formats are supported:
//
//	11:9  literal points of both sides
//	+9    side 1 won, side 2 scored 9 points
//	-3    side 2 won, side 1 scored 3 points
//	9     same as +9
//
// In the shorthand formats the winner scored 11 points, or two more than
// the loser if the loser scored more than 9 points (deuce).
func ParseSet(score string) (Set, error) {
	input := strings.TrimSpace(score)
	score = input

	if left, right, found := strings.Cut(score, ":"); found {
		points1, err1 := strconv.Atoi(strings.TrimSpace(left))
		points2, err2 := strconv.Atoi(strings.TrimSpace(right))
		if err1 != nil || err2 != nil {
			return Set{}, fmt.Errorf("set %q: %w", input, ErrInvalidScoreFormat)
		}

		return NewSet(points1, points2)
	}

	winner := Side1
	switch {
	case strings.HasPrefix(score, "+"):
		score = score[1:]
	case strings.HasPrefix(score, "-"):
		winner = Side2
		score = score[1:]
	}

	// Atoi would accept a second sign, which isn't a valid shorthand.
	if score == "" || score[0] == '+' || score[0] == '-' {
		return Set{}, fmt.Errorf("set %q: %w", input, ErrInvalidScoreFormat)
	}

	lost, err := strconv.Atoi(score)
	if err != nil {
		return Set{}, fmt.Errorf("set %q: %w", input, ErrInvalidScoreFormat)
	}

	won := SetPoints
	if lost > SetPoints-SetMargin {
		won = lost + SetMargin
	}

	if winner == Side1 {
		return NewSet(won, lost)
	}

	return NewSet(lost, won)
}

// MustParseSet is like ParseSet but panics if the score can't be parsed.
// It simplifies the initialization of sets from constant strings.
func MustParseSet(score string) Set {
	set, err := ParseSet(score)
	if err != nil {
		panic(err)
	}

	return set
}

// ParseSets parses every score using ParseSet.
func ParseSets(scores ...string) ([]Set, error) {
	sets := make([]Set, len(scores))
	for i, score := range scores {
		var err error
		if sets[i], err = ParseSet(score); err != nil {
			return nil, err
		}
	}

	return sets, nil
}

// Valid checks if the Set is finished according to table tennis rules: one
// side has reached 11 points with a lead of at least 2 points.
func (set Set) Valid() bool {
	return (set.Points1 >= SetPoints && set.Points1 >= set.Points2+SetMargin) ||
		(set.Points2 >= SetPoints && set.Points2 >= set.Points1+SetMargin)
}

// Winner returns the Side which won the Set. It returns an error if the Set
// is not finished, since the winner is undefined for such sets.
func (set Set) Winner() (Side, error) {
	if !set.Valid() {
		return NoSide, fmt.Errorf("set %s is not finished: %w", set, ErrInvalidSetResult)
	}

	if set.Points1 > set.Points2 {
		return Side1, nil
	}

	return Side2, nil
}

// Points returns the points scored by the given Side.
func (set Set) Points(side Side) int {
	if side == Side2 {
		return set.Points2
	}

	return set.Points1
}

// Difference returns the point difference from side 1's point of view.
func (set Set) Difference() int {
	return set.Points1 - set.Points2
}

// String returns the literal representation of the Set, like 11:9.
func (set Set) String() string {
	return fmt.Sprintf("%d:%d", set.Points1, set.Points2)
}

// Shorthand returns the compact signed representation of a finished Set,
// like +9 or -3. Unfinished sets fall back to the literal representation,
// as do finished sets which the shorthand can't reproduce.
func (set Set) Shorthand() string {
	winner, err := set.Winner()
	if err != nil {
		return set.String()
	}

	sign := "+"
	if winner == Side2 {
		sign = "-"
	}

	short := sign + strconv.Itoa(set.Points(winner.Other()))
	if parsed, _ := ParseSet(short); parsed != set {
		return set.String()
	}

	return short
}
