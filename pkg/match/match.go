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
	"fmt"
	"strings"

	"laptudirm.com/x/ttourney/pkg/player"
)

// SetsToWin is the number of sets a player needs to win a match (best of 5).
const SetsToWin = 3

// ByeID is used in place of the second player's identifier in bye matches.
const ByeID = "bye"

// Match represents an encounter between two players, which is decided by
// the first player to win SetsToWin sets. A Match whose second player is nil
// is a bye: it is never scored and never completed.
//
// The result, winner, and loser of a Match are derived from its sets and
// are recomputed by every mutation, so they can never disagree.
type Match struct {
	player1 *player.Player
	player2 *player.Player

	round int
	stage string

	sets []Set

	result [2]int // sets won by side 1 and side 2
	winner Side

	revision int // incremented by every change to the sets
}

// New creates a new unscored Match between the given players.
func New(player1, player2 *player.Player) *Match {
	return &Match{player1: player1, player2: player2}
}

// NewBye creates a new bye Match for the given player.
func NewBye(p *player.Player) *Match {
	return &Match{player1: p}
}

// ID returns the identifier of the Match, which is derived from the
// identifiers of its players, so the same pairing always has the same ID.
func ID(player1, player2 string) string {
	return player1 + ":" + player2
}

// ID returns the identifier of the Match.
func (m *Match) ID() string {
	if m.player2 == nil {
		return ID(m.player1.ID(), ByeID)
	}

	return ID(m.player1.ID(), m.player2.ID())
}

func (m *Match) Player1() *player.Player { return m.player1 }
func (m *Match) Player2() *player.Player { return m.player2 }

// Round returns the number of the round the Match was scheduled in.
func (m *Match) Round() int { return m.round }

// Stage returns the stage label of the Match, like "Quarter Finals".
func (m *Match) Stage() string { return m.stage }

// IsBye checks if the Match is a bye.
func (m *Match) IsBye() bool { return m.player2 == nil }

// Players returns the players of the Match. Byes only have one player.
func (m *Match) Players() []*player.Player {
	if m.IsBye() {
		return []*player.Player{m.player1}
	}

	return []*player.Player{m.player1, m.player2}
}

// Side returns the Side the player with the given id plays on, or NoSide
// if the player isn't part of the Match.
func (m *Match) Side(id string) Side {
	switch {
	case m.player1.ID() == id:
		return Side1
	case m.player2 != nil && m.player2.ID() == id:
		return Side2
	default:
		return NoSide
	}
}

// Involves checks if the player with the given id plays in the Match.
func (m *Match) Involves(id string) bool {
	return m.Side(id) != NoSide
}

// Opponent returns the opponent of the player with the given id, which is
// nil if the Match is a bye or the player doesn't play in it.
func (m *Match) Opponent(id string) *player.Player {
	switch m.Side(id) {
	case Side1:
		return m.player2
	case Side2:
		return m.player1
	default:
		return nil
	}
}

// Player returns the player on the given Side.
func (m *Match) Player(side Side) *player.Player {
	switch side {
	case Side1:
		return m.player1
	case Side2:
		return m.player2
	default:
		return nil
	}
}

// Sets returns a copy of the sets played in the Match.
func (m *Match) Sets() []Set {
	return append([]Set(nil), m.sets...)
}

// Result returns the number of sets won by both sides.
func (m *Match) Result() (int, int) {
	return m.result[0], m.result[1]
}

// Completed checks if one of the players has won the Match.
func (m *Match) Completed() bool {
	return m.winner != NoSide
}

// WinnerSide returns the Side which won the Match, or NoSide.
func (m *Match) WinnerSide() Side {
	return m.winner
}

// Winner returns the winner of the Match, or nil if it isn't completed.
func (m *Match) Winner() *player.Player {
	return m.Player(m.winner)
}

// Loser returns the loser of the Match, or nil if it isn't completed.
func (m *Match) Loser() *player.Player {
	return m.Player(m.winner.Other())
}

// AddSet records the given Set as the next set of the Match. The Set must
// be finished and the Match must still be undecided.
func (m *Match) AddSet(set Set) error {
	if err := m.check(set, m.result); err != nil {
		return err
	}

	m.sets = append(m.sets, set)
	m.update()
	return nil
}

// AddScore parses the given score and records it like AddSet.
func (m *Match) AddScore(score string) error {
	set, err := ParseSet(score)
	if err != nil {
		return err
	}

	return m.AddSet(set)
}

// SetSets replaces all the sets of the Match. Either every Set is recorded
// or, if any of them is rejected, the Match is left untouched.
func (m *Match) SetSets(sets ...Set) error {
	var result [2]int
	for _, set := range sets {
		if err := m.check(set, result); err != nil {
			return err
		}

		winner, _ := set.Winner()
		result[winner-1]++
	}

	m.sets = append([]Set(nil), sets...)
	m.update()
	return nil
}

// SetScores parses the given scores and records them like SetSets.
func (m *Match) SetScores(scores ...string) error {
	sets, err := ParseSets(scores...)
	if err != nil {
		return err
	}

	return m.SetSets(sets...)
}

// check verifies if the given Set can be appended to a Match which has
// the given result so far.
func (m *Match) check(set Set, result [2]int) error {
	switch {
	case m.IsBye():
		return fmt.Errorf("match %s: bye can't be scored: %w", m.ID(), ErrInvalidSetResult)
	case !set.Valid():
		return fmt.Errorf("match %s: set %s: %w", m.ID(), set, ErrInvalidSetResult)
	case result[0] >= SetsToWin || result[1] >= SetsToWin:
		return fmt.Errorf("match %s: already decided %d:%d: %w", m.ID(), result[0], result[1], ErrInvalidSetResult)
	}

	return nil
}

// Revision returns a counter which increases every time the sets of the
// Match change.
func (m *Match) Revision() int { return m.revision }

// update recomputes the derived result and winner of the Match.
func (m *Match) update() {
	m.revision++

	m.result = [2]int{}
	for _, set := range m.sets {
		winner, _ := set.Winner()
		m.result[winner-1]++
	}

	switch {
	case m.result[0] >= SetsToWin:
		m.winner = Side1
	case m.result[1] >= SetsToWin:
		m.winner = Side2
	default:
		m.winner = NoSide
	}
}

// Points returns the total points scored by both sides in the Match.
func (m *Match) Points() (int, int) {
	var points1, points2 int
	for _, set := range m.sets {
		points1 += set.Points1
		points2 += set.Points2
	}

	return points1, points2
}

// PointsDifference returns the point difference from side 1's view.
func (m *Match) PointsDifference() int {
	points1, points2 := m.Points()
	return points1 - points2
}

// SetsOf returns the number of sets won and lost by the given player.
func (m *Match) SetsOf(id string) (won, lost int) {
	switch m.Side(id) {
	case Side1:
		return m.result[0], m.result[1]
	case Side2:
		return m.result[1], m.result[0]
	default:
		return 0, 0
	}
}

// PointsOf returns the number of points won and lost by the given player.
func (m *Match) PointsOf(id string) (won, lost int) {
	points1, points2 := m.Points()
	switch m.Side(id) {
	case Side1:
		return points1, points2
	case Side2:
		return points2, points1
	default:
		return 0, 0
	}
}

// String returns a human-readable representation of the Match.
func (m *Match) String() string {
	if m.IsBye() {
		return m.player1.Name() + " (bye)"
	}

	str := m.player1.Name() + " vs " + m.player2.Name()
	if len(m.sets) > 0 {
		scores := make([]string, len(m.sets))
		for i, set := range m.sets {
			scores[i] = set.String()
		}

		str += " (" + strings.Join(scores, ", ") + ")"
	}

	return str
}
