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

import "strconv"

// Round represents a numbered batch of matches which are scheduled together.
type Round struct {
	Number int

	// Name is the human-readable name of the Round, which defaults to
	// "Round <number>". Stage is an optional label like "Quarter Finals".
	Name  string
	Stage string

	matches []*Match
}

// NewRound creates a new empty Round with the given number and stage.
func NewRound(number int, stage string) *Round {
	return &Round{
		Number: number,
		Name:   "Round " + strconv.Itoa(number),
		Stage:  stage,
	}
}

// Add adds the given Match to the Round, stamping it with the Round's
// number and stage.
func (r *Round) Add(m *Match) {
	m.round = r.Number
	if r.Stage != "" {
		m.stage = r.Stage
	}

	r.matches = append(r.matches, m)
}

// Matches returns the matches of the Round in scheduling order.
func (r *Round) Matches() []*Match {
	return append([]*Match(nil), r.matches...)
}

// Match returns the Match with the given ID, or nil.
func (r *Round) Match(id string) *Match {
	for _, m := range r.matches {
		if m.ID() == id {
			return m
		}
	}

	return nil
}

// Completed checks if every Match of the Round is completed. Byes don't
// need to be scored, so they are ignored.
func (r *Round) Completed() bool {
	for _, m := range r.matches {
		if !m.IsBye() && !m.Completed() {
			return false
		}
	}

	return true
}

// Revision returns the sum of the revisions of the matches of the Round,
// which changes whenever any of their results do.
func (r *Round) Revision() int {
	revision := 0
	for _, m := range r.matches {
		revision += m.revision
	}

	return revision
}

// Byes returns the players who got a bye in the Round.
func (r *Round) Byes() []string {
	var byes []string
	for _, m := range r.matches {
		if m.IsBye() {
			byes = append(byes, m.player1.ID())
		}
	}

	return byes
}
