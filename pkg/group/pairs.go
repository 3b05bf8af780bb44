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

import "sort"

// Pair is an unordered pair of player identifiers.
type Pair [2]string

// NewPair creates the Pair of the given players. The order of the
// arguments doesn't matter: NewPair(a, b) == NewPair(b, a).
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{a, b}
}

// PairSet is a set of unordered player pairs.
type PairSet map[Pair]struct{}

// Add adds the pair of the given players to the set.
func (set PairSet) Add(a, b string) {
	set[NewPair(a, b)] = struct{}{}
}

// Has checks if the pair of the given players is in the set.
func (set PairSet) Has(a, b string) bool {
	_, found := set[NewPair(a, b)]
	return found
}

// Sorted returns the pairs of the set in lexicographical order.
func (set PairSet) Sorted() []Pair {
	pairs := make([]Pair, 0, len(set))
	for pair := range set {
		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}

		return pairs[i][1] < pairs[j][1]
	})

	return pairs
}
