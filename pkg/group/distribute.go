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

import "laptudirm.com/x/ttourney/pkg/player"

// Distribute splits the given players into the given number of groups in
// snake order by rating: the top seeds go to groups 1..n, the next ones to
// groups n..1, and so on, so that the groups are of similar strength.
func Distribute(players []*player.Player, groups int) [][]*player.Player {
	if groups < 1 {
		return nil
	}

	seeded := append([]*player.Player(nil), players...)
	player.SortByRating(seeded)

	distribution := make([][]*player.Player, groups)
	for i, p := range seeded {
		group := i % groups
		if (i/groups)%2 == 1 {
			group = groups - 1 - group
		}

		distribution[group] = append(distribution[group], p)
	}

	return distribution
}
