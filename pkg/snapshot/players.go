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

package snapshot

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/ttourney/pkg/player"
)

// PlayerList is the format of player list files.
type PlayerList struct {
	Players []player.Record `yaml:"players"`
}

// LoadPlayers reads the players from the given player list file.
func LoadPlayers(file string) ([]*player.Player, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var list PlayerList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("players %s: %w", file, err)
	}

	if len(list.Players) == 0 {
		return nil, errors.New("players " + file + ": no players")
	}

	players := make([]*player.Player, len(list.Players))
	for i, record := range list.Players {
		p, err := player.FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("players %s: entry %d: %w", file, i+1, err)
		}

		players[i] = p
	}

	return players, nil
}
