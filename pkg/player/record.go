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

package player

import "errors"

// Record is the plain key/value representation of a Player.
type Record struct {
	ID          string `yaml:"id" json:"id"`
	FirstName   string `yaml:"first-name" json:"first-name"`
	LastName    string `yaml:"last-name" json:"last-name"`
	Rating      int    `yaml:"rating" json:"rating"`
	StartNumber int    `yaml:"start-number,omitempty" json:"start-number,omitempty"`
	Age         int    `yaml:"age,omitempty" json:"age,omitempty"`
	Gender      string `yaml:"gender,omitempty" json:"gender,omitempty"`
	Club        string `yaml:"club,omitempty" json:"club,omitempty"`
}

// Record returns the Record representation of the Player.
func (p *Player) Record() Record {
	return Record{
		ID:          p.id,
		FirstName:   p.firstName,
		LastName:    p.lastName,
		Rating:      p.rating,
		StartNumber: p.startNumber,
		Age:         p.age,
		Gender:      p.gender,
		Club:        p.club,
	}
}

// FromRecord reconstructs a Player from its Record. Records without an
// identifier, like hand-written player lists, get a newly generated one.
func FromRecord(record Record) (*Player, error) {
	if record.FirstName == "" && record.LastName == "" {
		return nil, errors.New("player record: missing name")
	}

	p := New(
		record.FirstName, record.LastName, record.Rating,
		WithID(record.ID),
		WithClub(record.Club),
		WithAge(record.Age),
		WithGender(record.Gender),
	)

	p.startNumber = record.StartNumber
	return p, nil
}
