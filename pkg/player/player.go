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

// Package player implements the competitors which are paired and ranked by
// the group engine. A Player is immutable after creation except for its
// start number, which is assigned in bulk by SetStartNumbers.
package player

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownPlayer is returned when a player identifier is referenced which
// is not present in the collection it was looked up in.
var ErrUnknownPlayer = errors.New("unknown player")

// Player represents a single competitor of a group.
type Player struct {
	id string

	firstName string
	lastName  string

	rating      int
	startNumber int

	age    int // 0 if unknown
	gender string
	club   string
}

// Option configures the optional attributes of a new Player.
type Option func(*Player)

// WithClub sets the affiliation of the Player. The club is part of the
// generated identifier, so it has to be provided at creation.
func WithClub(club string) Option {
	return func(p *Player) { p.club = club }
}

// WithAge sets the age of the Player.
func WithAge(age int) Option {
	return func(p *Player) { p.age = age }
}

// WithGender sets the gender of the Player.
func WithGender(gender string) Option {
	return func(p *Player) { p.gender = gender }
}

// WithID overrides the generated identifier. It is used when a Player is
// reconstructed from storage and its identity must be preserved.
func WithID(id string) Option {
	return func(p *Player) { p.id = id }
}

// New creates a new Player with the given name and rating. Unless an
// identifier is provided with WithID, a new one is generated from the name,
// club, and a random suffix.
func New(firstName, lastName string, rating int, options ...Option) *Player {
	p := &Player{
		firstName: firstName,
		lastName:  lastName,
		rating:    rating,
	}

	for _, option := range options {
		option(p)
	}

	if p.id == "" {
		p.id = NewID(firstName, lastName, p.club)
	}

	return p
}

// NewID generates a new player identifier of the form
// <first[:6]>_<last[:6]>[_<club[:12]>]_<random>, lower-cased and with all
// spaces replaced by underscores.
func NewID(firstName, lastName, club string) string {
	id := truncate(firstName, 6) + "_" + truncate(lastName, 6)
	if club != "" {
		id += "_" + truncate(club, 12)
	}

	id += "_" + uuid.NewString()[:4]
	return strings.ReplaceAll(strings.ToLower(id), " ", "_")
}

func truncate(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n])
	}

	return s
}

func (p *Player) ID() string        { return p.id }
func (p *Player) FirstName() string { return p.firstName }
func (p *Player) LastName() string  { return p.lastName }
func (p *Player) Rating() int       { return p.rating }
func (p *Player) StartNumber() int  { return p.startNumber }
func (p *Player) Age() int          { return p.age }
func (p *Player) Gender() string    { return p.gender }
func (p *Player) Club() string      { return p.club }

// Name returns the display name of the Player.
func (p *Player) Name() string {
	return strings.TrimSpace(p.firstName + " " + p.lastName)
}

// String returns a human-readable representation of the Player.
func (p *Player) String() string {
	if p.club == "" {
		return fmt.Sprintf("%s (%d)", p.Name(), p.rating)
	}

	return fmt.Sprintf("%s, %s (%d)", p.Name(), p.club, p.rating)
}

// SetStartNumbers numbers the given players 1..n in the order they are
// provided. It is the only mutation a Player supports after creation.
func SetStartNumbers(players []*Player) {
	for i, p := range players {
		p.startNumber = i + 1
	}
}

// SortByRating sorts the given players by rating, highest first. Players
// with the same rating keep their relative order.
func SortByRating(players []*Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].rating > players[j].rating
	})
}

// Index maps player identifiers to the players they identify.
type Index map[string]*Player

// NewIndex creates an Index of the given players.
func NewIndex(players []*Player) Index {
	index := make(Index, len(players))
	for _, p := range players {
		index[p.id] = p
	}

	return index
}

// Lookup finds the Player with the given identifier in the Index.
func (index Index) Lookup(id string) (*Player, error) {
	if p, found := index[id]; found {
		return p, nil
	}

	return nil, fmt.Errorf("lookup %q: %w", id, ErrUnknownPlayer)
}
