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

import "errors"

var (
	// ErrUnknownMatch is returned when a match identifier is referenced
	// which is not scheduled in the group.
	ErrUnknownMatch = errors.New("unknown match")

	// ErrUnsupportedFormat is returned when a group is requested in a
	// format which the engine doesn't implement, like double elimination.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoMoreRounds is returned by NextRound when the format has no
	// further rounds to generate. Like io.EOF it is a signal, not a failure.
	ErrNoMoreRounds = errors.New("no more rounds")

	// ErrRoundIncomplete is returned by NextRound when the next round
	// depends on the winners of a round which isn't completed yet.
	ErrRoundIncomplete = errors.New("previous round is incomplete")
)
