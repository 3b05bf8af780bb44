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

// Package rating implements Elo based estimates of playing strength.
package rating

import (
	"fmt"
	"math"
)

// Expected returns the probability of a player with the given rating
// winning against an opponent with the other rating.
func Expected(rating, opponent int) float64 {
	return 1 / (1 + math.Pow(10, float64(opponent-rating)/400))
}

// Estimate is an Elo difference along with its 95% confidence bounds.
type Estimate struct {
	Lower, Elo, Upper float64
}

// Error returns the half width of the confidence interval.
func (e Estimate) Error() float64 {
	return (e.Upper - e.Lower) / 2
}

func (e Estimate) String() string {
	return fmt.Sprintf("%+.1f ± %.1f", e.Elo, e.Error())
}

// Elo returns the likely Elo difference of a player with the given number
// of match wins and losses against their opposition.
func Elo(wins, losses int) Estimate {
	N := float64(wins + losses) // total number of matches

	if N == 0 {
		return Estimate{}
	}

	// measured win probability, which is also the empirical mean of the
	// random variable since there are no draws
	mu := float64(wins) / N

	// standard deviation of the random variable
	sigma := math.Sqrt(mu*(1-mu)) / math.Sqrt(N)

	return Estimate{
		Lower: clampElo(mu + phiInv(0.025)*sigma),
		Elo:   clampElo(mu),
		Upper: clampElo(mu + phiInv(0.975)*sigma),
	}
}

// Performance returns the performance rating of a player with the given
// results against opponents with the given ratings: the average rating of
// the opponents offset by the Elo difference of the results.
func Performance(opponents []int, wins, losses int) float64 {
	if len(opponents) == 0 {
		return 0
	}

	sum := 0
	for _, rating := range opponents {
		sum += rating
	}

	average := float64(sum) / float64(len(opponents))
	return average + Elo(wins, losses).Elo
}

// clampElo converts a score into an Elo difference. Perfect and zero
// scores have no finite Elo difference, so they are reported as 0.
func clampElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

// phiInv is the quantile function of the standard normal distribution.
func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
