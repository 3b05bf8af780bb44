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

package cmd

import (
	"fmt"
	"math/rand"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/internal/util"
	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/player"
	"laptudirm.com/x/ttourney/pkg/report"
	"laptudirm.com/x/ttourney/pkg/simulate"
	"laptudirm.com/x/ttourney/pkg/snapshot"
)

func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a group with generated players",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`simulate generates sample players and plays out a group
			in the given format with simulated results, where the
			higher rated player has an edge in every rally. The same
			seed always simulates the same group.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			count, _ := cmd.Flags().GetInt("players")
			rounds, _ := cmd.Flags().GetInt("rounds")
			seed, _ := cmd.Flags().GetUint64("seed")
			save, _ := cmd.Flags().GetString("save")

			sim := simulate.New(seed)
			players := sim.Players(count)
			player.SortByRating(players)
			player.SetStartNumbers(players)

			name := fmt.Sprintf("Simulated %s", format)
			g, err := group.New(group.Format(format), name, players,
				group.WithRand(rand.New(rand.NewSource(int64(seed)))),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\x1b[32mSimulating\x1b[0m %s with %d players\n", format, count)
			for _, p := range g.Players() {
				fmt.Fprintf(out, "  %2d. %s\n", p.StartNumber(), p)
			}

			var played []*match.Round
			err = util.Spin("Simulating", func() error {
				return sim.Run(g, rounds, func(r *match.Round) {
					played = append(played, r)
				})
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			if err := report.WriteRounds(out, played); err != nil {
				return err
			}

			fmt.Fprintln(out)
			if err := report.WriteTable(out, report.Standings(g, group.Latest)); err != nil {
				return err
			}

			if save != "" {
				return snapshot.Save(save, g)
			}

			return nil
		},
	}

	cmd.Flags().StringP("format", "f", string(group.Swiss), "Format of the simulated group")
	cmd.Flags().IntP("players", "p", 8, "Number of players to generate")
	cmd.Flags().IntP("rounds", "r", 0, "Number of rounds to simulate, all if 0")
	cmd.Flags().Uint64("seed", 1, "Seed of the simulation")
	cmd.Flags().String("save", "", "Store the simulated group under this name")
	return cmd
}
