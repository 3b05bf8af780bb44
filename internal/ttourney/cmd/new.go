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
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/player"
	"laptudirm.com/x/ttourney/pkg/snapshot"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new name players-file",
		Short: "Create a new group from a list of players",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`new creates a new group with the players listed in the
			given YAML file and stores it under the given name. The file
			lists the players under the players key, each with a
			first-name, last-name, rating, and optionally a club, age,
			and gender.

			The players are seeded by rating. With --groups, they are
			distributed into several groups in snake order, which are
			stored as <name>-1, <name>-2, and so on.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := snapshot.LoadPlayers(args[1])
			if err != nil {
				return err
			}

			player.SortByRating(players)
			player.SetStartNumbers(players)

			format, _ := cmd.Flags().GetString("format")
			options, err := groupOptions(cmd)
			if err != nil {
				return err
			}

			groups, _ := cmd.Flags().GetInt("groups")
			if groups <= 1 {
				return create(cmd, group.Format(format), args[0], players, options)
			}

			for i, members := range group.Distribute(players, groups) {
				name := fmt.Sprintf("%s-%d", args[0], i+1)
				if err := create(cmd, group.Format(format), name, members, options); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringP("format", "f", string(group.Swiss), "Format of the group: swiss, round-robin, berger, or single-elimination")
	cmd.Flags().IntP("groups", "g", 1, "Distribute the players into this many groups")
	cmd.Flags().IntP("rounds", "r", 0, "Maximum number of rounds of a swiss group")
	cmd.Flags().Bool("bye-credit", false, "Count byes as wins")
	cmd.Flags().Int64("seed", 0, "Seed of the random source used for pairing")
	cmd.Flags().StringSlice("exclude", nil, "Pairs of player ids which must not be paired, like a:b")

	return cmd
}

func create(cmd *cobra.Command, format group.Format, name string, players []*player.Player, options []group.Option) error {
	g, err := group.New(format, name, players, options...)
	if err != nil {
		return err
	}

	if err := snapshot.Save(name, g); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mCreated Group\x1b[0m %s (%s) with %d players\n", name, format, len(players))
	for _, p := range g.Players() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %s\n", p.ID(), p)
	}

	return nil
}

// groupOptions collects the group options from the flags of the command.
func groupOptions(cmd *cobra.Command) ([]group.Option, error) {
	var options []group.Option

	if rounds, _ := cmd.Flags().GetInt("rounds"); rounds > 0 {
		options = append(options, group.WithRounds(rounds))
	}

	if credit, _ := cmd.Flags().GetBool("bye-credit"); credit {
		options = append(options, group.WithByeCredit(true))
	}

	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		options = append(options, group.WithRand(rand.New(rand.NewSource(seed))))
	}

	excluded, _ := cmd.Flags().GetStringSlice("exclude")
	for _, pair := range excluded {
		a, b, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("exclude %q: expected a pair like a:b", pair)
		}

		options = append(options, group.WithExcluded(group.NewPair(a, b)))
	}

	return options, nil
}
