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
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/match"
	"laptudirm.com/x/ttourney/pkg/report"
	"laptudirm.com/x/ttourney/pkg/snapshot"
)

func Pair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair group",
		Short: "Generate the next round of a group",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			var options []group.Option
			if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
				options = append(options, group.WithRand(rand.New(rand.NewSource(seed))))
			}

			g, err := snapshot.Load(args[0], options...)
			if err != nil {
				return err
			}

			r, err := g.NextRound()
			switch {
			case errors.Is(err, group.ErrNoMoreRounds):
				fmt.Fprintf(cmd.OutOrStdout(), "\x1b[33mGroup %s has no more rounds.\x1b[0m\n", g.Name())
				return nil
			case err != nil:
				return err
			}

			if err := report.WriteRounds(cmd.OutOrStdout(), []*match.Round{r}); err != nil {
				return err
			}

			return snapshot.Save(args[0], g)
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed of the random source used for pairing")
	return cmd
}
