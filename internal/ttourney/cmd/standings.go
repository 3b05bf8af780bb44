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

	"github.com/spf13/cobra"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/report"
	"laptudirm.com/x/ttourney/pkg/snapshot"
)

func Standings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings group",
		Short: "Show the standings of a group",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}

			if matches, _ := cmd.Flags().GetBool("matches"); matches {
				if err := report.WriteRounds(cmd.OutOrStdout(), g.Rounds()); err != nil {
					return err
				}
			}

			round, _ := cmd.Flags().GetInt("round")
			fmt.Fprintf(cmd.OutOrStdout(),
				"\x1b[34m%s\x1b[0m: %d of %d rounds completed\n",
				g.Name(), g.RoundsCompleted(), g.CurrentRound(),
			)

			return report.WriteTable(cmd.OutOrStdout(), report.Standings(g, round))
		},
	}

	cmd.Flags().IntP("round", "r", group.Latest, "Show the standings as of this round")
	cmd.Flags().BoolP("matches", "m", false, "Show the matches of every round")
	return cmd
}
