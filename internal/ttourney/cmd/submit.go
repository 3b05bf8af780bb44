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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ttourney/pkg/snapshot"
)

func Submit() *cobra.Command {
	return &cobra.Command{
		Use:   "submit group match-id [scores...]",
		Short: "Submit the set scores of a match",
		Args:  cobra.MinimumNArgs(2),
		Long: heredoc.Doc(`submit replaces the sets of the given match with the given
			set scores. A score is either written out like 11:9, or
			in shorthand from the first player's point of view, where
			+9 means 11:9 and -12 means 12:14. Submitting no scores
			clears the result of the match.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}

			if err := g.SubmitScores(args[1], args[2:]...); err != nil {
				return err
			}

			m, err := g.Match(args[1])
			if err != nil {
				return err
			}

			status := "\x1b[33mIn Progress\x1b[0m"
			if m.Completed() {
				status = "\x1b[32mFinished\x1b[0m"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", status, m)
			return snapshot.Save(args[0], g)
		},
	}
}
