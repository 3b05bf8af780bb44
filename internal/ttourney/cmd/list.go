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

	"laptudirm.com/x/ttourney/pkg/snapshot"
)

func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored groups",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := snapshot.List()
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "\x1b[31mNo Groups Stored.\x1b[0m")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mStored Groups\x1b[0m in %s:\n\n", snapshot.Directory)
			for _, name := range names {
				g, err := snapshot.Load(name)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "- %-20s \x1b[31m%v\x1b[0m\n", name, err)
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "- %-20s %-18s %d players, round %d\n",
					name, g.Format(), len(g.Players()), g.CurrentRound())
			}

			return nil
		},
	}
}
