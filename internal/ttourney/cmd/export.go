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
	"os"

	"github.com/spf13/cobra"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/internal/util"
	"laptudirm.com/x/ttourney/pkg/report"
	"laptudirm.com/x/ttourney/pkg/snapshot"
)

func Export() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export group",
		Short: "Export the standings of a group as a spreadsheet or chart",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			xlsx, _ := cmd.Flags().GetString("xlsx")
			chart, _ := cmd.Flags().GetString("chart")
			round, _ := cmd.Flags().GetInt("round")

			if xlsx == "" && chart == "" {
				return errors.New("export: one of --xlsx or --chart is required")
			}

			g, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}

			if xlsx != "" {
				err := util.Spin("Writing "+xlsx, func() error {
					return writeFile(xlsx, func(f *os.File) error {
						return report.WriteXLSX(f, g, round)
					})
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mExported\x1b[0m %s\n", xlsx)
			}

			if chart != "" {
				title := fmt.Sprintf("%s: Wins", g.Name())
				err := util.Spin("Writing "+chart, func() error {
					return writeFile(chart, func(f *os.File) error {
						return report.WriteChart(f, title, report.Standings(g, round))
					})
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mExported\x1b[0m %s\n", chart)
			}

			return nil
		},
	}

	cmd.Flags().String("xlsx", "", "Write the standings and matches to this XLSX file")
	cmd.Flags().String("chart", "", "Write a PNG chart of the wins to this file")
	cmd.Flags().IntP("round", "r", group.Latest, "Export the standings as of this round")
	return cmd
}

// writeFile creates the named file and fills it with write.
func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
