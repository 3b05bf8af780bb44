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

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"laptudirm.com/x/ttourney/pkg/group"
)

// Sheet names of the XLSX workbook.
const (
	StandingsSheet = "Standings"
	MatchesSheet   = "Matches"
)

// WriteXLSX writes a workbook with the standings of the group as of round
// asOf and all of its matches to w.
func WriteXLSX(w io.Writer, g group.Group, asOf int) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), StandingsSheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	rows := [][]any{{"Rank", "Name", "Club", "Rating", "Wins", "Losses", "Byes", "Sets Won", "Sets Lost", "Points Won", "Points Lost", "Buchholz", "Stage", "Performance"}}
	for _, standing := range Standings(g, asOf) {
		p, stats := standing.Player, standing.Stats
		rows = append(rows, []any{
			standing.Rank, p.Name(), p.Club(), p.Rating(),
			stats.Wins, stats.Losses, stats.Byes,
			stats.SetsWon, stats.SetsLost,
			stats.PointsWon, stats.PointsLost,
			stats.Buchholz, standing.Stage,
			int(standing.Performance),
		})
	}

	if err := writeRows(f, StandingsSheet, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(MatchesSheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	rows = [][]any{{"Round", "Stage", "Match", "Player 1", "Player 2", "Sets", "Result", "Winner"}}
	for _, m := range g.Matches() {
		var opponent, winner, result string
		if !m.IsBye() {
			opponent = m.Player2().Name()

			won, lost := m.Result()
			result = fmt.Sprintf("%d:%d", won, lost)
		}

		if m.Completed() {
			winner = m.Winner().Name()
		}

		sets := make([]string, len(m.Sets()))
		for i, set := range m.Sets() {
			sets[i] = set.String()
		}

		rows = append(rows, []any{
			m.Round(), m.Stage(), m.ID(),
			m.Player1().Name(), opponent,
			strings.Join(sets, ", "), result, winner,
		})
	}

	if err := writeRows(f, MatchesSheet, rows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}

		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			return fmt.Errorf("xlsx %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}
