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
	"unicode/utf8"

	"laptudirm.com/x/ttourney/pkg/match"
)

const (
	headerFormat = "    %-20s %4s %4s %9s %11s %4s %6s %5s"
	rowFormat    = "%2d. %-20s %4d %4d %4d:%-4d %5d:%-5d %4d %+6.0f %5.0f"
)

// WriteTable writes the given standings to w as a box drawn table.
func WriteTable(w io.Writer, standings []Standing) error {
	header := fmt.Sprintf(headerFormat, "Name", "Wins", "Loss", "Sets", "Points", "Bhz", "Elo", "Perf")
	border := strings.Repeat("═", utf8.RuneCountInString(header)+2)

	lines := []string{
		"╔" + border + "╗",
		"║ " + header + " ║",
		"╠" + border + "╣",
	}

	for _, standing := range standings {
		stats := standing.Stats
		lines = append(lines, "║ "+fmt.Sprintf(
			rowFormat,
			standing.Rank, clip(standing.Player.Name(), 20),
			stats.Wins, stats.Losses,
			stats.SetsWon, stats.SetsLost,
			stats.PointsWon, stats.PointsLost,
			stats.Buchholz,
			standing.Elo.Elo, standing.Performance,
		)+" ║")
	}

	lines = append(lines, "╚"+border+"╝")

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// WriteRounds writes the matches of the given rounds to w.
func WriteRounds(w io.Writer, rounds []*match.Round) error {
	var b strings.Builder
	for _, r := range rounds {
		if r.Stage != "" {
			fmt.Fprintf(&b, "%s (%s)\n", r.Name, r.Stage)
		} else {
			fmt.Fprintf(&b, "%s\n", r.Name)
		}

		for _, m := range r.Matches() {
			fmt.Fprintf(&b, "  %-24s %s\n", m.ID(), m)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// clip shortens s to at most n runes.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n-1]) + "…"
}
