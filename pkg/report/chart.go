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
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// WriteChart writes a PNG bar chart of the wins of the given standings,
// in ranking order, to w.
func WriteChart(w io.Writer, title string, standings []Standing) error {
	if len(standings) == 0 {
		return errors.New("chart: no standings")
	}

	bars := make([]chart.Value, len(standings))
	most := 1.0
	for i, standing := range standings {
		wins := float64(standing.Stats.Wins)
		most = max(most, wins)

		bars[i] = chart.Value{
			Label: standing.Player.LastName(),
			Value: wins,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("2e7d32"),
				StrokeColor: drawing.ColorFromHex("1b5e20"),
				StrokeWidth: 1,
			},
		}
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      max(400, 60*len(bars)),
		Height:     400,
		BarWidth:   40,
		BarSpacing: 20,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: most},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}
