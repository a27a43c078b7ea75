// SPDX-License-Identifier: EPL-2.0

package figure

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/phonlab/formantkit/analysis"
)

// SaveFormantGrid renders res as a PNG grid of per-sound panels, three
// per row, each plotting F1..Fn against time. At most nine sounds are
// drawn, alphabetically; a dpi of zero or less selects DefaultGridDPI.
// The canvas is 10 inches wide and 3 inches tall per row.
func SaveFormantGrid(path string, res *analysis.Result, dpi int) error {
	if dpi <= 0 {
		dpi = DefaultGridDPI
	}

	if res == nil || len(res.Sounds) == 0 {
		return ErrNoData
	}

	sounds := append([]string(nil), res.Sounds...)
	sort.Strings(sounds)

	if len(sounds) > maxPanels {
		sounds = sounds[:maxPanels]
	}

	rows := (len(sounds) + gridCols - 1) / gridCols

	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, gridCols)
	}

	for i, sound := range sounds {
		p, err := soundPanel(res, sound)
		if err != nil {
			return fmt.Errorf("panel %s: %w", sound, err)
		}

		plots[i/gridCols][i%gridCols] = p
	}

	c := vgimg.NewWith(
		vgimg.UseWH(gridWidth, vg.Length(rows)*panelHeight),
		vgimg.UseDPI(dpi),
	)

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      gridCols,
		PadX:      vg.Inch / 4,
		PadY:      vg.Inch / 4,
		PadTop:    vg.Inch / 8,
		PadBottom: vg.Inch / 8,
		PadLeft:   vg.Inch / 8,
		PadRight:  vg.Inch / 8,
	}

	canvases := plot.Align(plots, tiles, draw.New(c))

	for r := range plots {
		for col, p := range plots[r] {
			if p != nil {
				p.Draw(canvases[r][col])
			}
		}
	}

	return writePNG(path, c)
}

func soundPanel(res *analysis.Result, sound string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = sound
	p.Title.TextStyle.Font.Size = labelFontSize
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Frequency (Hz)"
	p.X.Label.TextStyle.Font.Size = labelFontSize
	p.Y.Label.TextStyle.Font.Size = labelFontSize
	p.X.Tick.Label.Font.Size = tickFontSize
	p.Y.Tick.Label.Font.Size = tickFontSize
	p.Legend.TextStyle.Font.Size = tickFontSize
	p.Legend.Top = true

	for n := 1; n <= res.NumFormants; n++ {
		var first *plotter.Line

		for _, run := range formantRuns(res, sound, n) {
			line, err := plotter.NewLine(run)
			if err != nil {
				return nil, err
			}

			line.LineStyle.Color = lineColors[(n-1)%len(lineColors)]

			p.Add(line)

			if first == nil {
				first = line
			}
		}

		// A formant that was never measured still gets its legend
		// entry, like an empty series would.
		if first == nil {
			line, err := plotter.NewLine(plotter.XYs{})
			if err != nil {
				return nil, err
			}

			line.LineStyle.Color = lineColors[(n-1)%len(lineColors)]
			first = line
		}

		p.Legend.Add(fmt.Sprintf("F%d", n), first)
	}

	return p, nil
}

// formantRuns collects the points of formant n for one sound, split
// into runs wherever a measurement is absent so the gaps stay open.
func formantRuns(res *analysis.Result, sound string, n int) []plotter.XYs {
	var (
		runs []plotter.XYs
		run  plotter.XYs
	)

	for _, s := range res.Samples {
		if s.Sound != sound || n > len(s.Formants) {
			continue
		}

		v := s.Formants[n-1]
		if math.IsNaN(v) {
			if len(run) > 0 {
				runs = append(runs, run)
				run = nil
			}

			continue
		}

		run = append(run, plotter.XY{X: s.Time, Y: v})
	}

	if len(run) > 0 {
		runs = append(runs, run)
	}

	return runs
}
