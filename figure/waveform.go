package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/phonlab/formantkit/analysis"
)

// SaveWaveform renders wave as a single 10×5 inch amplitude panel with
// a hairline trace. A dpi of zero or less selects DefaultWaveformDPI.
func SaveWaveform(path string, wave *analysis.Waveform, dpi int) error {
	if dpi <= 0 {
		dpi = DefaultWaveformDPI
	}

	if wave == nil || len(wave.Samples) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Sound Wave"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())

	times := wave.Times()

	xys := make(plotter.XYs, len(wave.Samples))
	for i, v := range wave.Samples {
		xys[i] = plotter.XY{X: times[i], Y: v}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}

	line.LineStyle.Width = vg.Length(0.3)
	line.LineStyle.Color = rebeccaPurple

	p.Add(line)

	c := vgimg.NewWith(
		vgimg.UseWH(waveWidth, waveHeight),
		vgimg.UseDPI(dpi),
	)

	p.Draw(draw.New(c))

	return writePNG(path, c)
}
