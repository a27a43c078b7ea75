// SPDX-License-Identifier: EPL-2.0

package figure

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	// DefaultGridDPI is the export resolution of the formant grid.
	DefaultGridDPI = 300

	// DefaultWaveformDPI is the export resolution of amplitude plots.
	DefaultWaveformDPI = 1200
)

const (
	gridCols    = 3
	maxPanels   = 9
	gridWidth   = 10 * vg.Inch
	panelHeight = 3 * vg.Inch

	waveWidth  = 10 * vg.Inch
	waveHeight = 5 * vg.Inch

	labelFontSize = vg.Length(10)
	tickFontSize  = vg.Length(8)
)

// lineColors is the classic tab10 cycle; formant n draws in
// lineColors[n-1].
var lineColors = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff}, // blue
	color.RGBA{0xff, 0x7f, 0x0e, 0xff}, // orange
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff}, // green
	color.RGBA{0xd6, 0x27, 0x28, 0xff}, // red
	color.RGBA{0x94, 0x67, 0xbd, 0xff}, // purple
	color.RGBA{0x8c, 0x56, 0x4b, 0xff}, // brown
	color.RGBA{0xe3, 0x77, 0xc2, 0xff}, // pink
	color.RGBA{0x7f, 0x7f, 0x7f, 0xff}, // gray
	color.RGBA{0xbc, 0xbd, 0x22, 0xff}, // olive
	color.RGBA{0x17, 0xbe, 0xcf, 0xff}, // cyan
}

var rebeccaPurple = color.RGBA{0x66, 0x33, 0x99, 0xff}

func writePNG(path string, c *vgimg.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()

		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
