package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// WriteCSV writes the measurements with a sound,time,F1..Fn header.
// Times and frequencies use the shortest round-trip decimal form;
// absent formants become empty cells.
func (r *Result) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 2, 2+r.NumFormants)
	header[0], header[1] = "sound", "time"
	for i := 1; i <= r.NumFormants; i++ {
		header = append(header, fmt.Sprintf("F%d", i))
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	row := make([]string, 0, len(header))
	for _, s := range r.Samples {
		row = append(row[:0], s.Sound, formatFloat(s.Time))
		for _, f := range s.Formants {
			if math.IsNaN(f) {
				row = append(row, "")

				continue
			}

			row = append(row, formatFloat(f))
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ExportCSV writes res to a file at path.
func (a *Analyzer) ExportCSV(res *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := res.WriteCSV(f); err != nil {
		f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	a.log.WithField("path", path).Info("file saved")

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
