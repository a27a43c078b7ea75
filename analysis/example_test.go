// SPDX-License-Identifier: EPL-2.0

package analysis_test

import (
	"fmt"
	"math"
	"os"

	"github.com/phonlab/formantkit/analysis"
)

// ExampleResult_WriteCSV shows the export layout: one row per sound
// and timestamp, empty cells where no formant was measured.
func ExampleResult_WriteCSV() {
	res := &analysis.Result{
		NumFormants: 2,
		Sounds:      []string{"take1"},
		Samples: []analysis.Sample{
			{Sound: "take1", Time: 0, Formants: []float64{math.NaN(), math.NaN()}},
			{Sound: "take1", Time: 0.5, Formants: []float64{712.345, 2100.5}},
			{Sound: "take1", Time: 1, Formants: []float64{698.75, math.NaN()}},
		},
	}

	if err := res.WriteCSV(os.Stdout); err != nil {
		fmt.Println(err)
	}

	// Output:
	// sound,time,F1,F2
	// take1,0,,
	// take1,0.5,712.345,2100.5
	// take1,1,698.75,
}
