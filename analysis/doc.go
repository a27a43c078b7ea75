// SPDX-License-Identifier: EPL-2.0

// Package analysis runs batch formant measurements over directories of
// recordings.
//
// The Analyzer walks one directory (non-recursive), picks the files
// matching the configured extension and measures each one the same
// way: decode, mix to mono, bring down to twice the formant ceiling,
// run the Burg analysis and read the track at evenly spaced
// timestamps covering the whole file, endpoints included.
//
//	a := analysis.New(analysis.Config{}, log)
//	res, err := a.ExtractFormants("recordings")
//	if err != nil {
//		return err
//	}
//	if err := a.ExportCSV(res, "formants.csv"); err != nil {
//		return err
//	}
//
// # Best Effort
//
// A file that fails to decode or analyze is logged and skipped; one
// bad recording never aborts the batch. Directory-level problems (a
// missing input directory, an unwritable output) are returned as
// errors.
//
// # CSV Layout
//
// The export carries a sound,time,F1..Fn header and one row per file
// and timestamp, grouped by file, times ascending. The sound column is
// the file name with its extension stripped. A formant the analysis
// could not measure at a timestamp, which is the norm at t = 0 and at
// the very end of a file, stays an empty cell.
//
// The package also converts batches to mono WAV (ConvertToMono) and
// cuts amplitude traces for plotting (LoadWaveform); the figure
// package renders those.
package analysis
