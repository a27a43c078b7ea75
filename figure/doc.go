// SPDX-License-Identifier: EPL-2.0

// Package figure renders analysis results to PNG files.
//
// Two figures are supported: a grid of per-sound formant tracks
// (SaveFormantGrid) and a single amplitude trace (SaveWaveform). Both
// draw with gonum.org/v1/plot onto a fixed-size canvas, 10 inches
// wide, so the dpi argument alone decides the output resolution.
//
// The formant grid lays sounds out alphabetically, three panels per
// row and at most nine in total. Within a panel the formants F1..Fn
// plot as colored lines against time; timestamps without a
// measurement, the norm at the very start and end of a recording,
// leave gaps in the lines.
package figure
