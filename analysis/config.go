// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"strings"

	formantkit "github.com/phonlab/formantkit"
	"github.com/phonlab/formantkit/formant"
)

const (
	// DefaultTimestamps is the number of measurement points per file.
	DefaultTimestamps = 10

	// DefaultFormants is the number of formants measured per point.
	DefaultFormants = 3

	// DefaultExt is the file extension batch operations match.
	DefaultExt = ".wav"
)

// Config tunes batch analysis. The zero value of every field selects
// the package default, so Config{} runs the stock three-formant
// measurement over .wav files.
type Config struct {
	// Timestamps is how many evenly spaced measurement points cover
	// each file, endpoints included. Values below 1 select
	// DefaultTimestamps.
	Timestamps int

	// Formants is how many formants are measured at each point.
	// Values below 1 select DefaultFormants.
	Formants int

	// Ext is the extension batch operations match, compared
	// case-insensitively. A missing leading dot is added.
	Ext string

	// BufSize is the streaming read buffer in samples per channel.
	BufSize int

	// Ceiling is the highest formant frequency of interest in Hz.
	// Recordings are brought down to a 2×Ceiling sample rate before
	// analysis.
	Ceiling float64

	// WindowLength is the effective analysis window in seconds.
	WindowLength float64

	// TimeStep is the analysis frame step in seconds. Zero or
	// negative derives a quarter of WindowLength.
	TimeStep float64

	// PreemphasisFrom is the pre-emphasis corner frequency in Hz.
	PreemphasisFrom float64
}

// DefaultConfig returns the stock batch parameters: 10 timestamps and
// 3 formants per .wav file, with the standard formant tuning.
func DefaultConfig() Config {
	ft := formant.DefaultConfig()

	return Config{
		Timestamps:      DefaultTimestamps,
		Formants:        DefaultFormants,
		Ext:             DefaultExt,
		BufSize:         formantkit.DefaultBufSize,
		Ceiling:         ft.Ceiling,
		WindowLength:    ft.WindowLength,
		PreemphasisFrom: ft.PreemphasisFrom,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Timestamps < 1 {
		c.Timestamps = def.Timestamps
	}

	if c.Formants < 1 {
		c.Formants = def.Formants
	}

	if c.Ext == "" {
		c.Ext = def.Ext
	}

	if !strings.HasPrefix(c.Ext, ".") {
		c.Ext = "." + c.Ext
	}

	if c.BufSize <= 0 {
		c.BufSize = def.BufSize
	}

	if c.Ceiling <= 0 {
		c.Ceiling = def.Ceiling
	}

	if c.WindowLength <= 0 {
		c.WindowLength = def.WindowLength
	}

	if c.PreemphasisFrom <= 0 {
		c.PreemphasisFrom = def.PreemphasisFrom
	}

	return c
}

func (c Config) formantConfig() formant.Config {
	return formant.Config{
		TimeStep:        c.TimeStep,
		MaxFormants:     c.Formants,
		Ceiling:         c.Ceiling,
		WindowLength:    c.WindowLength,
		PreemphasisFrom: c.PreemphasisFrom,
	}
}
