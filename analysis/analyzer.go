// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	formantkit "github.com/phonlab/formantkit"
	"github.com/phonlab/formantkit/formant"
)

// Sample is one formant measurement: the formants of one sound at one
// point in time. Frequencies are in Hz, rounded to three decimals; an
// absent formant is NaN.
type Sample struct {
	Sound    string
	Time     float64
	Formants []float64
}

// Result collects the measurements of a batch run. Samples are grouped
// by sound in directory order, times ascending within each sound.
type Result struct {
	Samples     []Sample
	Sounds      []string
	NumFormants int
}

// Analyzer runs batch operations over directories of recordings.
type Analyzer struct {
	cfg Config
	log logrus.FieldLogger
}

// New returns an Analyzer with defaults applied to cfg. A nil log
// falls back to the logrus standard logger.
func New(cfg Config, log logrus.FieldLogger) *Analyzer {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Analyzer{cfg: cfg.withDefaults(), log: log}
}

// Config returns the effective configuration, defaults applied.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// ExtractFormants measures every matching file in dir (non-recursive)
// and returns one Sample per file and timestamp. Files that fail to
// decode or analyze are logged and skipped; the batch carries on.
func (a *Analyzer) ExtractFormants(dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	res := &Result{NumFormants: a.cfg.Formants}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !matchesExt(name, a.cfg.Ext) {
			continue
		}

		a.log.WithField("file", name).Info("analyzing")

		samples, err := a.analyzeFile(filepath.Join(dir, name), soundName(name))
		if err != nil {
			a.log.WithField("file", name).WithError(err).Warn("skipping file")

			continue
		}

		res.Sounds = append(res.Sounds, soundName(name))
		res.Samples = append(res.Samples, samples...)
	}

	if len(res.Sounds) == 0 {
		a.log.WithFields(logrus.Fields{"dir": dir, "ext": a.cfg.Ext}).
			Warn("no matching files")
	}

	return res, nil
}

func (a *Analyzer) analyzeFile(path, sound string) ([]Sample, error) {
	samples, rate, err := formantkit.ReadMonoAt(path, int(2*a.cfg.Ceiling), a.cfg.BufSize)
	if err != nil {
		return nil, err
	}

	track, err := formant.Analyze(samples, rate, a.cfg.formantConfig())
	if err != nil {
		return nil, err
	}

	out := make([]Sample, 0, a.cfg.Timestamps)
	for _, t := range sampleTimes(track.Duration(), a.cfg.Timestamps) {
		fs := make([]float64, a.cfg.Formants)
		for n := range fs {
			fs[n] = round3(track.ValueAt(n+1, t))
		}

		out = append(out, Sample{Sound: sound, Time: t, Formants: fs})
	}

	return out, nil
}

// sampleTimes spreads n points evenly over [0, duration], endpoints
// included. A single point lands on 0.
func sampleTimes(duration float64, n int) []float64 {
	if n == 1 {
		return []float64{0}
	}

	return floats.Span(make([]float64, n), 0, duration)
}

// round3 rounds to three decimals; NaN passes through.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// soundName strips the extension, whatever its length.
func soundName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file))
}

func matchesExt(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}
