package analysis

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	formantkit "github.com/phonlab/formantkit"
	"github.com/phonlab/formantkit/audio"
	"github.com/phonlab/formantkit/formats/wav"
)

// ConvertToMono mixes every matching file in inDir down to one channel
// and writes it to outDir as a 16-bit PCM WAV with the same base name,
// at the native sample rate. Files that fail to decode are logged and
// skipped.
func (a *Analyzer) ConvertToMono(inDir, outDir string) error {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", inDir, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	converted := 0

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !matchesExt(name, a.cfg.Ext) {
			continue
		}

		outPath := filepath.Join(outDir, soundName(name)+".wav")

		if err := a.convertFile(filepath.Join(inDir, name), outPath); err != nil {
			a.log.WithField("file", name).WithError(err).Warn("skipping file")

			continue
		}

		a.log.WithField("path", outPath).Info("mono sound saved")

		converted++
	}

	if converted == 0 {
		a.log.WithFields(logrus.Fields{"dir": inDir, "ext": a.cfg.Ext}).
			Warn("no matching files")
	}

	return nil
}

func (a *Analyzer) convertFile(inPath, outPath string) error {
	src, closer, err := formantkit.Open(inPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	mono := audio.NewMonoMixer(src)

	pcm, err := audio.DrainInt16(mono, a.cfg.BufSize)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	rate := mono.SampleRate()

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	if err := wav.WriteMono16(f, rate, pcm); err != nil {
		f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}

	return nil
}
