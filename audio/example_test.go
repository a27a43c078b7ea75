// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/phonlab/formantkit/audio"
	"github.com/phonlab/formantkit/internal/audiotest"
)

// Example_resampler drops a 44.1kHz recording to 11.025kHz, the kind of
// rate reduction applied before formant analysis.
func Example_resampler() {
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0) // 1 second, 440Hz tone

	resampler := audio.NewResampler(source, 11025)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())

	buf := make([]float32, 4096)
	total := 0

	for {
		n, err := resampler.ReadSamples(buf)
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Printf("Total samples read: %d\n", total)
	// Output:
	// Output sample rate: 11025 Hz
	// Channels: 1
	// Total samples read: 11025
}

// Example_monoMixer downmixes a stereo recording. Formant measurement
// wants a single channel, so this is the first stage of every pipeline.
func Example_monoMixer() {
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0) // 1 second stereo

	mono := audio.NewMonoMixer(source)

	fmt.Printf("Input channels: %d\n", source.Channels())
	fmt.Printf("Output channels: %d\n", mono.Channels())
	fmt.Printf("Sample rate: %d Hz\n", mono.SampleRate())

	buf := make([]float32, 100)
	n, _ := mono.ReadSamples(buf)

	fmt.Printf("Read %d mono samples\n", n)
	// Output:
	// Input channels: 2
	// Output channels: 1
	// Sample rate: 16000 Hz
	// Read 100 mono samples
}

// Example_analysisChain prepares a stereo 44.1kHz recording for analysis:
// resample down, then fold to mono.
func Example_analysisChain() {
	source := audiotest.NewSineSource(44100, 2, 44100, 440.0)

	resampled := audio.NewResampler(source, 11025)
	mono := audio.NewMonoMixer(resampled)

	fmt.Printf("Sample rate: %d Hz\n", mono.SampleRate())
	fmt.Printf("Channels: %d\n", mono.Channels())

	buf := make([]float32, 4096)
	total := 0

	for {
		n, err := mono.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
	}

	fmt.Printf("Total samples: %d\n", total)
	fmt.Printf("Duration: %.2f seconds\n", float64(total)/float64(mono.SampleRate()))
	// Output:
	// Sample rate: 11025 Hz
	// Channels: 1
	// Total samples: 11025
	// Duration: 1.00 seconds
}

// stubDecoder stands in for a real codec when demonstrating the registry.
type stubDecoder struct{}

func (stubDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 1, 1000, 440.0), nil
}

// Example_registry registers a decoder and looks it up by extension.
func Example_registry() {
	registry := audio.NewRegistry()

	registry.Register(".wav", stubDecoder{})

	decoder, ok := registry.Get("wav")
	if !ok {
		fmt.Println("decoder not found")
		return
	}

	fmt.Printf("Retrieved decoder: %T\n", decoder)

	if _, ok = registry.Get(".flac"); !ok {
		fmt.Println("No decoder registered for .flac")
	}
	// Output:
	// Retrieved decoder: audio_test.stubDecoder
	// No decoder registered for .flac
}
