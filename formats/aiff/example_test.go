// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/phonlab/formantkit/audio"
	"github.com/phonlab/formantkit/formats/aiff"
)

// ExampleDecoder_Decode decodes an AIFF recording from disk. There is no
// Output comment because the file is not part of the repository.
func ExampleDecoder_Decode() {
	f, err := os.Open("vowel.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz, %d channels\n", src.SampleRate(), src.Channels())
}

// ExampleDecoder_Decode_analysisChain prepares an AIFF recording for
// formant analysis: downsample, then fold to mono.
func ExampleDecoder_Decode_analysisChain() {
	f, err := os.Open("vowel.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, 11025))

	samples, err := audio.Drain(mono, 4096)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Prepared %d samples at %d Hz\n", len(samples), mono.SampleRate())
}

// ExampleDecoder_Decode_invalid shows the sentinel returned for files
// that are not AIFF at all.
func ExampleDecoder_Decode_invalid() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))

	if err == aiff.ErrNotAiffFile {
		fmt.Println("not a valid AIFF file")
	}
	// Output: not a valid AIFF file
}
