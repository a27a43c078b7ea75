package audio

import (
	"fmt"
	"io"

	"github.com/phonlab/formantkit/utils"
)

// Drain reads src to completion and returns every sample widened to
// float64, the working format of the analysis code.
//
// The pipeline stays streaming until this point, so Drain is where the
// memory cost of a whole recording is paid:
//
//	src, _ := decoder.Decode(file)
//	mono := audio.NewMonoMixer(src)
//	samples, err := audio.Drain(mono, 4096)
//
// bufSize controls the read chunk; values <= 0 fall back to 4096.
func Drain(src Source, bufSize int) ([]float64, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}

	buf := make([]float32, bufSize)

	var out []float64

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			out = append(out, float64(buf[i]))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}

// DrainInt16 reads src to completion and returns every sample as signed
// 16-bit PCM, clamped and scaled by utils.Float32ToInt16. It is the
// collection step for paths that end in a PCM encoder rather than in
// analysis.
//
// bufSize controls the read chunk; values <= 0 fall back to 4096.
func DrainInt16(src Source, bufSize int) ([]int16, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}

	buf := make([]float32, bufSize)

	var out []int16

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			out = append(out, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}
