package audio

import "fmt"

// MonoMixer downmixes an interleaved multi-channel Source to a single
// channel by averaging. Mono input passes through untouched.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with one mono sample per source frame.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	ch := m.src.Channels()
	if ch < 1 {
		return 0, ErrNoChannels
	}

	if ch == 1 {
		return m.src.ReadSamples(dst)
	}

	// One source frame per output sample.
	need := len(dst) * ch
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / ch

	switch ch {
	case 2: // stereo fast path
		for f := 0; f < frames; f++ {
			i := 2 * f
			dst[f] = 0.5 * (m.tmp[i] + m.tmp[i+1])
		}
	default:
		scale := 1 / float32(ch)
		for f := 0; f < frames; f++ {
			base := f * ch

			var sum float32
			for c := 0; c < ch; c++ {
				sum += m.tmp[base+c]
			}

			dst[f] = sum * scale
		}
	}

	return frames, err
}
