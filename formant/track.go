package formant

import "math"

// Formant is a single resonance measurement.
type Formant struct {
	Frequency float64 // Hz
	Bandwidth float64 // Hz
}

// Frame holds the formants measured in one analysis window.
type Frame struct {
	// Time is the frame center in seconds.
	Time float64

	// Intensity is the largest squared amplitude inside the window.
	Intensity float64

	// Formants in ascending frequency. A frame may hold fewer entries
	// than the analysis asked for, or none at all when the window was
	// silent.
	Formants []Formant
}

// Track is a sequence of evenly spaced analysis frames covering the
// time domain [XMin, XMax].
type Track struct {
	XMin, XMax float64 // signal time domain in seconds
	TimeStep   float64 // spacing between frame centers
	FirstTime  float64 // center of the first frame
	Frames     []Frame
}

// Duration of the analyzed signal in seconds.
func (t *Track) Duration() float64 { return t.XMax - t.XMin }

// ValueAt returns formant n's frequency in Hz at time x, with n
// counting from 1 (F1 is n=1). The value is linearly interpolated
// between the two nearest frames, falling back to the nearest frame
// alone at the track edges. It returns NaN outside [XMin, XMax] and
// wherever the formant was not measured, which includes times closer
// to the signal edges than half a time step beyond the outermost
// frames.
func (t *Track) ValueAt(n int, x float64) float64 {
	return t.interpolate(n, x, func(f Formant) float64 { return f.Frequency })
}

// BandwidthAt returns formant n's bandwidth in Hz at time x, under the
// same rules as ValueAt.
func (t *Track) BandwidthAt(n int, x float64) float64 {
	return t.interpolate(n, x, func(f Formant) float64 { return f.Bandwidth })
}

func (t *Track) interpolate(n int, x float64, get func(Formant) float64) float64 {
	if n < 1 || len(t.Frames) == 0 || t.TimeStep <= 0 || x < t.XMin || x > t.XMax {
		return math.NaN()
	}

	// Fractional frame index. The nearer neighbor anchors the value,
	// the farther one refines it.
	ireal := (x - t.FirstTime) / t.TimeStep
	ileft := math.Floor(ireal)
	phase := ireal - ileft

	near, far := int(ileft), int(ileft)+1

	dist := phase
	if phase >= 0.5 {
		near, far = far, near
		dist = 1 - phase
	}

	vnear := t.frameValue(near, n, get)
	if math.IsNaN(vnear) {
		return math.NaN()
	}

	vfar := t.frameValue(far, n, get)
	if math.IsNaN(vfar) {
		return vnear
	}

	return vnear + dist*(vfar-vnear)
}

// frameValue returns frame i's n'th formant value, or NaN when the
// frame index is out of range or the frame holds fewer formants.
func (t *Track) frameValue(i, n int, get func(Formant) float64) float64 {
	if i < 0 || i >= len(t.Frames) {
		return math.NaN()
	}

	f := t.Frames[i]
	if n > len(f.Formants) {
		return math.NaN()
	}

	return get(f.Formants[n-1])
}
