package formant

import (
	"math"
	"testing"
)

func testTrack() *Track {
	return &Track{
		XMin:      0,
		XMax:      1,
		TimeStep:  0.25,
		FirstTime: 0.25,
		Frames: []Frame{
			{Time: 0.25, Formants: []Formant{{Frequency: 500, Bandwidth: 50}}},
			{Time: 0.5, Formants: []Formant{
				{Frequency: 600, Bandwidth: 60},
				{Frequency: 1500, Bandwidth: 100},
			}},
			{Time: 0.75, Formants: []Formant{{Frequency: 700, Bandwidth: 70}}},
		},
	}
}

func TestTrack_ValueAt(t *testing.T) {
	t.Parallel()

	tr := testTrack()

	// Query times are multiples of 1/64 so the interpolation arithmetic
	// stays exact.
	tests := []struct {
		name string
		n    int
		x    float64
		want float64
	}{
		{"on a frame", 1, 0.5, 600},
		{"on the first frame", 1, 0.25, 500},
		{"quarter step", 1, 0.3125, 525},
		{"midpoint between frames", 1, 0.625, 650},
		{"three quarter step", 1, 0.6875, 675},
		{"half step before the first frame", 1, 0.125, 500},
		{"beyond reach on the left", 1, 0.109375, math.NaN()},
		{"half step after the last frame", 1, 0.875, math.NaN()},
		{"within reach on the right", 1, 0.8125, 700},
		{"domain end", 1, 1, math.NaN()},
		{"before the domain", 1, -0.1, math.NaN()},
		{"after the domain", 1, 1.1, math.NaN()},
		{"formant missing in the far frame", 2, 0.5, 1500},
		{"formant missing in the near frame", 2, 0.3125, math.NaN()},
		{"formant absent everywhere", 4, 0.5, math.NaN()},
		{"formant number zero", 0, 0.5, math.NaN()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tr.ValueAt(tc.n, tc.x)

			if math.IsNaN(tc.want) {
				if !math.IsNaN(got) {
					t.Errorf("ValueAt(%d, %v) = %v, want NaN", tc.n, tc.x, got)
				}

				return
			}

			if got != tc.want {
				t.Errorf("ValueAt(%d, %v) = %v, want %v", tc.n, tc.x, got)
			}
		})
	}
}

func TestTrack_BandwidthAt(t *testing.T) {
	t.Parallel()

	tr := testTrack()

	tests := []struct {
		name string
		n    int
		x    float64
		want float64
	}{
		{"on a frame", 1, 0.5, 60},
		{"midpoint between frames", 1, 0.625, 65},
		{"second formant", 2, 0.5, 100},
		{"after the domain", 1, 1.1, math.NaN()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tr.BandwidthAt(tc.n, tc.x)

			if math.IsNaN(tc.want) {
				if !math.IsNaN(got) {
					t.Errorf("BandwidthAt(%d, %v) = %v, want NaN", tc.n, tc.x, got)
				}

				return
			}

			if got != tc.want {
				t.Errorf("BandwidthAt(%d, %v) = %v, want %v", tc.n, tc.x, got)
			}
		})
	}
}

func TestTrack_SingleFrame(t *testing.T) {
	t.Parallel()

	tr := &Track{
		XMin:      0,
		XMax:      1,
		TimeStep:  0.25,
		FirstTime: 0.5,
		Frames: []Frame{
			{Time: 0.5, Formants: []Formant{{Frequency: 600, Bandwidth: 60}}},
		},
	}

	// A lone frame answers within half a time step of its center.
	if got := tr.ValueAt(1, 0.5); got != 600 {
		t.Errorf("ValueAt(1, 0.5) = %v, want 600", got)
	}

	if got := tr.ValueAt(1, 0.375); got != 600 {
		t.Errorf("ValueAt(1, 0.375) = %v, want 600", got)
	}

	if got := tr.ValueAt(1, 0.59375); got != 600 {
		t.Errorf("ValueAt(1, 0.59375) = %v, want 600", got)
	}

	if got := tr.ValueAt(1, 0.625); !math.IsNaN(got) {
		t.Errorf("ValueAt(1, 0.625) = %v, want NaN", got)
	}
}

func TestTrack_Empty(t *testing.T) {
	t.Parallel()

	var tr Track

	if got := tr.ValueAt(1, 0); !math.IsNaN(got) {
		t.Errorf("ValueAt on empty track = %v, want NaN", got)
	}

	if got := tr.Duration(); got != 0 {
		t.Errorf("Duration() = %v, want 0", got)
	}
}

func TestTrack_Duration(t *testing.T) {
	t.Parallel()

	if got := testTrack().Duration(); got != 1 {
		t.Errorf("Duration() = %v, want 1", got)
	}
}
