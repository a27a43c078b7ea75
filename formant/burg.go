// SPDX-License-Identifier: EPL-2.0

package formant

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// safetyMargin keeps pole angles that sit on top of DC or the nyquist
// from being reported as formants.
const safetyMargin = 50.0

// burgCoefficients fits an order-term linear predictor to x with Burg's
// method, minimizing forward and backward prediction error at once.
// The model is x[n] ≈ a[0]·x[n-1] + a[1]·x[n-2] + … + a[order-1]·x[n-order].
// Returns the coefficients and the residual power per sample.
func burgCoefficients(x []float64, order int) ([]float64, float64) {
	a := make([]float64, order)

	n := len(x)
	if order < 1 || n == 0 {
		return a, 0
	}

	if n <= 2 {
		a[0] = -1
		if n == 2 {
			return a, 0.5 * (x[0]*x[0] + x[1]*x[1])
		}

		return a, x[0] * x[0]
	}

	var p float64
	for _, v := range x {
		p += v * v
	}

	xms := p / float64(n)
	if xms <= 0 {
		return a, xms
	}

	// Forward and backward prediction error sequences.
	b1 := make([]float64, n)
	b2 := make([]float64, n)
	aa := make([]float64, order)

	b1[0] = x[0]
	b2[n-2] = x[n-1]

	for j := 1; j < n-1; j++ {
		b1[j] = x[j]
		b2[j-1] = x[j]
	}

	for i := 0; i < order; i++ {
		var num, denum float64
		for j := 0; j < n-i-1; j++ {
			num += b1[j] * b2[j]
			denum += b1[j]*b1[j] + b2[j]*b2[j]
		}

		if denum <= 0 {
			return a, 0
		}

		// Reflection coefficient for this order.
		a[i] = 2 * num / denum
		xms *= 1 - a[i]*a[i]

		// Levinson update of the lower-order coefficients.
		for j := 0; j < i; j++ {
			a[j] = aa[j] - a[i]*aa[i-1-j]
		}

		if i < order-1 {
			copy(aa[:i+1], a[:i+1])

			for j := 0; j < n-i-2; j++ {
				b1[j] -= aa[i] * b2[j]
				b2[j] = b2[j+1] - aa[i]*b1[j+1]
			}
		}
	}

	return a, xms
}

// lpcPoles returns the roots of the prediction polynomial
// z^m − a[0]·z^(m-1) − … − a[m-1], the poles of the fitted all-pole
// filter, computed as eigenvalues of the companion matrix.
func lpcPoles(a []float64) []complex128 {
	m := len(a)
	if m == 0 {
		return nil
	}

	c := mat.NewDense(m, m, nil)
	for i := 1; i < m; i++ {
		c.Set(i, i-1, 1)
	}

	for i := 0; i < m; i++ {
		c.Set(i, m-1, a[m-1-i])
	}

	var eig mat.Eigen
	if !eig.Factorize(c, mat.EigenNone) {
		return nil
	}

	return eig.Values(nil)
}

// rootsToFormants converts pole locations into formants, sorted by
// ascending frequency. Poles outside the unit circle are reflected
// inside first; each pole with a positive imaginary part maps to a
// frequency via its angle, f = |arg z|·nyquist/π, and a bandwidth via
// its distance from the circle, b = −ln|z|²·nyquist/π. Candidates
// within safetyMargin of 0 Hz or of the nyquist are discarded, which
// also drops the real poles.
func rootsToFormants(roots []complex128, nyquist float64) []Formant {
	var out []Formant

	for _, z := range roots {
		if imag(z) < 0 {
			continue
		}

		mag := cmplx.Abs(z)
		if mag > 1 {
			z = 1 / cmplx.Conj(z)
			mag = 1 / mag
		}

		f := math.Abs(math.Atan2(imag(z), real(z))) * nyquist / math.Pi
		if f <= safetyMargin || f >= nyquist-safetyMargin {
			continue
		}

		out = append(out, Formant{
			Frequency: f,
			Bandwidth: -math.Log(mag*mag) * nyquist / math.Pi,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Frequency < out[j].Frequency })

	return out
}

// frameFormants runs one Burg analysis over a windowed frame.
func frameFormants(frame []float64, order int, nyquist float64) []Formant {
	a, _ := burgCoefficients(frame, order)

	return rootsToFormants(lpcPoles(a), nyquist)
}
