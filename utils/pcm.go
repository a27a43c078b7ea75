// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a [-1, 1] float sample to signed 16-bit PCM.
// Out-of-range input is clamped before scaling.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 on both sides so +1 does not overflow.
	return int16(x * 32767.0)
}

// Float64ToInt16 converts a [-1, 1] float64 sample to signed 16-bit PCM
// with the same clamping and scaling as Float32ToInt16.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
