// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a float32 sample in [-1, 1] to signed 16-bit PCM.
// Input is clamped to [-1, 1] first. Negative values scale by 32768 and
// positive values by 32767 (PCM full-scale convention), so -1.0 maps to
// -32768 and 1.0 maps to 32767 exactly.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}
