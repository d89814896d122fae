// SPDX-License-Identifier: EPL-2.0

// Package scale provides perceptual frequency scales.
//
// A scale warps the Hz axis so that equal steps in scale space sound like
// equal steps in pitch. Range uses that property to hand out frequencies
// to oscillators:
//
//	mel, _ := scale.NewMel(100, 800)
//	freqs := mel.Range(16) // 16 values, strictly increasing, 100..800 Hz
//
// Available scales:
//   - Mel: 2595*log10(1 + hz/700)
//   - Bark: 13*atan(0.00076*hz) + 3.5*atan((hz/7500)^2), numeric inverse
//   - BarkAsinh: 6*asinh(hz/600), closed-form inverse
package scale
