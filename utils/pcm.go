// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

// PCMScale maps full-scale float samples to 16-bit PCM. It leaves 6 dB of
// headroom below the int16 limit.
const PCMScale = 16383

// PCM16 converts a sample in [-1, 1] to 16-bit PCM as round(x*PCMScale).
// Out-of-range input is clamped.
func PCM16(x float64) int16 {
	return int16(math.Round(core.Clamp(x, -1, 1) * PCMScale))
}
