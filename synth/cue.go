// SPDX-License-Identifier: EPL-2.0

package synth

import "time"

// Defaults of the scan start cue.
const (
	CueFrequency = 1000.0
	CueVolume    = 0.1
	CueDuration  = 30 * time.Millisecond
)

// CueEnvelope keeps the cue short and click free.
var CueEnvelope = Envelope{
	Attack:       3 * time.Millisecond,
	Decay:        500 * time.Microsecond,
	Release:      500 * time.Microsecond,
	SustainLevel: 0.8,
}

// Tone renders a shaped sine of the given length.
func Tone(sampleRate int, hz, volume float64, d time.Duration, env Envelope) ([]float64, error) {
	osc, err := NewOscillator(sampleRate, hz, volume)
	if err != nil {
		return nil, err
	}
	return env.Apply(osc.NextSamples(DurationSamples(d, sampleRate)), sampleRate), nil
}

// Cue renders the default "new scan" marker: a quiet 30 ms 1 kHz blip.
func Cue(sampleRate int) ([]float64, error) {
	return Tone(sampleRate, CueFrequency, CueVolume, CueDuration, CueEnvelope)
}
