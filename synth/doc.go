// SPDX-License-Identifier: EPL-2.0

// Package synth provides the click-free synthesis primitives.
//
// # Oscillator
//
// An Oscillator is a sine generator whose phase is never reset. Parameter
// changes are ramps, not jumps:
//
//	osc, _ := synth.NewOscillator(48000, 440, 0)
//	osc.SetVolume(0.5, 10*time.Millisecond)  // linear fade, 480 samples
//	osc.SetFrequency(880, 10*time.Millisecond) // geometric glide
//	buf := make([]float64, 1024)
//	osc.Next(buf)
//
// Issuing a new ramp while one is running starts from the current value, so
// the waveform stays continuous however often targets change.
//
// # Bank
//
// A Bank owns a fixed set of oscillators addressed by index and mixes them
// by arithmetic mean:
//
//	bank, _ := synth.NewBank(48000, []float64{440, 550, 660, 770})
//	_ = bank.SetVolumes([]float64{1, 0, 0.5, 0}, 10*time.Millisecond)
//	bank.Next(buf)
//
// # Envelope
//
// Envelope shapes a finite signal with attack, decay, sustain and release
// stages. It is stateless:
//
//	env := synth.Envelope{Attack: 5 * time.Millisecond, SustainLevel: 0.8}
//	shaped := env.Apply(signal, 48000)
//
// # Sample Format
//
// Samples are float64 in [-1, 1]; conversion to device or file formats
// happens at the output boundary.
package synth
