// SPDX-License-Identifier: EPL-2.0

// Package owl turns video into sound.
//
// Every frame of a video source is reduced to a brightness matrix and handed
// to a converter, which drives a bank of phase-continuous sine oscillators.
// The audio side pulls samples at a fixed rate and never waits on video.
//
// # Packages
//
//   - synth: oscillators, the oscillator bank, envelopes and the cue tone
//   - curve and scale: Hilbert and Peano curves, Mel and Bark frequency axes
//   - imaging: frames, crop and resize, thresholding, weighted k-means
//   - convert: the converters (curve, shifters, horizontal/vertical/circular scan)
//   - video, output, engine: frame sources, audio sinks and the loop between them
//   - config: YAML configuration and factories
//   - audio and formats/*: the decoding pipeline used for cue files
//
// # Cues
//
// Scan converters can prefix every frame with a short cue. The default is a
// generated tone (synth.Cue); LoadCue reads one from a WAV, MP3, Ogg Vorbis or
// AIFF file instead:
//
//	cue, err := owl.LoadCue("click.wav", 48000)
//	conv, err := convert.NewScan(convert.Horizontal, 16, freqs, 500*time.Millisecond, 48000, convert.WithCue(cue))
//
// The file is decoded, folded to mono and resampled to the requested rate.
package owl
