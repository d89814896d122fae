// SPDX-License-Identifier: EPL-2.0

// Package convert maps video frames to sound.
//
// Every converter implements Converter: OnFrame is fed frames by the video
// side at whatever pace they arrive, and Pull is called by the audio side
// for fixed-size blocks. Pull never blocks and always fills the whole
// block.
//
// # Static Converters
//
// Static converters keep one oscillator per voice and move their targets
// on every frame, ramping over the transient duration (except on the first
// frame, which is applied at once).
//
//   - NewCurve: a space-filling curve orders the pixels; pixel i drives
//     oscillator i with its brightness.
//   - NewShifters: k-means clusters of the bright pixels become voices
//     whose pitch is the curve frequency at the cluster center.
//
// OnFrame hands the targets to Pull through an atomic pointer; the
// oscillator bank is only touched by Pull.
//
// # Scan Converters
//
// NewScan renders a frame into a finite block of audio, one strip at a
// time (columns, rows or rings, see Orientation), and queues it in a
// lock-free SampleQueue. If more audio than the slack is already queued the
// frame is dropped. When the queue runs dry Pull pads with silence, counts
// an underflow and logs a warning.
//
//	scan, _ := convert.NewScan(convert.Horizontal, 8, freqs, 500*time.Millisecond, 48000,
//	    convert.WithCue(cue), convert.WithLogger(logger))
//	_ = scan.OnFrame(frame)
//	block := convert.Samples(scan, 1024)
package convert
