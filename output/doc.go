// SPDX-License-Identifier: EPL-2.0

// Package output delivers converter audio to a speaker or a file.
//
// A Sink owns the consumer side of a converter: once opened it pulls
// samples at its own fixed rate until closed. LiveSink plays through the
// default audio device with github.com/ebitengine/oto/v3, as float32 mono;
// builds tagged headless replace it with a sink that drains the source in
// real time and discards it. FileSink records 16-bit WAV, either pulling on
// a ticker or accepting pushed samples through Write.
//
// Sources at another rate or with more channels are resampled and
// downmixed on the way in.
package output
