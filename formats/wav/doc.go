// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV audio files.
//
// Decoding and encoding are delegated to github.com/go-audio/wav; this
// package adapts them to the audio.Source interface and to the float
// sample streams produced by the converters.
//
// # Decoding
//
// The Decoder accepts integer PCM files of 8, 16, 24 or 32 bits, any
// channel count and any sample rate:
//
//	file, _ := os.Open("cue.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, source.BufSize())
//	n, err := source.ReadSamples(buf)
//
// Samples come back interleaved as float32 in [-1.0, 1.0). 8-bit files are
// unsigned and are re-centered around zero. Readers that cannot seek are
// buffered in memory before parsing.
//
// # Writing
//
// Writer streams mono 16-bit PCM. Each float sample is clamped to [-1, 1]
// and scaled by 16383, leaving headroom below the int16 limit:
//
//	file, _ := os.Create("owl.wav")
//	w := wav.NewWriter(file, 48000)
//	_ = w.Write(samples)
//	_ = w.Close() // patches the header sizes
//	_ = file.Close()
//
// The header is patched on Close, so the destination must be an
// io.WriteSeeker. Close does not close the destination.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedFormat: the file is not integer PCM, or has an odd bit depth
//   - ErrWriterClosed: the Writer was used after Close
package wav
